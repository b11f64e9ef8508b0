// Package artifact content-addresses a compiled module's IR text so the
// driver can name output files deterministically.
package artifact

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Artifact is the record produced once a source file has been compiled to
// IR: the source it came from, the target triple it was compiled for, the
// IR text itself, and a content hash derived from all three.
type Artifact struct {
	SourceFile string `json:"sourceFile"`
	Target     string `json:"target"`
	IR         string `json:"ir"`

	Hash string `json:"hash"`
}

// ArtifactBuilder assembles an Artifact field by field, mirroring the
// builder shape pkg/derivation used for Derivation in the teacher repo.
type ArtifactBuilder struct {
	art *Artifact
}

// New starts building an Artifact for the given source file name.
func New(sourceFile string) *ArtifactBuilder {
	return &ArtifactBuilder{
		art: &Artifact{
			SourceFile: sourceFile,
			Target:     "x86_64-unknown-linux-gnu", // default target
		},
	}
}

// SetTarget overrides the default target triple.
func (b *ArtifactBuilder) SetTarget(target string) *ArtifactBuilder {
	b.art.Target = target

	return b
}

// SetIR attaches the compiled module's textual IR.
func (b *ArtifactBuilder) SetIR(ir string) *ArtifactBuilder {
	b.art.IR = ir

	return b
}

// Build finalizes the artifact, computing its content hash.
func (b *ArtifactBuilder) Build() *Artifact {
	b.art.Hash = b.computeHash()

	return b.art
}

// computeHash hashes the source file name, target triple, and IR text into
// a single deterministic digest, the same way Derivation.computeHash folded
// name/builder/args/env into one string before hashing it.
func (b *ArtifactBuilder) computeHash() string {
	content := "sourceFile=" + b.art.SourceFile + "\n" +
		"target=" + b.art.Target + "\n" +
		"ir=" + b.art.IR

	sum := sha256.Sum256([]byte(content))

	return hex.EncodeToString(sum[:])
}

// OutputName returns the deterministic file name the driver should write
// this artifact's IR under: calclite-<hash[:12]>.ll. The hash only makes
// the name stable across identical runs; it is not used to skip or cache
// recompilation.
func (a *Artifact) OutputName() string {
	n := 12
	if len(a.Hash) < n {
		n = len(a.Hash)
	}

	return fmt.Sprintf("calclite-%s.ll", a.Hash[:n])
}
