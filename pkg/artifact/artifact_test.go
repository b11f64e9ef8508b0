package artifact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildComputesAStableHash(t *testing.T) {
	first := New("main.calc").SetIR("define i32 @main() {\nret i32 0\n}").Build()
	second := New("main.calc").SetIR("define i32 @main() {\nret i32 0\n}").Build()

	require.NotEmpty(t, first.Hash)
	assert.Equal(t, first.Hash, second.Hash)
}

func TestDifferentIRProducesDifferentHash(t *testing.T) {
	a := New("main.calc").SetIR("define i32 @main() {\nret i32 0\n}").Build()
	b := New("main.calc").SetIR("define i32 @main() {\nret i32 1\n}").Build()

	assert.NotEqual(t, a.Hash, b.Hash)
}

func TestOutputNameUsesTwelveHexCharacters(t *testing.T) {
	art := New("main.calc").SetIR("ir").Build()

	name := art.OutputName()
	assert.Len(t, name, len("calclite-")+12+len(".ll"))
	assert.Contains(t, name, art.Hash[:12])
}

func TestSetTargetOverridesDefault(t *testing.T) {
	art := New("main.calc").SetTarget("aarch64-apple-darwin").SetIR("ir").Build()
	assert.Equal(t, "aarch64-apple-darwin", art.Target)
}
