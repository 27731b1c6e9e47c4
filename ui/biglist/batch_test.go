package biglist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessBlock_Quantization(t *testing.T) {
	first := ProcessBlock(800, 0, 1)
	assert.Equal(t, Block{BatchSize: 800, BlockStart: 0, BlockEnd: 800}, first)

	for _, top := range []float64{1, 400, 799, 799.9} {
		assert.Equal(t, first, ProcessBlock(800, top, 1), "scrollTop %g", top)
	}
	assert.Equal(t, Block{BatchSize: 800, BlockStart: 800, BlockEnd: 1600}, ProcessBlock(800, 800, 1))
}

func TestProcessBlock_ThresholdFloor(t *testing.T) {
	assert.Equal(t, 400.0, ProcessBlock(800, 0, 0.1).BatchSize)
	assert.Equal(t, 400.0, ProcessBlock(800, 0, 0.5).BatchSize)
	assert.Equal(t, 1600.0, ProcessBlock(800, 0, 2).BatchSize)
}

func TestProcessBlock_RoundsBatchUp(t *testing.T) {
	assert.Equal(t, 34.0, ProcessBlock(67, 0, 0.5).BatchSize)
}

func TestProcessBlock_Unmeasured(t *testing.T) {
	b := ProcessBlock(0, 500, 1)
	assert.False(t, b.Measured())
	assert.Equal(t, Block{}, b)
}

func TestProcessBlock_NegativeScrollTop(t *testing.T) {
	assert.Equal(t, ProcessBlock(100, 0, 1), ProcessBlock(100, -40, 1))
}

func TestBlock_Window(t *testing.T) {
	top, bottom := ProcessBlock(100, 250, 1).Window()
	assert.Equal(t, 100.0, top)
	assert.Equal(t, 400.0, bottom)
}
