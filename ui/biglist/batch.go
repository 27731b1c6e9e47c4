package biglist

import "math"

// minBatchSizeThreshold keeps batches from shrinking below half a viewport.
const minBatchSizeThreshold = 0.5

// Block is the quantized scroll position a frame was computed for. Scrolling
// within one block never triggers a recomputation.
type Block struct {
	BatchSize  float64
	BlockStart float64
	BlockEnd   float64
}

// ProcessBlock quantizes scrollTop into blocks of
// containerHeight * max(0.5, threshold). A container that has not been
// measured yet yields the zero Block.
func ProcessBlock(containerHeight, scrollTop, threshold float64) Block {
	if containerHeight <= 0 {
		return Block{}
	}
	batchSize := math.Ceil(containerHeight * math.Max(minBatchSizeThreshold, threshold))
	if scrollTop < 0 {
		scrollTop = 0
	}
	start := batchSize * math.Floor(scrollTop/batchSize)
	return Block{
		BatchSize:  batchSize,
		BlockStart: start,
		BlockEnd:   start + batchSize,
	}
}

// Measured reports whether the block belongs to a measured container.
func (b Block) Measured() bool {
	return b.BatchSize > 0
}

// Window returns the range to materialize: the block plus one batch of
// margin on each side.
func (b Block) Window() (top, bottom float64) {
	return b.BlockStart - b.BatchSize, b.BlockEnd + b.BatchSize
}
