package tracer

import "math"

// The BlockScheduler interface is implemented by all block scheduling algorithms.
type BlockScheduler interface {
	// Split frame into blocks of variable height and assign to the pool
	// of tracers using feedback collected from previous frames.
	//
	// This function returns the block height assignment for each tracer
	// in the input list. The assignments always add up to frameH.
	Schedule(tracers []Tracer, frameH uint32) []uint32
}

// The naive scheduler splits the frame using the tracer speed estimates.
type naiveScheduler struct{}

// Create a new naive scheduler instance.
func NaiveScheduler() BlockScheduler {
	return naiveScheduler{}
}

// Assign rows to each tracer in proportion to its speed estimate.
func (naiveScheduler) Schedule(tracers []Tracer, frameH uint32) []uint32 {
	weights := make([]float64, len(tracers))
	for idx, tr := range tracers {
		weights[idx] = float64(tr.SpeedEstimate())
	}
	return distributeRows(weights, frameH)
}

// The perfect scheduler assumes that the volume of tracing work between two
// subsequent frames is approximately the same.
type perfectScheduler struct {
	blockAssignment []uint32
}

// Create a new perfect scheduler instance.
func PerfectScheduler() BlockScheduler {
	return &perfectScheduler{}
}

// Split frame into blocks of variable height and assign to the pool
// of tracers using feedback collected from previous frames.
//
// When previous frame information is available the scheduler uses the
// following formula for estimating the workload for tracer w and frame i+1:
// w_i, f_i+1 = (blockH,w_i / time,w_i) / Σ(blockH_i-1 / time,i-1)
//
// If the number of tracers changed or a tracer did not render any rows in
// the previous frame the scheduler falls back to the speed estimates.
func (sch *perfectScheduler) Schedule(tracers []Tracer, frameH uint32) []uint32 {
	if !sch.haveFeedback(tracers) {
		sch.blockAssignment = NaiveScheduler().Schedule(tracers, frameH)
		return sch.blockAssignment
	}

	weights := make([]float64, len(tracers))
	for idx, tr := range tracers {
		stats := tr.Stats()
		// Rows per nanosecond. Only the ratios between tracers matter.
		weights[idx] = float64(stats.BlockH) / float64(stats.BlockTime)
	}

	sch.blockAssignment = distributeRows(weights, frameH)
	return sch.blockAssignment
}

func (sch *perfectScheduler) haveFeedback(tracers []Tracer) bool {
	if len(sch.blockAssignment) != len(tracers) {
		return false
	}

	for idx, tr := range tracers {
		stats := tr.Stats()
		if sch.blockAssignment[idx] == 0 || stats.BlockH == 0 || stats.BlockTime <= 0 {
			return false
		}
	}
	return true
}

// Split frameH rows in proportion to the supplied weights. Rows lost to
// rounding are appended to the first block. If all weights are zero the
// frame is split evenly.
func distributeRows(weights []float64, frameH uint32) []uint32 {
	blockAssignment := make([]uint32, len(weights))
	if len(weights) == 0 {
		return blockAssignment
	}

	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 || math.IsInf(total, 0) || math.IsNaN(total) {
		for idx := range weights {
			weights[idx] = 1
		}
		total = float64(len(weights))
	}

	scaler := float64(frameH) / total
	var scheduledRows uint32
	for idx, w := range weights {
		blockAssignment[idx] = uint32(math.Floor(w * scaler))
		scheduledRows += blockAssignment[idx]
	}

	// In case rows don't add up to the frame height append the missing ones to the first tracer
	blockAssignment[0] += frameH - scheduledRows

	return blockAssignment
}
