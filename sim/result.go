package sim

import "math"

// SimulationResult is the outcome of one strategy run: every track visited in
// order, the summed head movement, and the movement averaged over the request
// count (not the visit count — edge and wrap stops are not requests).
type SimulationResult struct {
	SeekSequence    []int   `json:"seek_sequence"`
	TotalSeekTime   int     `json:"total_seek_time"`
	AverageSeekTime float64 `json:"average_seek_time"`
}

func newResult(sequence []int, total, requestCount int) SimulationResult {
	return SimulationResult{
		SeekSequence:    sequence,
		TotalSeekTime:   total,
		AverageSeekTime: roundAverage(total, requestCount),
	}
}

// roundAverage rounds total/count to two decimal places. count is the
// validated request-queue length, never zero.
func roundAverage(total, count int) float64 {
	return math.Round(float64(total)/float64(count)*100) / 100
}
