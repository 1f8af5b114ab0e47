package sim

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundAverage_TwoDecimals(t *testing.T) {
	tests := []struct {
		total, count int
		want         float64
	}{
		{26, 4, 6.5},
		{36, 4, 9.0},
		{1, 3, 0.33},
		{2, 3, 0.67},
		{10, 3, 3.33},
		{0, 1, 0.0},
	}
	for _, tc := range tests {
		got := roundAverage(tc.total, tc.count)
		if got != tc.want {
			t.Errorf("roundAverage(%d, %d): got %v, want %v", tc.total, tc.count, got, tc.want)
		}
	}
}

func TestResult_JSONFieldNames(t *testing.T) {
	result := newResult([]int{15, 20, 8, 2}, 28, 4)
	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.JSONEq(t, `{"seek_sequence":[15,20,8,2],"total_seek_time":28,"average_seek_time":7}`, string(data))
}

func TestResult_TotalMatchesPathDistance(t *testing.T) {
	// The reported total must equal the re-derived movement along
	// [head] + seek_sequence for every strategy.
	inputs := []struct {
		requests []int
		head     int
		diskSize int
	}{
		{[]int{2, 8, 15, 20}, 10, 25},
		{[]int{176, 79, 34, 60, 92, 11, 41, 114}, 50, 200},
		{[]int{0, 199}, 100, 200},
		{[]int{5}, 5, 10},
	}
	for _, in := range inputs {
		for name, result := range RunAll(in.requests, in.head, in.diskSize) {
			derived := 0
			current := in.head
			for _, pos := range result.SeekSequence {
				derived += distance(current, pos)
				current = pos
			}
			if derived != result.TotalSeekTime {
				t.Errorf("%s over %v: reported total %d, path distance %d",
					name, in.requests, result.TotalSeekTime, derived)
			}
			if result.TotalSeekTime < 0 {
				t.Errorf("%s over %v: negative total %d", name, in.requests, result.TotalSeekTime)
			}
		}
	}
}

func TestResult_SequenceLengthBySweepFamily(t *testing.T) {
	requests := []int{2, 8, 15, 20}
	results := RunAll(requests, 10, 25)

	for _, name := range []string{FCFS, SSTF, LOOK, CLOOK} {
		if got := len(results[name].SeekSequence); got != len(requests) {
			t.Errorf("%s sequence length: got %d, want %d", name, got, len(requests))
		}
	}
	for _, name := range []string{SCAN, CSCAN} {
		if got := len(results[name].SeekSequence); got < len(requests) {
			t.Errorf("%s sequence length: got %d, want >= %d", name, got, len(requests))
		}
	}
}
