package cmd

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/disk-sim/disk-sim/sim"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = old
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func TestPrintResults_ComparisonMode_ListsAllAlgorithmsInOrder(t *testing.T) {
	input := &sim.SimulationInput{
		Requests:  []int{2, 8, 15, 20},
		Head:      10,
		DiskSize:  25,
		Algorithm: sim.AlgorithmAll,
	}
	payload, err := sim.Run(input)
	require.NoError(t, err)

	output := captureStdout(t, func() {
		printResults(input, payload)
	})

	assert.Contains(t, output, "head=10, disk_size=25")
	for _, name := range sim.Algorithms() {
		assert.Contains(t, output, name)
	}
	// Comparison mode prints rows in registry order.
	assert.Less(t, bytes.Index([]byte(output), []byte("FCFS")), bytes.Index([]byte(output), []byte("C-LOOK")))
}

func TestPrintResults_SingleAlgorithm(t *testing.T) {
	input := &sim.SimulationInput{
		Requests:  []int{2, 8, 15, 20},
		Head:      10,
		DiskSize:  25,
		Algorithm: sim.LOOK,
	}
	payload, err := sim.Run(input)
	require.NoError(t, err)

	output := captureStdout(t, func() {
		printResults(input, payload)
	})

	assert.Contains(t, output, "LOOK")
	assert.Contains(t, output, "28")
	assert.Contains(t, output, "[15 20 8 2]")
}

func TestRunFlags_ValidateThroughCoreValidator(t *testing.T) {
	// The run command feeds typed flag values through the same validator the
	// HTTP surface uses.
	req := &sim.SimulationRequest{
		Requests:  []int{2, 8, 15, 20},
		Head:      10,
		DiskSize:  25,
		Algorithm: "all",
	}
	input, err := req.Validate()
	require.NoError(t, err)
	assert.Equal(t, sim.AlgorithmAll, input.Algorithm)
	assert.Equal(t, []int{2, 8, 15, 20}, input.Requests)
}
