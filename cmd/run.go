package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/disk-sim/disk-sim/sim"
)

var (
	// CLI flags for the one-shot simulation
	runRequests  []int  // Track request queue, in arrival order
	runHead      int    // Starting head position
	runDiskSize  int    // Track address space is [0, disk-size)
	runAlgorithm string // Canonical algorithm name or ALL
	runOutput    string // "table" or "json"
)

// runCmd executes a one-shot simulation from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a one-shot disk-scheduling simulation",
	Run: func(cmd *cobra.Command, args []string) {
		input, err := (&sim.SimulationRequest{
			Requests:  runRequests,
			Head:      runHead,
			DiskSize:  runDiskSize,
			Algorithm: runAlgorithm,
		}).Validate()
		if err != nil {
			logrus.Fatalf("Invalid simulation input: %v", err)
		}

		payload, err := sim.Run(input)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}

		switch runOutput {
		case "json":
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(payload); err != nil {
				logrus.Fatalf("Failed to encode results: %v", err)
			}
		case "table":
			printResults(input, payload)
		default:
			logrus.Fatalf("Unknown output format %q (want table or json)", runOutput)
		}
	},
}

// printResults displays one row per algorithm, in registry order for
// comparison mode.
func printResults(input *sim.SimulationInput, payload any) {
	fmt.Printf("=== Disk Scheduling Simulation (head=%d, disk_size=%d) ===\n", input.Head, input.DiskSize)
	fmt.Printf("%-8s %-12s %-8s %s\n", "name", "total", "average", "seek sequence")
	switch results := payload.(type) {
	case map[string]sim.SimulationResult:
		for _, name := range sim.Algorithms() {
			printRow(name, results[name])
		}
	case sim.SimulationResult:
		printRow(input.Algorithm, results)
	}
}

func printRow(name string, result sim.SimulationResult) {
	fmt.Printf("%-8s %-12d %-8.2f %v\n", name, result.TotalSeekTime, result.AverageSeekTime, result.SeekSequence)
}

func init() {
	runCmd.Flags().IntSliceVar(&runRequests, "requests", nil, "Comma-separated track requests, in arrival order")
	runCmd.Flags().IntVar(&runHead, "head", 0, "Starting head position")
	runCmd.Flags().IntVar(&runDiskSize, "disk-size", 200, "Number of tracks on the disk")
	runCmd.Flags().StringVar(&runAlgorithm, "algorithm", "ALL", "Algorithm to run (FCFS, SSTF, SCAN, C-SCAN, LOOK, C-LOOK, or ALL)")
	runCmd.Flags().StringVar(&runOutput, "output", "table", "Output format (table, json)")
	_ = runCmd.MarkFlagRequired("requests")

	rootCmd.AddCommand(runCmd)
}
