package sim

import (
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// RunOne executes a single named strategy over validated inputs. Name
// matching is case-insensitive; unrecognized names fail with
// ErrUnknownAlgorithm and the list of supported names.
func RunOne(name string, requests []int, head, diskSize int) (SimulationResult, error) {
	strategy, err := NewStrategy(strings.ToUpper(strings.TrimSpace(name)))
	if err != nil {
		return SimulationResult{}, err
	}
	sequence, total := strategy.Schedule(requests, head, diskSize)
	return newResult(sequence, total, len(requests)), nil
}

// RunAll executes every strategy over the same validated inputs and returns
// the results keyed by canonical algorithm name. The strategies are pure and
// read-only over their inputs, so they run concurrently; completion order
// does not affect the assembled map.
func RunAll(requests []int, head, diskSize int) map[string]SimulationResult {
	results := make(map[string]SimulationResult, len(Algorithms()))
	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, name := range Algorithms() {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			strategy, err := NewStrategy(name)
			if err != nil {
				// Algorithms and NewStrategy enumerate the same set.
				logrus.Panicf("registry out of sync for %q: %v", name, err)
			}
			sequence, total := strategy.Schedule(requests, head, diskSize)
			mu.Lock()
			results[name] = newResult(sequence, total, len(requests))
			mu.Unlock()
		}(name)
	}
	wg.Wait()
	return results
}

// Run dispatches a validated input to either comparison mode or a single
// strategy. In comparison mode the per-algorithm map is returned; otherwise
// the payload is the single SimulationResult.
func Run(input *SimulationInput) (any, error) {
	if input.Algorithm == AlgorithmAll {
		return RunAll(input.Requests, input.Head, input.DiskSize), nil
	}
	result, err := RunOne(input.Algorithm, input.Requests, input.Head, input.DiskSize)
	if err != nil {
		return nil, err
	}
	return result, nil
}
