package sim

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// AlgorithmAll selects comparison mode: every strategy runs and the results
// are keyed by canonical algorithm name.
const AlgorithmAll = "ALL"

// SimulationRequest is the raw, untrusted shape of a simulate call. The
// numeric fields stay untyped until Validate coerces them, so that missing,
// malformed, and out-of-range inputs can be told apart and reported
// distinctly.
type SimulationRequest struct {
	Requests  any    `json:"requests"`
	Head      any    `json:"head"`
	DiskSize  any    `json:"disk_size"`
	Algorithm string `json:"algorithm"`
}

// SimulationInput is a fully validated simulation request. Algorithm is
// either a canonical name from Algorithms or AlgorithmAll.
type SimulationInput struct {
	Requests  []int
	Head      int
	DiskSize  int
	Algorithm string
}

// Validate checks the raw request and produces typed inputs. Checks run in a
// fixed order and stop at the first failure: field presence, queue shape,
// integer coercion, disk-size positivity, head bound, request bounds, then
// algorithm selector. No strategy executes before every check passes.
func (r *SimulationRequest) Validate() (*SimulationInput, error) {
	if r.Requests == nil || r.Head == nil || r.DiskSize == nil {
		return nil, reject(ErrMissingField, "Missing required fields: requests, head, disk_size")
	}

	rawQueue, ok := asSlice(r.Requests)
	if !ok || len(rawQueue) == 0 {
		return nil, reject(ErrMalformedInput, "requests must be a non-empty list of integers")
	}

	requests := make([]int, len(rawQueue))
	for i, v := range rawQueue {
		n, ok := coerceInt(v)
		if !ok {
			return nil, reject(ErrMalformedInput, "requests, head and disk_size must be valid integers")
		}
		requests[i] = n
	}
	head, ok := coerceInt(r.Head)
	if !ok {
		return nil, reject(ErrMalformedInput, "requests, head and disk_size must be valid integers")
	}
	diskSize, ok := coerceInt(r.DiskSize)
	if !ok {
		return nil, reject(ErrMalformedInput, "requests, head and disk_size must be valid integers")
	}

	if diskSize <= 0 {
		return nil, reject(ErrOutOfRange, "disk_size must be a positive integer")
	}
	if head < 0 || head >= diskSize {
		return nil, reject(ErrOutOfRange, "head must be between 0 and %d", diskSize-1)
	}
	for _, q := range requests {
		if q < 0 || q >= diskSize {
			return nil, reject(ErrOutOfRange, "All requests must be between 0 and %d", diskSize-1)
		}
	}

	algorithm := strings.ToUpper(strings.TrimSpace(r.Algorithm))
	if algorithm != AlgorithmAll {
		if _, err := NewStrategy(algorithm); err != nil {
			return nil, err
		}
	}

	return &SimulationInput{
		Requests:  requests,
		Head:      head,
		DiskSize:  diskSize,
		Algorithm: algorithm,
	}, nil
}

// asSlice normalizes the request queue to a []any regardless of whether it
// was decoded from JSON or built programmatically from typed ints.
func asSlice(v any) ([]any, bool) {
	switch q := v.(type) {
	case []any:
		return q, true
	case []int:
		out := make([]any, len(q))
		for i, n := range q {
			out[i] = n
		}
		return out, true
	default:
		return nil, false
	}
}

// coerceInt converts values from decoded JSON (or the CLI) to int. JSON
// numbers arrive as float64 and only whole values count; numeric strings are
// accepted the way the form UI submits them.
func coerceInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) || math.IsNaN(n) {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}
