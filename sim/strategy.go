package sim

import (
	"sort"
	"strings"
)

// Canonical algorithm identifiers. Selector matching is case-insensitive on
// input; these are the normalized forms used as result-map keys.
const (
	FCFS  = "FCFS"
	SSTF  = "SSTF"
	SCAN  = "SCAN"
	CSCAN = "C-SCAN"
	LOOK  = "LOOK"
	CLOOK = "C-LOOK"
)

// Strategy orders a queue of track requests from a starting head position.
// Implementations are pure: they never mutate the input queue and keep no
// state between calls, so a single value is safe for concurrent use.
type Strategy interface {
	// Schedule returns every track the head visits, in visitation order,
	// together with the total head movement. diskSize bounds the track
	// address space [0, diskSize); the sweep strategies use it to locate
	// the disk edge. Inputs are assumed validated.
	Schedule(requests []int, head, diskSize int) (sequence []int, total int)
}

// NewStrategy creates the scheduling strategy for an algorithm name.
// The name must already be in canonical (upper-case) form.
func NewStrategy(name string) (Strategy, error) {
	switch name {
	case FCFS:
		return &FCFSStrategy{}, nil
	case SSTF:
		return &SSTFStrategy{}, nil
	case SCAN:
		return &SCANStrategy{}, nil
	case CSCAN:
		return &CSCANStrategy{}, nil
	case LOOK:
		return &LOOKStrategy{}, nil
	case CLOOK:
		return &CLOOKStrategy{}, nil
	default:
		return nil, reject(ErrUnknownAlgorithm, "Unknown algorithm '%s'. Supported: %s",
			name, strings.Join(Algorithms(), ", "))
	}
}

// Algorithms returns the canonical algorithm names in presentation order.
func Algorithms() []string {
	return []string{FCFS, SSTF, SCAN, CSCAN, LOOK, CLOOK}
}

// distance is the seek cost between two tracks.
func distance(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

// splitAroundHead partitions requests into tracks below the head and tracks
// at or above it, each sorted ascending. Neither slice aliases the input.
func splitAroundHead(requests []int, head int) (left, right []int) {
	for _, r := range requests {
		if r < head {
			left = append(left, r)
		} else {
			right = append(right, r)
		}
	}
	sort.Ints(left)
	sort.Ints(right)
	return left, right
}
