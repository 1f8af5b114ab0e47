package sim

// SCANStrategy is the elevator algorithm: the head sweeps upward servicing
// requests at or above it, runs out to the last track of the disk, then
// reverses and sweeps downward through the remaining requests.
type SCANStrategy struct{}

// Schedule implements Strategy for SCANStrategy.
func (s *SCANStrategy) Schedule(requests []int, head, diskSize int) ([]int, int) {
	left, right := splitAroundHead(requests, head)
	sequence := make([]int, 0, len(requests)+1)
	total := 0
	current := head

	for _, r := range right {
		total += distance(current, r)
		current = r
		sequence = append(sequence, r)
	}

	// The head travels to the disk edge before reversing, unless it is
	// already parked there with nothing to service on the way up.
	edge := diskSize - 1
	if len(right) > 0 || current != edge {
		total += distance(current, edge)
		current = edge
		sequence = append(sequence, edge)
	}

	for i := len(left) - 1; i >= 0; i-- {
		total += distance(current, left[i])
		current = left[i]
		sequence = append(sequence, left[i])
	}
	return sequence, total
}
