package sim

// CSCANStrategy is circular SCAN: the head sweeps upward, always travels to
// the disk edge, wraps back to track 0 in a single jump, and resumes the
// upward sweep through the tracks it skipped. The wrap is charged as one
// movement of edge→0 with no intermediate stops, and the second sweep never
// re-visits tracks already served.
type CSCANStrategy struct{}

// Schedule implements Strategy for CSCANStrategy.
func (s *CSCANStrategy) Schedule(requests []int, head, diskSize int) ([]int, int) {
	left, right := splitAroundHead(requests, head)
	sequence := make([]int, 0, len(requests)+2)
	total := 0
	current := head

	for _, r := range right {
		total += distance(current, r)
		current = r
		sequence = append(sequence, r)
	}

	// Edge visit is unconditional, even when the head already sits there.
	edge := diskSize - 1
	total += distance(current, edge)
	current = edge
	sequence = append(sequence, edge)

	// Wrap: one jump from the edge back to track 0.
	total += current
	current = 0
	sequence = append(sequence, 0)

	for _, r := range left {
		total += distance(current, r)
		current = r
		sequence = append(sequence, r)
	}
	return sequence, total
}
