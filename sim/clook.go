package sim

// CLOOKStrategy is circular LOOK: after the upward sweep the head jumps
// straight to the lowest pending track and continues upward from there. The
// jump is charged as the direct distance, not a detour through track 0, and
// is skipped entirely when every request sits at or above the head.
type CLOOKStrategy struct{}

// Schedule implements Strategy for CLOOKStrategy.
func (s *CLOOKStrategy) Schedule(requests []int, head, _ int) ([]int, int) {
	left, right := splitAroundHead(requests, head)
	sequence := make([]int, 0, len(requests))
	total := 0
	current := head

	for _, r := range right {
		total += distance(current, r)
		current = r
		sequence = append(sequence, r)
	}

	// left is ascending, so its first element is the jump target and the
	// rest continue the upward sweep.
	for _, r := range left {
		total += distance(current, r)
		current = r
		sequence = append(sequence, r)
	}
	return sequence, total
}
