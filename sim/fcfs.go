package sim

// FCFSStrategy services requests strictly in arrival order.
type FCFSStrategy struct{}

// Schedule implements Strategy for FCFSStrategy.
func (s *FCFSStrategy) Schedule(requests []int, head, _ int) ([]int, int) {
	sequence := make([]int, 0, len(requests))
	total := 0
	current := head
	for _, r := range requests {
		total += distance(current, r)
		current = r
		sequence = append(sequence, r)
	}
	return sequence, total
}
