package sim

// LOOKStrategy sweeps like SCAN but reverses at the furthest request in each
// direction instead of running out to the disk edge.
type LOOKStrategy struct{}

// Schedule implements Strategy for LOOKStrategy.
func (s *LOOKStrategy) Schedule(requests []int, head, _ int) ([]int, int) {
	left, right := splitAroundHead(requests, head)
	sequence := make([]int, 0, len(requests))
	total := 0
	current := head

	for _, r := range right {
		total += distance(current, r)
		current = r
		sequence = append(sequence, r)
	}

	for i := len(left) - 1; i >= 0; i-- {
		total += distance(current, left[i])
		current = left[i]
		sequence = append(sequence, left[i])
	}
	return sequence, total
}
