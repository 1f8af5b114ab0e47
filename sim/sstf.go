package sim

// SSTFStrategy greedily services the pending request closest to the current
// head position. Ties resolve to the request appearing first in the current
// pending order; the strict < in the scan below is what guarantees that, and
// it is visible in the output whenever two pending tracks are equidistant.
type SSTFStrategy struct{}

// Schedule implements Strategy for SSTFStrategy.
func (s *SSTFStrategy) Schedule(requests []int, head, _ int) ([]int, int) {
	pending := append([]int(nil), requests...)
	sequence := make([]int, 0, len(requests))
	total := 0
	current := head
	for len(pending) > 0 {
		closest := 0
		for i := 1; i < len(pending); i++ {
			if distance(current, pending[i]) < distance(current, pending[closest]) {
				closest = i
			}
		}
		total += distance(current, pending[closest])
		current = pending[closest]
		sequence = append(sequence, current)
		pending = append(pending[:closest], pending[closest+1:]...)
	}
	return sequence, total
}
