package core

// NextIndex steps from current by delta through total slots, wrapping at
// both ends. It returns 0 when there are no slots.
func NextIndex(current, delta, total int) int {
	if total <= 0 {
		return 0
	}
	next := (current + delta) % total
	if next < 0 {
		next += total
	}
	return next
}
