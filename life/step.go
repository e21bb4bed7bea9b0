package life

// Step counts completed simulation steps. Its parity selects which of
// the two precomputed bind groups is active: the compute phase of step
// s binds group s%2, the render phase that follows binds (s+1)%2. A
// dispatch therefore never reads the buffer it just wrote.
type Step uint64

// Group returns the bind group index selected by this step's parity.
func (s Step) Group() int {
	return int(s % 2)
}

// Input returns the role of the buffer read during this step.
func (s Step) Input() BufferRole {
	return BufferRole(s % 2)
}

// Output returns the role of the buffer written during this step.
func (s Step) Output() BufferRole {
	return s.Input().Other()
}

// Next returns the counter value after this step completed.
func (s Step) Next() Step {
	return s + 1
}
