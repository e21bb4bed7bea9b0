package life

//go:generate go tool stringer -type=BufferRole

// BufferRole names one of the two cell state buffers. On every step
// exactly one buffer is read and the other is written, and the roles
// strictly alternate.
type BufferRole int

const (
	RoleA BufferRole = iota
	RoleB
)

// Other returns the opposite role.
func (r BufferRole) Other() BufferRole {
	return RoleA + RoleB - r
}
