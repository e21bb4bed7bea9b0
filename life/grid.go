package life

import "golang.org/x/exp/constraints"

// CeilDiv divides a by b, rounding towards positive infinity.
func CeilDiv[T constraints.Integer](a, b T) T {
	return (a + b - 1) / b
}

// WorkgroupsPerAxis is the number of tile-sized compute workgroups
// needed to cover extent cells along one axis.
func WorkgroupsPerAxis(extent, tile uint32) uint32 {
	return CeilDiv(extent, tile)
}
