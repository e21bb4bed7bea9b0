package life

import (
	"math/rand/v2"

	"github.com/furui/fastnoiselite-go"
)

// Seeder produces the initial state for every cell of the lattice,
// either 0 (dead) or 1 (alive). Only one of the two state buffers is
// seeded, the other is fully overwritten by the first dispatch.
type Seeder interface {
	Seed(cells []uint32, gridSize uint32)
}

// RandomSeed marks each cell alive independently with probability
// Alive.
type RandomSeed struct {
	// Alive is the fraction of cells that start alive, in [0, 1].
	Alive float64

	// Rand is the source to draw from. Defaults to the shared
	// global source, set it for reproducible boards.
	Rand *rand.Rand
}

func (r RandomSeed) Seed(cells []uint32, _ uint32) {
	random := rand.Float64
	if r.Rand != nil {
		random = r.Rand.Float64
	}

	for i := range cells {
		if random() < r.Alive {
			cells[i] = 1
		} else {
			cells[i] = 0
		}
	}
}

// NoiseSeed marks cells alive where an OpenSimplex2 noise field
// exceeds Threshold. Compared to RandomSeed this grows connected
// blobs instead of scattered single cells.
type NoiseSeed struct {
	// Frequency of the noise field. Defaults to 0.1.
	Frequency float32

	// Threshold in (-1, 1) above which a cell starts alive.
	Threshold float32

	// SeedValue initializes the noise generator.
	SeedValue int32
}

func (n NoiseSeed) Seed(cells []uint32, gridSize uint32) {
	frequency := n.Frequency
	if frequency == 0 {
		frequency = 0.1
	}

	noise := fastnoiselite.NewNoise()
	noise.SetNoiseType(fastnoiselite.NoiseTypeOpenSimplex2)
	noise.Seed = n.SeedValue
	noise.Frequency = float64(frequency)

	for y := uint32(0); y < gridSize; y++ {
		for x := uint32(0); x < gridSize; x++ {
			value := noise.GetNoise2D(fastnoiselite.FNLfloat(x), fastnoiselite.FNLfloat(y))

			idx := y*gridSize + x
			if float32(value) > n.Threshold {
				cells[idx] = 1
			} else {
				cells[idx] = 0
			}
		}
	}
}
