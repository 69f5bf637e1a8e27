package tile

import "github.com/dixieflatline76/SplashTile/util/log"

// Solver searches for the tightest acceptable layout.
type Solver struct {
	MaxLooseness int // <= 0 derives the bound from the container
}

// NewSolver creates a Solver whose search bound follows the container size.
func NewSolver() *Solver {
	return &Solver{}
}

// limit returns the largest looseness the search tries. Past twice the larger
// container side both candidates have tiles under half a pixel, so the derived
// bound never cuts off a valid layout.
func (s *Solver) limit(container Resolution) int {
	if s.MaxLooseness > 0 {
		return s.MaxLooseness
	}
	return 2 * max(container.Width, container.Height)
}

// Solve finds a layout for the native resolution inside container using a default Solver.
func Solve(native, container Resolution, minCount int, minTile Resolution) (Layout, bool) {
	return NewSolver().Solve(native, container, minCount, minTile)
}

// Candidate returns the preferred layout at looseness c.
//
// The width-biased candidate wastes DY per tile and the height-biased candidate
// wastes DX; the one with the smaller waste wins, ties going to width-biased.
func Candidate(native, container Resolution, c int) Layout {
	x := FitWidth(native, container, c)
	y := FitHeight(native, container, c)
	if x.CropAdjust.DY > y.CropAdjust.DX {
		return y
	}
	return x
}

// Solve increases the looseness from zero until a candidate has more than minCount
// cells and a cropped tile no smaller than minTile. It returns false once the
// cropped tile drops below minTile, which is a normal "no feasible layout" result.
func (s *Solver) Solve(native, container Resolution, minCount int, minTile Resolution) (Layout, bool) {
	if !native.Valid() || !container.Valid() {
		return Layout{}, false
	}

	limit := s.limit(container)

	for c := 0; c <= limit; c++ {
		candidate := Candidate(native, container, c)
		tile := candidate.CroppedTile()
		log.Debugf("solve: c=%d %s", c, candidate)

		fits := tile.Valid() && tile.AtLeast(minTile)
		if candidate.Cells() > minCount && fits {
			return candidate, true
		}
		if !fits {
			log.Debugf("solve: tile %s below floor %s at c=%d", tile, minTile, c)
			return Layout{}, false
		}
	}

	log.Printf("solve: no layout for %s in %s after %d steps", native, container, limit+1)
	return Layout{}, false
}
