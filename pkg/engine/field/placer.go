package field

import (
	"github.com/sirupsen/logrus"

	"minesweeper/pkg/engine/logging"
)

// Safe zone around the first click. After strictAttempts rejected draws the
// radius shrinks to zero so dense or tiny grids still terminate.
const (
	safeRadius     = 1
	relaxedRadius  = 0
	strictAttempts = 50
)

// Source supplies random integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// placeMines writes count mine squares at random positions away from avoid,
// then rebuilds adjacency once.
func (g *Grid) placeMines(count int, avoid *Position) {
	for i := 0; i < count; i++ {
		// random placement never produces an out-of-range position
		_, _ = g.AddSquare(NewSquare(KindMine), nil, false, avoid)
	}
	g.BuildAdjacency()

	fields := logrus.Fields{
		"rows":    g.rows,
		"columns": g.cols,
		"mines":   count,
	}
	if avoid != nil {
		fields["avoid"] = avoid.String()
	}
	logging.Log.WithFields(fields).Debug("placed mines")
}

// nextRandomPosition draws a position that no earlier random placement used.
// Once every square has been used the no-duplicate rule is dropped.
func (g *Grid) nextRandomPosition(avoid *Position) Position {
	full := g.occupied.Size() >= len(g.squares)

	if avoid != nil && !full && g.onlyFreePosition(*avoid) {
		logging.Log.WithField("avoid", avoid.String()).Debug("clicked square is the last free square, dropping safe zone")
		avoid = nil
	}

	pos := g.createRandomPosition(avoid, full)
	g.occupied.Put(pos)
	return pos
}

// onlyFreePosition reports whether pos is the single square not yet used by
// random placement
func (g *Grid) onlyFreePosition(pos Position) bool {
	return g.occupied.Size() == len(g.squares)-1 && !g.occupied.Has(pos)
}

func (g *Grid) drawPosition() Position {
	return Position{Row: g.rng.Intn(g.rows), Col: g.rng.Intn(g.cols)}
}

// createRandomPosition draws uniform positions until one is free, or any
// position once full is set. With avoid set, draws within safeRadius of
// avoid are also rejected; after strictAttempts rejections of either kind
// only avoid itself is rejected.
//
// The relaxed phase always has a free square other than avoid to land on:
// when avoid is the last free square, nextRandomPosition clears it.
func (g *Grid) createRandomPosition(avoid *Position, full bool) Position {
	for attempt := 0; ; attempt++ {
		if avoid != nil && attempt == strictAttempts {
			logging.Log.WithFields(logrus.Fields{
				"avoid":    avoid.String(),
				"attempts": attempt,
			}).Debug("relaxing safe zone to the clicked square")
		}

		pos := g.drawPosition()
		if !full && g.occupied.Has(pos) {
			continue
		}
		if avoid == nil {
			return pos
		}

		radius := safeRadius
		if attempt >= strictAttempts {
			radius = relaxedRadius
		}
		if ChebyshevDistance(pos, *avoid) > radius {
			return pos
		}
	}
}
