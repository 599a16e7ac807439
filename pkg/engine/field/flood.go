package field

import (
	"github.com/zyedidia/generic/stack"
)

// revealFrom reveals the square at idx and, if it borders no mines, floods
// outward through auto-revealable squares. It returns whether the game is
// lost and how many squares were revealed.
//
// The worklist visits squares in the same order as a depth-first recursion
// over the probe order: neighbors are pushed in reverse and the revealed
// check happens on pop.
func (g *Grid) revealFrom(idx int) (bool, int, error) {
	gameOver, err := g.squares[idx].reveal()
	if err != nil {
		return false, 0, err
	}
	if gameOver {
		return true, 1, nil
	}

	revealed := 1
	work := stack.New[int]()
	g.pushExpansion(work, idx)

	for work.Size() > 0 {
		next := work.Pop()
		sq := &g.squares[next]
		if sq.IsRevealed() || !sq.IsAutoRevealable() {
			continue
		}

		// cannot fail: checked unrevealed above
		_, _ = sq.reveal()
		revealed++
		g.pushExpansion(work, next)
	}

	return false, revealed, nil
}

// pushExpansion queues the neighbors of idx when it borders no mines.
// Squares with a mine neighbor are the numbered border and stop the flood.
func (g *Grid) pushExpansion(work *stack.Stack[int], idx int) {
	if g.gameOverNeighbors(idx) != 0 {
		return
	}

	neighbors := g.squares[idx].neighbors
	for i := len(neighbors) - 1; i >= 0; i-- {
		n := neighbors[i]
		if sq := &g.squares[n]; sq.IsAutoRevealable() && !sq.IsRevealed() {
			work.Push(n)
		}
	}
}
