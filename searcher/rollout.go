package searcher

import (
	"sync"

	"connectfour/game"

	"golang.org/x/exp/rand"
)

// rollout plays sims uniformly random games from copies of board and counts
// the wins of each player. Draws count for nobody.
func rollout(board *game.Board, sims int, rng *rand.Rand) (plusWins, minusWins int) {
	moves := make([]int, 0, board.Cols())
	for i := 0; i < sims; i++ {
		b := board.Copy()
		for !b.Status().IsOver() {
			moves = b.AppendLegalMoves(moves[:0])
			b.ApplyMove(moves[rng.Intn(len(moves))]) // Random rollout policy
		}

		switch b.Status() {
		case game.WonByA:
			plusWins++
		case game.WonByB:
			minusWins++
		}
	}
	return plusWins, minusWins
}

// parallelRollout splits a batch of sims playouts across workers. Each
// worker owns a board copy and a generator seeded from rng in worker order,
// so the merged result only depends on rng's state.
func parallelRollout(board *game.Board, sims, workers int, rng *rand.Rand) (plusWins, minusWins int) {
	workers = min(workers, sims)
	if workers <= 1 {
		return rollout(board, sims, rng)
	}

	plus := make([]int, workers)
	minus := make([]int, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		share := sims / workers
		if w < sims%workers {
			share++
		}
		b := board.Copy()
		r := newRand(rng.Uint64())

		w := w
		wg.Add(1)
		go func() {
			defer wg.Done()
			plus[w], minus[w] = rollout(b, share, r)
		}()
	}
	wg.Wait()

	for w := 0; w < workers; w++ {
		plusWins += plus[w]
		minusWins += minus[w]
	}
	return plusWins, minusWins
}
