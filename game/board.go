package game

import "fmt"

// MinPliesToWin is the number of plies after which a four-in-a-row first
// becomes possible.
const MinPliesToWin = 7

// Board is a Connect Four position of arbitrary size. Row 0 is the top row.
// A Board is mutated only through ApplyMove, UndoMove and Reset.
type Board struct {
	rows    int
	cols    int
	grid    []Cell // Row-major, rows*cols cells
	heights []int  // Number of discs per column
	moves   []int  // Columns played, in order
	player  Player // Player to move
	status  Status
}

// NewBoard creates an empty rows x cols board and replays the given moves.
// It fails if the board is too small to play on or if any move cannot be
// applied; no board is returned in either case.
func NewBoard(rows, cols int, moves ...int) (*Board, error) {
	if rows < 4 && cols < 4 || rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions)
	}

	b := &Board{
		rows:    rows,
		cols:    cols,
		grid:    make([]Cell, rows*cols),
		heights: make([]int, cols),
		moves:   make([]int, 0, rows*cols),
		player:  PlayerA,
		status:  InProgress,
	}
	for i, move := range moves {
		if !b.ApplyMove(move) {
			return nil, &InvalidMoveError{Index: i, Column: move}
		}
	}
	return b, nil
}

// Reset clears the board in place.
func (b *Board) Reset() {
	clear(b.grid)
	clear(b.heights)
	b.moves = b.moves[:0]
	b.player = PlayerA
	b.status = InProgress
}

// Copy returns a deep copy sharing no state with b.
func (b *Board) Copy() *Board {
	grid := make([]Cell, len(b.grid))
	copy(grid, b.grid)

	heights := make([]int, len(b.heights))
	copy(heights, b.heights)

	moves := make([]int, len(b.moves), b.rows*b.cols)
	copy(moves, b.moves)

	return &Board{
		rows:    b.rows,
		cols:    b.cols,
		grid:    grid,
		heights: heights,
		moves:   moves,
		player:  b.player,
		status:  b.status,
	}
}

func (b *Board) Rows() int { return b.rows }

func (b *Board) Cols() int { return b.cols }

// Player returns the player to move.
func (b *Board) Player() Player { return b.player }

func (b *Board) Status() Status { return b.status }

// Moves returns a copy of the columns played so far.
func (b *Board) Moves() []int {
	moves := make([]int, len(b.moves))
	copy(moves, b.moves)
	return moves
}

// At returns the cell at row, col. Row 0 is the top row.
func (b *Board) At(row, col int) Cell {
	return b.grid[row*b.cols+col]
}

// Grid returns a snapshot of the board, indexed [row][col].
func (b *Board) Grid() [][]Cell {
	grid := make([][]Cell, b.rows)
	for r := range grid {
		grid[r] = make([]Cell, b.cols)
		copy(grid[r], b.grid[r*b.cols:(r+1)*b.cols])
	}
	return grid
}

// LegalMoves returns the playable columns in ascending order. No moves are
// legal once the game is decided.
func (b *Board) LegalMoves() []int {
	return b.AppendLegalMoves(make([]int, 0, b.cols))
}

// AppendLegalMoves appends the playable columns to dst and returns the
// extended slice.
func (b *Board) AppendLegalMoves(dst []int) []int {
	if b.status.IsOver() {
		return dst
	}
	for col, height := range b.heights {
		if height < b.rows {
			dst = append(dst, col)
		}
	}
	return dst
}

func (b *Board) isLegal(col int) bool {
	return !b.status.IsOver() && col >= 0 && col < b.cols && b.heights[col] < b.rows
}

// ApplyMove drops a disc of the player to move into col. It returns false
// and leaves the board untouched if the move is illegal.
func (b *Board) ApplyMove(col int) bool {
	if !b.isLegal(col) {
		return false
	}

	row := b.rows - 1 - b.heights[col]
	b.grid[row*b.cols+col] = discOf(b.player)
	b.heights[col]++
	b.moves = append(b.moves, col)
	b.status = b.detectStatus(row, col)
	b.player = b.player.Opponent()
	return true
}

// UndoMove takes back the last move. It returns false if no move has been
// played. The status always returns to InProgress.
func (b *Board) UndoMove() bool {
	row, col, ok := b.MostRecentPosition()
	if !ok {
		return false
	}

	b.player = b.player.Opponent()
	b.grid[row*b.cols+col] = Empty
	b.heights[col]--
	b.moves = b.moves[:len(b.moves)-1]
	b.status = InProgress
	return true
}

// MostRecentPosition returns the cell of the last disc placed.
func (b *Board) MostRecentPosition() (row, col int, ok bool) {
	if len(b.moves) == 0 {
		return 0, 0, false
	}
	col = b.moves[len(b.moves)-1]
	return b.rows - b.heights[col], col, true
}
