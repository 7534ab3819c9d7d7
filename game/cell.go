package game

// Player identifies a side. The values are signed so that the player to
// move can be flipped by negation.
type Player int8

const (
	PlayerA Player = 1
	PlayerB Player = -1
)

func (p Player) Opponent() Player {
	return -p
}

func (p Player) String() string {
	switch p {
	case PlayerA:
		return "X"
	case PlayerB:
		return "O"
	}
	return "?"
}

// Cell is the content of one grid position.
type Cell uint8

const (
	Empty Cell = iota
	DiscA
	DiscB
)

func discOf(p Player) Cell {
	if p == PlayerA {
		return DiscA
	}
	return DiscB
}

// weight maps a cell onto the +1/-1/0 scale used when summing a window
// during win detection.
func (c Cell) weight() int {
	switch c {
	case DiscA:
		return 1
	case DiscB:
		return -1
	}
	return 0
}

func (c Cell) String() string {
	switch c {
	case DiscA:
		return PlayerA.String()
	case DiscB:
		return PlayerB.String()
	}
	return " "
}

// Status is the outcome of a board position.
type Status uint8

const (
	InProgress Status = iota
	WonByA
	WonByB
	Drawn
)

func wonBy(p Player) Status {
	if p == PlayerA {
		return WonByA
	}
	return WonByB
}

// IsOver reports whether the game has been decided.
func (s Status) IsOver() bool {
	return s != InProgress
}

// Winner returns the winning player, if any.
func (s Status) Winner() (Player, bool) {
	switch s {
	case WonByA:
		return PlayerA, true
	case WonByB:
		return PlayerB, true
	}
	return 0, false
}

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case WonByA:
		return "won by X"
	case WonByB:
		return "won by O"
	case Drawn:
		return "draw"
	}
	return "unknown"
}
