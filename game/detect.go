package game

// reach is how far a winning line can extend on either side of the disc
// that completes it.
const reach = 3

// Directions scanned through the most recent disc: horizontal, vertical,
// rising diagonal and falling diagonal.
var directions = [4][2]int{
	{0, 1},
	{1, 0},
	{-1, 1},
	{1, 1},
}

// detectStatus computes the status after the player to move has placed a
// disc at row, col. Only lines through that disc can have become winning.
func (b *Board) detectStatus(row, col int) Status {
	if len(b.moves) >= MinPliesToWin {
		var line [2*reach + 1]int
		for _, d := range directions {
			n := b.lineThrough(row, col, d[0], d[1], line[:0])
			if hasFour(n) {
				return wonBy(b.player)
			}
		}
	}

	if len(b.moves) == b.rows*b.cols {
		return Drawn
	}
	return InProgress
}

// lineThrough appends the weights of the cells on the line through row, col
// with direction dr, dc, clipped to the board and to reach cells on either
// side.
func (b *Board) lineThrough(row, col, dr, dc int, dst []int) []int {
	back := 0
	for back < reach && b.inBounds(row-(back+1)*dr, col-(back+1)*dc) {
		back++
	}
	forward := 0
	for forward < reach && b.inBounds(row+(forward+1)*dr, col+(forward+1)*dc) {
		forward++
	}

	for i := -back; i <= forward; i++ {
		dst = append(dst, b.At(row+i*dr, col+i*dc).weight())
	}
	return dst
}

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// hasFour reports whether any window of four consecutive weights sums to
// +4 or -4, i.e. holds four discs of the same player.
func hasFour(line []int) bool {
	for i := 0; i+4 <= len(line); i++ {
		sum := line[i] + line[i+1] + line[i+2] + line[i+3]
		if sum == 4 || sum == -4 {
			return true
		}
	}
	return false
}
