package game

// Directions come in opposite pairs: 2k and 2k+1 share axis k.
var directions = [8][2]int{
	{1, 0}, {-1, 0},
	{0, 1}, {0, -1},
	{1, 1}, {-1, -1},
	{1, -1}, {-1, 1},
}

var (
	// lines[s][k] is the full line through s along axis k, s included.
	lines [Size * Size][4]Bitboard
	// rays[s][d] lists the squares leaving s in direction d, nearest first.
	rays [Size * Size][8][]Square
	// paths[s][d][n] holds the first n squares of rays[s][d].
	paths [Size * Size][8][Size]Bitboard
)

func init() {
	for s := Square(0); s.Valid(); s++ {
		for d, dir := range directions {
			x, y := s.X(), s.Y()
			var path Bitboard
			for {
				x, y = x+dir[0], y+dir[1]
				to, ok := NewSquare(x, y)
				if !ok {
					break
				}
				paths[s][d][len(rays[s][d])] = path
				rays[s][d] = append(rays[s][d], to)
				path = path.With(to)
			}
			lines[s][d/2] |= path
		}
		for k := range lines[s] {
			lines[s][k] = lines[s][k].With(s)
		}
	}
}

// lineMoves is the LOA movement: a piece travels exactly as many squares as
// there are pieces on the line it moves along, may jump its own pieces but
// not enemy ones, and captures an enemy on the destination.
func lineMoves(from Square, friends, enemies Bitboard) Bitboard {
	if !friends.Has(from) {
		return 0
	}
	occupied := friends | enemies
	var destinations Bitboard
	for d := range directions {
		n := (lines[from][d/2] & occupied).Count()
		ray := rays[from][d]
		if n > len(ray) {
			continue
		}
		to := ray[n-1]
		if friends.Has(to) || paths[from][d][n-1]&enemies != 0 {
			continue
		}
		destinations = destinations.With(to)
	}
	return destinations
}
