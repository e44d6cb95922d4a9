package braid

// Act returns the image of the free-group word x under the action of
// the braid word b on the free group (the mapping class action of the
// braid group on the fundamental group of the punctured disk). The
// braid generator s_j sends
//
//	x_j   -> x_j x_{j+1} x_j^-1
//	x_{j+1} -> x_j
//
// and fixes every other generator; its inverse sends x_j to x_{j+1}
// and x_{j+1} to x_{j+1}^-1 x_j x_{j+1}. Letters of b act left to
// right, so Act(Act(x, a), b) equals Act(x, a concatenated with b).
// The result is freely reduced.
func Act(x, b Word) Word {
	t := x.Clone()
	for _, letter := range b {
		j := letter
		if j < 0 {
			j = -j
		}
		s := make(Word, 0, len(t))
		for _, g := range t {
			switch {
			case letter > 0 && g == j:
				s = append(s, j, j+1, -j)
			case letter > 0 && g == -j:
				s = append(s, j, -(j + 1), -j)
			case letter > 0 && g == j+1:
				s = append(s, j)
			case letter > 0 && g == -(j+1):
				s = append(s, -j)
			case letter < 0 && g == j:
				s = append(s, j+1)
			case letter < 0 && g == -j:
				s = append(s, -(j + 1))
			case letter < 0 && g == j+1:
				s = append(s, -(j + 1), j, j+1)
			case letter < 0 && g == -(j+1):
				s = append(s, -(j + 1), -j, j+1)
			default:
				s = append(s, g)
			}
		}
		t = s
	}
	return t.FreeReduce()
}
