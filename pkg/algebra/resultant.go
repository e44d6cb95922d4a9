package algebra

// ResultantY returns Res_y(f, g), the resultant of two bivariate
// polynomials with respect to y, as a univariate polynomial in x. The
// resultant vanishes at exactly the x-values where f and g share a root
// in y (or where both leading coefficients vanish).
//
// The Sylvester matrix has polynomial entries, so the determinant is
// computed with fraction-free Bareiss elimination: every division in the
// update step is exact in the polynomial ring.
func ResultantY(f, g BiPoly) UPoly {
	m, n := f.DegY(), g.DegY()
	if m < 0 || n < 0 {
		return nil
	}
	if m == 0 && n == 0 {
		return UPolyConst(One())
	}
	size := m + n
	mat := make([][]UPoly, size)
	for i := range mat {
		mat[i] = make([]UPoly, size)
		for j := range mat[i] {
			mat[i][j] = nil
		}
	}
	// rows 0..n-1: shifted coefficients of f (y-degree descending)
	for i := 0; i < n; i++ {
		for k := 0; k <= m; k++ {
			mat[i][i+k] = f[m-k]
		}
	}
	// rows n..n+m-1: shifted coefficients of g
	for i := 0; i < m; i++ {
		for k := 0; k <= n; k++ {
			mat[n+i][i+k] = g[n-k]
		}
	}
	return bareissDet(mat)
}

// DiscriminantY returns Res_y(f, ∂f/∂y). Up to a leading-coefficient
// factor this is the discriminant of f as a polynomial in y; it is the
// zero polynomial exactly when f has a repeated factor in y.
func DiscriminantY(f BiPoly) UPoly {
	return ResultantY(f, f.DerivativeY())
}

// bareissDet computes the determinant of a square matrix of polynomials
// using Bareiss' fraction-free elimination. The input matrix is consumed.
func bareissDet(mat [][]UPoly) UPoly {
	size := len(mat)
	sign := 1
	prev := UPolyConst(One())
	for k := 0; k < size-1; k++ {
		// pivot: find a row with nonzero entry in column k
		if mat[k][k].IsZero() {
			swapped := false
			for r := k + 1; r < size; r++ {
				if !mat[r][k].IsZero() {
					mat[k], mat[r] = mat[r], mat[k]
					sign = -sign
					swapped = true
					break
				}
			}
			if !swapped {
				return nil // singular: zero column below the diagonal
			}
		}
		for i := k + 1; i < size; i++ {
			for j := k + 1; j < size; j++ {
				num := mat[k][k].Mul(mat[i][j]).Sub(mat[i][k].Mul(mat[k][j]))
				q, ok := num.Div(prev)
				if !ok {
					panic("algebra: inexact division in Bareiss elimination")
				}
				mat[i][j] = q
			}
			mat[i][k] = nil
		}
		prev = mat[k][k]
	}
	det := mat[size-1][size-1]
	if sign < 0 {
		det = det.Neg()
	}
	return det
}
