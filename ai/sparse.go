package ai

// SparseVector holds the non-zero entries of a feature vector,
// with Indices sorted in increasing order.
type SparseVector struct {
	Indices []int
	Values  []float64
}

// Dot returns the inner product with a dense vector.
func (v SparseVector) Dot(dense []float64) float64 {
	sum := 0.0
	for k, idx := range v.Indices {
		sum += v.Values[k] * dense[idx]
	}
	return sum
}

// AddTo adds scale*v to dense in place.
func (v SparseVector) AddTo(dense []float64, scale float64) {
	for k, idx := range v.Indices {
		dense[idx] += scale * v.Values[k]
	}
}

func (v SparseVector) SquaredNorm() float64 {
	sum := 0.0
	for _, value := range v.Values {
		sum += value * value
	}
	return sum
}

// Len is the number of non-zero entries.
func (v SparseVector) Len() int {
	return len(v.Indices)
}
