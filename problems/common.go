package problems

// Problem is a definite integral over a finite interval with a known value.
type Problem interface {
	Description() string
	Limits() (a, b float64)
	Integrand(x float64) complex128
	Value() complex128
}

// Singular problems have an integrable singularity at an endpoint; rules that
// evaluate the endpoints (the trapezium) cannot handle them.
type Singular interface {
	Problem
	Singular() bool
}

// IsSingular reports whether p declares an endpoint singularity.
func IsSingular(p Problem) bool {
	s, ok := p.(Singular)
	return ok && s.Singular()
}
