package quad

import (
	"errors"
	"strings"
)

type Method int

const (
	DoubleExponential = Method(iota) // tanh-sinh
	Trapezium                        // composite trapezoidal rule
	NumberOfMethods   = uint(iota)
)

var methodNames = [...]string{"de", "trapezium"}

func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return "unknown"
	}
	return methodNames[m]
}

// ParseMethod accepts the names printed by Method.String.
func ParseMethod(name string) (Method, error) {
	for i, n := range methodNames {
		if strings.EqualFold(n, name) {
			return Method(i), nil
		}
	}
	return 0, errors.New("unknown quadrature method " + name)
}

func New(m Method) (i Integrator, err error) {
	switch m {
	case DoubleExponential:
		var d doubleExponential
		d.Name = "DoubleExponential"
		d.MaxEvaluations = MaxEvaluations
		i = &d
	case Trapezium:
		var t trapezium
		t.Name = "Trapezium"
		t.MaxEvaluations = maxSubdivisions + 1
		i = &t
	default:
		err = errors.New("unknown quadrature method")
	}
	return
}
