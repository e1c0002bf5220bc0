package operators

import (
	"github.com/chewxy/math32"
)

type logistic int8

// Logistic returns the logistic sigmoid activation, 1 / (1 + e^-x).
func Logistic() logistic {
	return logistic(0)
}

func (l logistic) TypeString() string {
	return "logistic"
}

func (l logistic) Value(x float32) float32 {
	return 1 / (1 + math32.Exp(-x))
}

// Deriv gives the derivative of the function, in terms of its output 'v' (rather than its input).
func (l logistic) Deriv(v float32) float32 {
	return v * (1 - v)
}
