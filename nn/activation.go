// SPDX-License-Identifier: MIT

// Package nn - element-wise activation functions.
//
// Only the output-form derivative is exposed, since Backward holds the
// activated values rather than the pre-activations.

package nn

import "math"

// Activation is a stateless pair of scalar functions applied element-wise.
//
// DerivativeFromOutput receives the activation's OUTPUT y = Forward(x), not x.
// That shortcut is only correct for functions whose derivative can be written
// in terms of their own output, such as the logistic sigmoid.
type Activation interface {
	Forward(x float64) float64
	DerivativeFromOutput(y float64) float64
}

type sigmoid struct{}

func (sigmoid) Forward(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

func (sigmoid) DerivativeFromOutput(y float64) float64 {
	return y * (1 - y)
}

// Sigmoid is the logistic activation σ(x) = 1/(1+e^-x) with σ' = y(1-y).
var Sigmoid Activation = sigmoid{}

// FuncPair adapts two plain functions to the Activation interface.
//
//	tanh := nn.FuncPair{
//	    Fn:    math.Tanh,
//	    Deriv: func(y float64) float64 { return 1 - y*y },
//	}
type FuncPair struct {
	Fn    func(x float64) float64 // forward function
	Deriv func(y float64) float64 // derivative expressed through the output
}

// Forward calls p.Fn.
func (p FuncPair) Forward(x float64) float64 { return p.Fn(x) }

// DerivativeFromOutput calls p.Deriv.
func (p FuncPair) DerivativeFromOutput(y float64) float64 { return p.Deriv(y) }
