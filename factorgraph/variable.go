// SPDX-License-Identifier: MIT

package factorgraph

import "github.com/katalvlaran/skillgraph/gaussian"

// Variable is a random variable node. It owns its current marginal; factors
// bound to it read and replace that value.
type Variable struct {
	name  string
	prior gaussian.Distribution
	value gaussian.Distribution
}

// NewVariable returns a variable whose marginal starts at prior.
// Most graph variables use gaussian.Uniform() and receive their actual prior
// through a prior factor.
func NewVariable(name string, prior gaussian.Distribution) *Variable {
	return &Variable{name: name, prior: prior, value: prior}
}

// Name returns the variable's label.
func (v *Variable) Name() string { return v.name }

// Value returns the current marginal.
func (v *Variable) Value() gaussian.Distribution { return v.value }

// SetValue replaces the current marginal.
func (v *Variable) SetValue(d gaussian.Distribution) { v.value = d }

// Prior returns the value ResetToPrior restores.
func (v *Variable) Prior() gaussian.Distribution { return v.prior }

// ResetToPrior discards every contribution received so far.
func (v *Variable) ResetToPrior() { v.value = v.prior }

func (v *Variable) String() string { return v.name }
