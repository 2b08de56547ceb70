// SPDX-License-Identifier: MIT

package factors

import (
	"fmt"
	"math"

	"github.com/katalvlaran/skillgraph/factorgraph"
	"github.com/katalvlaran/skillgraph/gaussian"
)

// PriorFactor sends a fixed N(mean, variance) belief into one variable.
type PriorFactor struct {
	factorgraph.Base

	prior gaussian.Distribution
}

var _ factorgraph.Factor = (*PriorFactor)(nil)

// NewPrior binds v and returns a factor that pins it to N(mean, variance).
//
// Errors:
//   - ErrInvalidArgument (wrapped): nil v, non-finite mean, or a variance
//     that is not finite and positive.
func NewPrior(mean, variance float64, v *factorgraph.Variable) (*PriorFactor, error) {
	if v == nil {
		return nil, fmt.Errorf("NewPrior: nil variable: %w", ErrInvalidArgument)
	}
	if math.IsNaN(mean) || math.IsInf(mean, 0) {
		return nil, fmt.Errorf("NewPrior(%s): mean %g is not finite: %w", v.Name(), mean, ErrInvalidArgument)
	}
	if !(variance > 0) || math.IsInf(variance, 0) {
		return nil, fmt.Errorf("NewPrior(%s): variance %g must be finite and > 0: %w", v.Name(), variance, ErrInvalidArgument)
	}

	f := &PriorFactor{
		Base:  factorgraph.NewBase(fmt.Sprintf("Prior value going to %s", v.Name())),
		prior: gaussian.FromMeanAndVariance(mean, variance),
	}
	f.Bind(v)

	return f, nil
}

// UpdateMessage replaces the stored message with the prior and returns how
// much the marginal moved. index must be 0.
func (f *PriorFactor) UpdateMessage(index int) (gaussian.Difference, error) {
	if err := f.CheckIndex("UpdateMessage", index); err != nil {
		return gaussian.Difference{}, err
	}
	message, variable := f.Message(0), f.Variable(0)
	oldMarginal := variable.Value()

	newMarginal := gaussian.Multiply(gaussian.Divide(oldMarginal, message.Value()), f.prior)
	message.SetValue(f.prior)
	variable.SetValue(newMarginal)

	return gaussian.Subtract(newMarginal, oldMarginal), nil
}

// LogNormalization is 0: a prior adds no evidence term.
func (f *PriorFactor) LogNormalization() float64 { return 0 }
