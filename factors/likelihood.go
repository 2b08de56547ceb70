// SPDX-License-Identifier: MIT

package factors

import (
	"fmt"
	"math"

	"github.com/katalvlaran/skillgraph/factorgraph"
	"github.com/katalvlaran/skillgraph/gaussian"
)

// LikelihoodFactor connects a latent variable x (index 0) to a noisy
// observation of it y (index 1): y ~ N(x, β²).
type LikelihoodFactor struct {
	factorgraph.Base

	precision float64 // 1/β²
}

var _ factorgraph.Factor = (*LikelihoodFactor)(nil)

// NewLikelihood binds x then y with noise variance betaSquared.
//
// Errors:
//   - ErrInvalidArgument (wrapped): nil variable or betaSquared not finite and > 0.
func NewLikelihood(betaSquared float64, x, y *factorgraph.Variable) (*LikelihoodFactor, error) {
	if x == nil || y == nil {
		return nil, fmt.Errorf("NewLikelihood: nil variable: %w", ErrInvalidArgument)
	}
	if !(betaSquared > 0) || math.IsInf(betaSquared, 0) {
		return nil, fmt.Errorf("NewLikelihood(%s, %s): β² %g must be finite and > 0: %w",
			x.Name(), y.Name(), betaSquared, ErrInvalidArgument)
	}

	f := &LikelihoodFactor{
		Base:      factorgraph.NewBase(fmt.Sprintf("Likelihood of %s going to %s", y.Name(), x.Name())),
		precision: 1.0 / betaSquared,
	}
	f.Bind(x)
	f.Bind(y)

	return f, nil
}

// UpdateMessage refreshes the message to x (index 0) or y (index 1).
func (f *LikelihoodFactor) UpdateMessage(index int) (gaussian.Difference, error) {
	if err := f.CheckIndex("UpdateMessage", index); err != nil {
		return gaussian.Difference{}, err
	}
	other := 1 - index

	return f.update(f.Message(index), f.Message(other), f.Variable(index), f.Variable(other)), nil
}

// update sends the other side's cavity, widened by β², into target.
func (f *LikelihoodFactor) update(targetMessage, otherMessage *factorgraph.Message, target, other *factorgraph.Variable) gaussian.Difference {
	oldMarginal := target.Value()
	cavity := gaussian.Divide(other.Value(), otherMessage.Value())

	a := f.precision / (f.precision + cavity.Precision())
	newMessage := gaussian.FromPrecisionMean(a*cavity.PrecisionMean(), a*cavity.Precision())
	newMarginal := gaussian.Multiply(gaussian.Divide(oldMarginal, targetMessage.Value()), newMessage)

	targetMessage.SetValue(newMessage)
	target.SetValue(newMarginal)

	return gaussian.Subtract(newMarginal, oldMarginal)
}

// LogNormalization is LogRatioNormalization(x marginal, message to x).
func (f *LikelihoodFactor) LogNormalization() float64 {
	return gaussian.LogRatioNormalization(f.Variable(0).Value(), f.Message(0).Value())
}
