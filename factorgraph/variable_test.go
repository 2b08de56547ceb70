// SPDX-License-Identifier: MIT

package factorgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/skillgraph/factorgraph"
	"github.com/katalvlaran/skillgraph/gaussian"
)

func TestVariable_ValueAndReset(t *testing.T) {
	prior := gaussian.FromMeanAndVariance(25, 4)
	v := factorgraph.NewVariable("skill", prior)
	assert.Equal(t, "skill", v.Name())
	assert.Equal(t, "skill", v.String())
	assert.Equal(t, prior, v.Value())

	v.SetValue(gaussian.FromMeanAndVariance(30, 1))
	assert.InDelta(t, 30.0, v.Value().Mean(), 1e-12)
	assert.Equal(t, prior, v.Prior())

	v.ResetToPrior()
	assert.Equal(t, prior, v.Value())
}

func TestMessage_Value(t *testing.T) {
	m := factorgraph.NewMessage("message from f to v", gaussian.Uniform())
	assert.Equal(t, "message from f to v", m.Name())
	assert.Equal(t, m.Name(), m.String())
	assert.True(t, m.Value().IsUniform())

	m.SetValue(gaussian.FromMeanAndVariance(1, 2))
	assert.InDelta(t, 2.0, m.Value().Variance(), 1e-12)
}
