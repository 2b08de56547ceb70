// SPDX-License-Identifier: MIT

package factorgraph_test

import (
	"github.com/katalvlaran/skillgraph/factorgraph"
	"github.com/katalvlaran/skillgraph/gaussian"
)

// scriptedFactor reports a fixed sequence of delta magnitudes, repeating the
// last one once the script runs out.
type scriptedFactor struct {
	factorgraph.Base

	deltas []float64
	calls  int
}

func newScripted(name string, deltas ...float64) *scriptedFactor {
	f := &scriptedFactor{Base: factorgraph.NewBase(name), deltas: deltas}
	f.Bind(factorgraph.NewVariable(name+".v", gaussian.Uniform()))

	return f
}

func (f *scriptedFactor) UpdateMessage(index int) (gaussian.Difference, error) {
	if err := f.CheckIndex("UpdateMessage", index); err != nil {
		return gaussian.Difference{}, err
	}
	d := f.deltas[len(f.deltas)-1]
	if f.calls < len(f.deltas) {
		d = f.deltas[f.calls]
	}
	f.calls++

	return gaussian.Difference{PrecisionMean: d}, nil
}

func (f *scriptedFactor) LogNormalization() float64 { return 0 }
