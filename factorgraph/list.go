// SPDX-License-Identifier: MIT

package factorgraph

import "fmt"

// List is a set of factors that together define one model.
type List []Factor

// LogNormalization returns the log evidence of the model given the messages
// currently stored in its factors.
//
// Implementation:
//   - Stage 1: reset every variable to its prior.
//   - Stage 2: send every stored message back into its variable, summing the
//     product normalizers.
//   - Stage 3: add every factor's own LogNormalization.
//
// Side effects:
//   - Variable marginals are rebuilt from the stored messages. After a
//     converged schedule they end where they started.
//
// Errors:
//   - ErrNilFactor (wrapped) for a nil entry.
func (l List) LogNormalization() (float64, error) {
	for i, f := range l {
		if f == nil {
			return 0, fmt.Errorf("List.LogNormalization: factor %d: %w", i, ErrNilFactor)
		}
		f.ResetMarginals()
	}

	sumLogZ := 0.0
	for _, f := range l {
		for j := 0; j < f.NumberOfMessages(); j++ {
			logZ, err := f.SendMessage(j)
			if err != nil {
				return 0, fmt.Errorf("List.LogNormalization: %w", err)
			}
			sumLogZ += logZ
		}
	}

	sumLogS := 0.0
	for _, f := range l {
		sumLogS += f.LogNormalization()
	}

	return sumLogZ + sumLogS, nil
}
