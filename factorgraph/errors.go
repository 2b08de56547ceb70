// SPDX-License-Identifier: MIT

package factorgraph

import "errors"

// Sentinel errors. Callers match them with errors.Is; detection sites wrap
// them with the operation and offending values.
var (
	// ErrIndexOutOfRange indicates a message index outside [0, NumberOfMessages).
	ErrIndexOutOfRange = errors.New("factorgraph: message index out of range")

	// ErrNotConverged indicates a Loop reached its iteration cap while the
	// delta was still above MaxDelta.
	ErrNotConverged = errors.New("factorgraph: schedule did not converge")

	// ErrNilFactor indicates a Step (or List) holds a nil factor.
	ErrNilFactor = errors.New("factorgraph: nil factor")

	// ErrNilSchedule indicates a Sequence or Loop holds a nil schedule.
	ErrNilSchedule = errors.New("factorgraph: nil schedule")
)
