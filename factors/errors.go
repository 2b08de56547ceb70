// SPDX-License-Identifier: MIT

package factors

import "errors"

// ErrInvalidArgument reports a factor constructed from inputs that cannot
// describe a graph: no summands, weight/summand length mismatch, nil
// variables, non-finite weights or non-positive variances. Construction sites
// wrap it with the offending values.
var ErrInvalidArgument = errors.New("factors: invalid argument")
