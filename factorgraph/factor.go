// SPDX-License-Identifier: MIT

package factorgraph

import (
	"fmt"

	"github.com/katalvlaran/skillgraph/gaussian"
)

// Factor is a factor node as seen by schedules and List.
type Factor interface {
	// Name returns a human-readable description of the factor.
	Name() string

	// NumberOfMessages returns the number of bound (variable, message) pairs.
	NumberOfMessages() int

	// UpdateMessage recomputes the message to the variable at index, folds it
	// into that variable's marginal and returns how much the marginal moved.
	UpdateMessage(index int) (gaussian.Difference, error)

	// SendMessage multiplies the stored message at index into its variable
	// and returns the log-normalization of that product.
	SendMessage(index int) (float64, error)

	// ResetMarginals resets every bound variable to its prior.
	ResetMarginals()

	// LogNormalization returns this factor's contribution to model evidence.
	LogNormalization() float64
}

// Base implements the binding half of Factor. Concrete factors embed it and
// supply UpdateMessage and LogNormalization.
//
// Bindings are positional: the first variable bound is index 0, and the
// message at index i always belongs to the variable at index i.
type Base struct {
	name      string
	variables []*Variable
	messages  []*Message
}

// NewBase returns an unbound Base with the given factor name.
func NewBase(name string) Base {
	return Base{name: name}
}

// Name returns the factor name.
func (b *Base) Name() string { return b.name }

func (b *Base) String() string { return b.name }

// Bind appends v to the bindings with a fresh uniform message and returns
// that message. Binding order fixes the indices used by UpdateMessage.
// Complexity: O(1) amortized.
func (b *Base) Bind(v *Variable) *Message {
	m := NewMessage(fmt.Sprintf("message from %s to %s", b.name, v.Name()), gaussian.Uniform())
	b.variables = append(b.variables, v)
	b.messages = append(b.messages, m)

	return m
}

// NumberOfMessages returns the number of bindings.
func (b *Base) NumberOfMessages() int { return len(b.messages) }

// Variables returns the bound variables in binding order. The slice is a
// copy; the variables are shared.
func (b *Base) Variables() []*Variable {
	out := make([]*Variable, len(b.variables))
	copy(out, b.variables)

	return out
}

// Messages returns the bound messages in binding order. The slice is a copy;
// the messages are shared.
func (b *Base) Messages() []*Message {
	out := make([]*Message, len(b.messages))
	copy(out, b.messages)

	return out
}

// Variable returns the variable bound at index. It panics on a bad index,
// like a slice; call CheckIndex first at public boundaries.
func (b *Base) Variable(index int) *Variable { return b.variables[index] }

// Message returns the message bound at index. It panics on a bad index.
func (b *Base) Message(index int) *Message { return b.messages[index] }

// CheckIndex returns a wrapped ErrIndexOutOfRange when index is not a valid
// binding position. op names the calling operation in the error.
func (b *Base) CheckIndex(op string, index int) error {
	if index < 0 || index >= len(b.messages) {
		return fmt.Errorf("%s(%d) on %q with %d messages: %w", op, index, b.name, len(b.messages), ErrIndexOutOfRange)
	}

	return nil
}

// SendMessage multiplies the message at index into its variable's marginal.
//
// Returns:
//   - log ∫ marginal·message, the evidence term of the product.
//
// Errors:
//   - ErrIndexOutOfRange (wrapped).
func (b *Base) SendMessage(index int) (float64, error) {
	if err := b.CheckIndex("SendMessage", index); err != nil {
		return 0, err
	}
	v, m := b.variables[index], b.messages[index]
	marginal := v.Value()
	logZ := gaussian.LogProductNormalization(marginal, m.Value())
	v.SetValue(gaussian.Multiply(marginal, m.Value()))

	return logZ, nil
}

// ResetMarginals resets every bound variable to its prior.
func (b *Base) ResetMarginals() {
	for _, v := range b.variables {
		v.ResetToPrior()
	}
}
