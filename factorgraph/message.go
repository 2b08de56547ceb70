// SPDX-License-Identifier: MIT

package factorgraph

import "github.com/katalvlaran/skillgraph/gaussian"

// Message is one factor's contribution to one variable's marginal. Dividing
// it out of the marginal recovers the variable's belief without that factor.
type Message struct {
	name  string
	value gaussian.Distribution
}

// NewMessage returns a message holding value.
func NewMessage(name string, value gaussian.Distribution) *Message {
	return &Message{name: name, value: value}
}

// Name returns the message label ("message from <factor> to <variable>").
func (m *Message) Name() string { return m.name }

// Value returns the current contribution.
func (m *Message) Value() gaussian.Distribution { return m.value }

// SetValue replaces the current contribution.
func (m *Message) SetValue(d gaussian.Distribution) { m.value = d }

func (m *Message) String() string { return m.name }
