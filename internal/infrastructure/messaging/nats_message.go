// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package messaging

import (
	"github.com/nats-io/nats.go"
)

// NatsMsg wraps a NATS message so handlers depend on [domain.Message]
// instead of the NATS client types.
type NatsMsg struct {
	*nats.Msg
}

// NewNatsMsg creates a new NatsMsg from a raw NATS message.
func NewNatsMsg(msg *nats.Msg) *NatsMsg {
	return &NatsMsg{Msg: msg}
}

// Subject returns the subject of the message.
func (m *NatsMsg) Subject() string {
	return m.Msg.Subject
}

// Data returns the payload of the message.
func (m *NatsMsg) Data() []byte {
	return m.Msg.Data
}

// Respond replies to the message.
func (m *NatsMsg) Respond(data []byte) error {
	return m.Msg.Respond(data)
}

// HasReply reports whether the message expects a reply.
func (m *NatsMsg) HasReply() bool {
	return m.Msg.Reply != ""
}
