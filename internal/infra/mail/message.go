// Package mail renders the internal notification emails and delivers them
// through SendGrid or SMTP.
package mail

import (
	"context"
	"errors"
)

var ErrNoRecipient = errors.New("mail: message has no recipient")

type Message struct {
	To      string
	From    string
	Subject string
	HTML    string
	Text    string
}

// Transport delivers a fully addressed message.
type Transport interface {
	Send(ctx context.Context, msg Message) error
}
