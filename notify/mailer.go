//go:generate go run go.uber.org/mock/mockgen -source=mailer.go -destination=../mocks/mock_mailer.go -package=mocks
// Package notify owns the outbound notification collaborators: the mailer
// used for verification codes and the in-memory code store.
package notify

import (
	"fmt"
	"log/slog"
)

// Mailer delivers a plain text email. Delivery is an external collaborator
// of this system; failures are reported but registration does not roll back
// on a lost email.
type Mailer interface {
	Send(to, subject, body string) error
}

// LogMailer writes outbound mail to the log instead of a wire. It is the
// default in development and tests.
type LogMailer struct {
	log *slog.Logger
}

func NewLogMailer(log *slog.Logger) LogMailer {
	return LogMailer{log: log}
}

func (m LogMailer) Send(to, subject, body string) error {
	m.log.Info(fmt.Sprintf("Mail to %s: %s", to, subject), "body", body)
	return nil
}
