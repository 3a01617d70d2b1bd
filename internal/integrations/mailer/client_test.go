package mailer

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type capturedMail struct {
	from string
	to   []string
	raw  string
}

type fakeSender struct {
	sent    []capturedMail
	sendErr error
	closed  bool
}

func (s *fakeSender) Send(from string, to []string, msg io.WriterTo) error {
	if s.sendErr != nil {
		return s.sendErr
	}
	var buf bytes.Buffer
	if _, err := msg.WriteTo(&buf); err != nil {
		return err
	}
	s.sent = append(s.sent, capturedMail{from: from, to: to, raw: buf.String()})
	return nil
}

func (s *fakeSender) Close() error {
	s.closed = true
	return nil
}

func newTestClient(sender *fakeSender) *Client {
	c := NewClient(Config{Host: "smtp.example.com", Port: 587, Username: "bookings@example.com"})
	c.dial = func() (gomail.SendCloser, error) { return sender, nil }
	return c
}

func TestClient_Send(t *testing.T) {
	sender := &fakeSender{}
	client := newTestClient(sender)

	err := client.Send(context.Background(), &Message{
		To:         "ops@acme.com",
		CC:         []string{"a@acme.com", "b@acme.com"},
		Subject:    "Confirmación",
		Body:       "Reserva confirmada",
		Attachment: &Attachment{Name: "instrucciones.pdf", Data: []byte("%PDF-1.4")},
	})
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	mail := sender.sent[0]
	assert.Equal(t, "bookings@example.com", mail.from)
	assert.ElementsMatch(t, []string{"ops@acme.com", "a@acme.com", "b@acme.com"}, mail.to)
	assert.Contains(t, mail.raw, "instrucciones.pdf")
	assert.True(t, sender.closed)
}

func TestClient_Send_RequiresRecipient(t *testing.T) {
	client := newTestClient(&fakeSender{})

	err := client.Send(context.Background(), &Message{Subject: "x"})
	require.ErrorIs(t, err, ErrInvalidMessage)
}

func TestClient_Send_SMTPFailure(t *testing.T) {
	client := newTestClient(&fakeSender{sendErr: errors.New("550 mailbox unavailable")})

	err := client.Send(context.Background(), &Message{To: "ops@acme.com"})
	require.ErrorIs(t, err, ErrSend)
}
