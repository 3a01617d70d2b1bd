package mailer

import (
	"context"
	"fmt"
	"io"
	"strings"

	"gopkg.in/gomail.v2"
)

// Client SMTP-клиент для писем поставщикам
type Client struct {
	from string
	dial func() (gomail.SendCloser, error)
}

// NewClient создает клиента; соединение открывается на каждое письмо
func NewClient(cfg Config) *Client {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)

	from := cfg.From
	if from == "" {
		from = cfg.Username
	}

	return &Client{
		from: from,
		dial: dialer.Dial,
	}
}

// Send отправляет письмо
func (c *Client) Send(ctx context.Context, msg *Message) error {
	if msg == nil || strings.TrimSpace(msg.To) == "" {
		return fmt.Errorf("%w: recipient is required", ErrInvalidMessage)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrSend, err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", c.from)
	m.SetHeader("To", msg.To)
	if len(msg.CC) > 0 {
		m.SetHeader("Cc", msg.CC...)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	if msg.Attachment != nil && len(msg.Attachment.Data) > 0 {
		data := msg.Attachment.Data
		m.Attach(msg.Attachment.Name, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(data)
			return err
		}))
	}

	sender, err := c.dial()
	if err != nil {
		return fmt.Errorf("%w: dial: %v", ErrSend, err)
	}
	defer sender.Close()

	if err := gomail.Send(sender, m); err != nil {
		return fmt.Errorf("%w: %v", ErrSend, err)
	}

	return nil
}
