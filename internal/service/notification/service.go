package notification

import (
	"context"
	"errors"
	"strings"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
	"github.com/m04kA/SMC-DeliveryBooking/internal/integrations/attachment"
	"github.com/m04kA/SMC-DeliveryBooking/internal/integrations/mailer"
)

// Service отправляет поставщику подтверждение бронирования.
// Отправка не влияет на бронирование: ошибки только логируются.
type Service struct {
	mailer  Mailer
	fetcher AttachmentFetcher
	subject string
	metrics Metrics
	logger  Logger
}

// NewService создает сервис уведомлений; fetcher и metrics могут быть nil
func NewService(m Mailer, fetcher AttachmentFetcher, subject string, metrics Metrics, logger Logger) *Service {
	if subject == "" {
		subject = DefaultSubject
	}
	return &Service{
		mailer:  m,
		fetcher: fetcher,
		subject: subject,
		metrics: metrics,
		logger:  logger,
	}
}

// SendConfirmation отправляет письмо-подтверждение и возвращает true при успехе
func (s *Service) SendConfirmation(ctx context.Context, recipient string, cc []string, r *domain.Reservation) bool {
	sent := s.send(ctx, recipient, cc, r)
	if s.metrics != nil {
		s.metrics.IncNotification(sent)
	}
	return sent
}

func (s *Service) send(ctx context.Context, recipient string, cc []string, r *domain.Reservation) bool {
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		s.logger.Warn("Notification: supplier=%s has no e-mail, confirmation skipped", r.Supplier)
		return false
	}

	msg := &mailer.Message{
		To:      recipient,
		CC:      cc,
		Subject: s.subject,
		Body:    BuildBody(r),
	}

	// Вложение необязательно: без него письмо все равно отправляется
	if s.fetcher != nil {
		doc, err := s.fetcher.Fetch(ctx)
		switch {
		case err == nil:
			msg.Attachment = &mailer.Attachment{Name: doc.Name, Data: doc.Data}
		case errors.Is(err, attachment.ErrNotConfigured):
			// вложение не настроено
		default:
			s.logger.Warn("Notification: attachment unavailable, sending without it: %v", err)
		}
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		s.logger.Error("Notification: failed to send confirmation to %s (supplier=%s): %v", recipient, r.Supplier, err)
		return false
	}

	s.logger.Info("Notification: confirmation sent to %s (cc=%d) supplier=%s date=%s",
		recipient, len(cc), r.Supplier, r.Date.Format(domain.DateFormat))
	return true
}
