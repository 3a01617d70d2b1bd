package notification

import (
	"context"

	"github.com/m04kA/SMC-DeliveryBooking/internal/integrations/attachment"
	"github.com/m04kA/SMC-DeliveryBooking/internal/integrations/mailer"
)

// Mailer интерфейс отправки писем
type Mailer interface {
	Send(ctx context.Context, msg *mailer.Message) error
}

// AttachmentFetcher интерфейс загрузки вложения
type AttachmentFetcher interface {
	Fetch(ctx context.Context) (*attachment.Document, error)
}

// Metrics интерфейс сбора метрик уведомлений
type Metrics interface {
	IncNotification(sent bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
