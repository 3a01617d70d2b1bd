package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
	"github.com/m04kA/SMC-DeliveryBooking/internal/integrations/attachment"
	"github.com/m04kA/SMC-DeliveryBooking/internal/integrations/mailer"
	"github.com/m04kA/SMC-DeliveryBooking/pkg/logger"
)

type fakeMailer struct {
	sent []*mailer.Message
	err  error
}

func (m *fakeMailer) Send(_ context.Context, msg *mailer.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

type fakeFetcher struct {
	doc *attachment.Document
	err error
}

func (f *fakeFetcher) Fetch(context.Context) (*attachment.Document, error) {
	return f.doc, f.err
}

type countingMetrics struct {
	sent, failed int
}

func (m *countingMetrics) IncNotification(sent bool) {
	if sent {
		m.sent++
	} else {
		m.failed++
	}
}

func largeReservation() *domain.Reservation {
	return &domain.Reservation{
		Date:           time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		Slots:          []domain.Slot{{Hour: 9}, {Hour: 9, Minute: 30}},
		Supplier:       "ACME",
		PackageCount:   6,
		PurchaseOrders: []string{"OC-1", "OC-2"},
	}
}

func TestFormatSlotRange(t *testing.T) {
	assert.Equal(t, "09:00 - 10:00", FormatSlotRange([]domain.Slot{{Hour: 9}, {Hour: 9, Minute: 30}}))
	assert.Equal(t, "15:30 - 16:00", FormatSlotRange([]domain.Slot{{Hour: 15, Minute: 30}}))
	assert.Equal(t, "", FormatSlotRange(nil))
}

func TestSendConfirmation_WithAttachment(t *testing.T) {
	m := &fakeMailer{}
	metrics := &countingMetrics{}
	fetcher := &fakeFetcher{doc: &attachment.Document{Name: "guia.pdf", Data: []byte("pdf")}}
	svc := NewService(m, fetcher, "", metrics, logger.NewNop())

	ok := svc.SendConfirmation(context.Background(), "ops@acme.com", []string{"cc@acme.com"}, largeReservation())

	require.True(t, ok)
	require.Len(t, m.sent, 1)
	msg := m.sent[0]
	assert.Equal(t, "ops@acme.com", msg.To)
	assert.Equal(t, []string{"cc@acme.com"}, msg.CC)
	assert.Equal(t, DefaultSubject, msg.Subject)
	assert.Contains(t, msg.Body, "Horario: 09:00 - 10:00")
	assert.Contains(t, msg.Body, "Órdenes de compra: OC-1, OC-2")
	require.NotNil(t, msg.Attachment)
	assert.Equal(t, "guia.pdf", msg.Attachment.Name)
	assert.Equal(t, 1, metrics.sent)
}

func TestSendConfirmation_AttachmentFailureIsNotFatal(t *testing.T) {
	m := &fakeMailer{}
	svc := NewService(m, &fakeFetcher{err: attachment.ErrUnavailable}, "", nil, logger.NewNop())

	ok := svc.SendConfirmation(context.Background(), "ops@acme.com", nil, largeReservation())

	require.True(t, ok)
	require.Len(t, m.sent, 1)
	assert.Nil(t, m.sent[0].Attachment)
}

func TestSendConfirmation_SendFailure(t *testing.T) {
	metrics := &countingMetrics{}
	svc := NewService(&fakeMailer{err: errors.New("smtp down")}, nil, "", metrics, logger.NewNop())

	ok := svc.SendConfirmation(context.Background(), "ops@acme.com", nil, largeReservation())

	assert.False(t, ok)
	assert.Equal(t, 1, metrics.failed)
}

func TestSendConfirmation_NoRecipient(t *testing.T) {
	m := &fakeMailer{}
	svc := NewService(m, nil, "", nil, logger.NewNop())

	assert.False(t, svc.SendConfirmation(context.Background(), "  ", nil, largeReservation()))
	assert.Empty(t, m.sent)
}
