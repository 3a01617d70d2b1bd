package domain

import "time"

// Session is the per-supplier context of the booking flow.
// Created on successful login and discarded on logout or after a committed reservation.
type Session struct {
	Token     string
	Supplier  string
	Email     string
	CC        []string
	Draft     BookingDraft
	CreatedAt time.Time
	ExpiresAt time.Time
}

// BookingDraft holds the choices made so far in the booking flow
type BookingDraft struct {
	Date           *time.Time
	PackageCount   int
	PurchaseOrders []string
	Slot           *Slot
}

// IsExpired returns true if the session is no longer valid at now
func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// ResetDraft discards the booking choices
func (s *Session) ResetDraft() {
	s.Draft = BookingDraft{}
}

// Clone returns a deep copy of the session
func (s *Session) Clone() *Session {
	clone := *s
	clone.CC = append([]string(nil), s.CC...)
	clone.Draft.PurchaseOrders = append([]string(nil), s.Draft.PurchaseOrders...)
	if s.Draft.Date != nil {
		d := *s.Draft.Date
		clone.Draft.Date = &d
	}
	if s.Draft.Slot != nil {
		sl := *s.Draft.Slot
		clone.Draft.Slot = &sl
	}
	return &clone
}
