package domain

import (
	"errors"
	"time"
)

// Переходы статусов вынесены в явные методы, чтобы правила (включая
// кросс-статусное правило "оплачено ⇒ подтверждено") были тестируемы
// отдельно от хендлеров и сервисов.

var (
	// ErrInvalidBookingTransition возвращается при недопустимом переходе статуса бронирования
	ErrInvalidBookingTransition = errors.New("domain: invalid booking status transition")

	// ErrInvalidPaymentTransition возвращается при недопустимом переходе статуса оплаты
	ErrInvalidPaymentTransition = errors.New("domain: invalid payment status transition")

	// ErrInvalidReminderTransition возвращается при недопустимом переходе статуса напоминания
	ErrInvalidReminderTransition = errors.New("domain: invalid reminder status transition")
)

// Confirm переводит бронирование pending -> confirmed
// confirmed и cancelled — поглощающие статусы, из них переход невозможен
func (b *Booking) Confirm() error {
	if !b.CanBeConfirmed() {
		return ErrInvalidBookingTransition
	}
	b.Status = BookingStatusConfirmed
	return nil
}

// Cancel переводит бронирование в cancelled с указанием причины
// Разрешено из pending и confirmed
func (b *Booking) Cancel(reason string, now time.Time) error {
	if !b.CanBeCancelled() {
		return ErrInvalidBookingTransition
	}
	b.Status = BookingStatusCancelled
	b.CancellationReason = &reason
	b.CancelledAt = &now
	return nil
}

// paymentChain порядок статусов оплаты в цепочке pending - partial - paid - refunded
var paymentChain = map[PaymentStatus]int{
	PaymentStatusPending:  0,
	PaymentStatusPartial:  1,
	PaymentStatusPaid:     2,
	PaymentStatusRefunded: 3,
}

// ValidPaymentTransition проверяет допустимость перехода статуса оплаты.
// Вперед по цепочке можно перескакивать (pending -> paid при оплате целиком),
// назад — только на соседний статус (исправление ошибки оператора)
func ValidPaymentTransition(from, to PaymentStatus) bool {
	fromPos, ok := paymentChain[from]
	if !ok {
		return false
	}
	toPos, ok := paymentChain[to]
	if !ok {
		return false
	}

	if toPos == fromPos {
		return false
	}
	if toPos > fromPos {
		return true
	}
	return fromPos-toPos == 1
}

// ApplyPaymentStatus применяет переход статуса оплаты к бронированию.
// Единственное кросс-статусное правило системы: установка оплаты в paid
// у бронирования в статусе pending дополнительно подтверждает бронирование
func (b *Booking) ApplyPaymentStatus(to PaymentStatus) error {
	if !ValidPaymentTransition(b.PaymentStatus, to) {
		return ErrInvalidPaymentTransition
	}

	b.PaymentStatus = to

	if to == PaymentStatusPaid && b.Status == BookingStatusPending {
		b.Status = BookingStatusConfirmed
	}

	return nil
}

// MarkReminderSent переводит напоминание not_sent -> sent
func (c *AbandonedCart) MarkReminderSent(now time.Time) error {
	if c.ReminderStatus != ReminderStatusNotSent {
		return ErrInvalidReminderTransition
	}
	c.ReminderStatus = ReminderStatusSent
	c.ReminderSentAt = &now
	return nil
}

// RecordReminderOutcome фиксирует исход отправленного напоминания:
// sent -> responded или sent -> no_response
func (c *AbandonedCart) RecordReminderOutcome(outcome ReminderStatus) error {
	if c.ReminderStatus != ReminderStatusSent {
		return ErrInvalidReminderTransition
	}
	if outcome != ReminderStatusResponded && outcome != ReminderStatusNoResponse {
		return ErrInvalidReminderTransition
	}
	c.ReminderStatus = outcome
	return nil
}

// SetArchived выставляет флаг архивации; допустимо при любом статусе напоминания
func (c *AbandonedCart) SetArchived(archived bool) {
	c.IsArchived = archived
}

// SetRecovered выставляет флаг восстановления корзины; допустимо при любом статусе напоминания
func (c *AbandonedCart) SetRecovered(recovered bool) {
	c.IsRecovered = recovered
}
