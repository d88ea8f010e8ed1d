package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingConfirm(t *testing.T) {
	b := &Booking{Status: BookingStatusPending}

	require.NoError(t, b.Confirm())
	assert.Equal(t, BookingStatusConfirmed, b.Status)

	// confirmed — поглощающий статус
	assert.ErrorIs(t, b.Confirm(), ErrInvalidBookingTransition)

	b = &Booking{Status: BookingStatusCancelled}
	assert.ErrorIs(t, b.Confirm(), ErrInvalidBookingTransition)
}

func TestBookingCancel(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

	for _, from := range []BookingStatus{BookingStatusPending, BookingStatusConfirmed} {
		b := &Booking{Status: from}

		require.NoError(t, b.Cancel("guest called", now))
		assert.Equal(t, BookingStatusCancelled, b.Status)
		require.NotNil(t, b.CancellationReason)
		assert.Equal(t, "guest called", *b.CancellationReason)
		require.NotNil(t, b.CancelledAt)
		assert.Equal(t, now, *b.CancelledAt)
	}

	b := &Booking{Status: BookingStatusCancelled}
	assert.ErrorIs(t, b.Cancel("again", now), ErrInvalidBookingTransition)
}

func TestValidPaymentTransition(t *testing.T) {
	tests := []struct {
		from, to PaymentStatus
		want     bool
	}{
		// Вперед по цепочке, включая перескоки
		{PaymentStatusPending, PaymentStatusPartial, true},
		{PaymentStatusPending, PaymentStatusPaid, true},
		{PaymentStatusPending, PaymentStatusRefunded, true},
		{PaymentStatusPartial, PaymentStatusPaid, true},
		{PaymentStatusPaid, PaymentStatusRefunded, true},
		// Назад — только на соседний статус
		{PaymentStatusPartial, PaymentStatusPending, true},
		{PaymentStatusPaid, PaymentStatusPartial, true},
		{PaymentStatusRefunded, PaymentStatusPaid, true},
		{PaymentStatusPaid, PaymentStatusPending, false},
		{PaymentStatusRefunded, PaymentStatusPending, false},
		{PaymentStatusRefunded, PaymentStatusPartial, false},
		// Переход в тот же статус не считается переходом
		{PaymentStatusPaid, PaymentStatusPaid, false},
		// Неизвестные статусы
		{PaymentStatus("bogus"), PaymentStatusPaid, false},
		{PaymentStatusPending, PaymentStatus("bogus"), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidPaymentTransition(tt.from, tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestApplyPaymentStatus_PaidConfirmsPendingBooking(t *testing.T) {
	// Единственное кросс-статусное правило: оплата целиком
	// подтверждает ожидающее бронирование
	b := &Booking{Status: BookingStatusPending, PaymentStatus: PaymentStatusPending}

	require.NoError(t, b.ApplyPaymentStatus(PaymentStatusPaid))

	assert.Equal(t, PaymentStatusPaid, b.PaymentStatus)
	assert.Equal(t, BookingStatusConfirmed, b.Status)
}

func TestApplyPaymentStatus_PaidDoesNotTouchNonPendingBooking(t *testing.T) {
	b := &Booking{Status: BookingStatusCancelled, PaymentStatus: PaymentStatusPartial}

	require.NoError(t, b.ApplyPaymentStatus(PaymentStatusPaid))

	assert.Equal(t, PaymentStatusPaid, b.PaymentStatus)
	assert.Equal(t, BookingStatusCancelled, b.Status)
}

func TestApplyPaymentStatus_PartialDoesNotConfirm(t *testing.T) {
	b := &Booking{Status: BookingStatusPending, PaymentStatus: PaymentStatusPending}

	require.NoError(t, b.ApplyPaymentStatus(PaymentStatusPartial))

	assert.Equal(t, PaymentStatusPartial, b.PaymentStatus)
	assert.Equal(t, BookingStatusPending, b.Status)
}

func TestApplyPaymentStatus_InvalidTransition(t *testing.T) {
	b := &Booking{Status: BookingStatusConfirmed, PaymentStatus: PaymentStatusRefunded}

	err := b.ApplyPaymentStatus(PaymentStatusPending)

	assert.ErrorIs(t, err, ErrInvalidPaymentTransition)
	assert.Equal(t, PaymentStatusRefunded, b.PaymentStatus)
}

func TestCartReminderTransitions(t *testing.T) {
	now := time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)
	cart := &AbandonedCart{ReminderStatus: ReminderStatusNotSent}

	require.NoError(t, cart.MarkReminderSent(now))
	assert.Equal(t, ReminderStatusSent, cart.ReminderStatus)
	require.NotNil(t, cart.ReminderSentAt)
	assert.Equal(t, now, *cart.ReminderSentAt)

	// Повторная отправка запрещена
	assert.ErrorIs(t, cart.MarkReminderSent(now), ErrInvalidReminderTransition)

	require.NoError(t, cart.RecordReminderOutcome(ReminderStatusResponded))
	assert.Equal(t, ReminderStatusResponded, cart.ReminderStatus)

	// Исход фиксируется один раз
	assert.ErrorIs(t, cart.RecordReminderOutcome(ReminderStatusNoResponse), ErrInvalidReminderTransition)
}

func TestCartReminderOutcomeValidation(t *testing.T) {
	cart := &AbandonedCart{ReminderStatus: ReminderStatusSent}

	// Исходом может быть только responded или no_response
	assert.ErrorIs(t, cart.RecordReminderOutcome(ReminderStatusNotSent), ErrInvalidReminderTransition)
	assert.ErrorIs(t, cart.RecordReminderOutcome(ReminderStatusSent), ErrInvalidReminderTransition)

	require.NoError(t, cart.RecordReminderOutcome(ReminderStatusNoResponse))
	assert.Equal(t, ReminderStatusNoResponse, cart.ReminderStatus)
}

func TestCartFlagsIndependentOfReminderStatus(t *testing.T) {
	// Флаги архивации и восстановления переключаются при любом статусе напоминания
	for _, status := range ValidReminderStatuses {
		cart := &AbandonedCart{ReminderStatus: status}

		cart.SetArchived(true)
		cart.SetRecovered(true)
		assert.True(t, cart.IsArchived)
		assert.True(t, cart.IsRecovered)
		assert.Equal(t, status, cart.ReminderStatus)

		cart.SetArchived(false)
		assert.False(t, cart.IsArchived)
	}
}
