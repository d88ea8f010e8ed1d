package domain

// PremiumGuestType категория гостей, используемая для статистики лояльности
const PremiumGuestType = GuestTypeVIP

// FranchiseAll сентинел "все франшизы" для фильтров
const FranchiseAll = "all"

// NewGuestWindowDays окно (в днях) для подсчета недавно добавленных гостей
const NewGuestWindowDays = 30

// Default configuration values
const (
	DefaultBookingDurationMinutes = 90
	DefaultReminderCooldownHours  = 24
)

// Business validation constants
const (
	MinPartySize                = 1
	MaxPartySize                = 50
	MinBookingDurationMinutes   = 15
	MaxBookingDurationMinutes   = 480 // 8 hours
	MaxSpecialRequestsLength    = 500
	MaxCancellationReasonLength = 500
	MaxGuestNameLength          = 200
	MaxPreferenceTagLength      = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveBookingStatuses статусы бронирований, занимающих столики
// Используется при подсчете занятости на дату
var ActiveBookingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusConfirmed,
}
