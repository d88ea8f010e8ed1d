package notifyservice

// ReminderRequest запрос на отправку напоминания о незавершенном бронировании
type ReminderRequest struct {
	FranchiseID string  `json:"franchise_id"`
	GuestName   string  `json:"guest_name"`
	GuestEmail  string  `json:"guest_email"`
	GuestPhone  string  `json:"guest_phone"`
	DesiredDate string  `json:"desired_date"` // Формат "2006-01-02"
	DesiredTime string  `json:"desired_time"` // Формат "HH:MM"
	CartValue   float64 `json:"cart_value"`
}

// ReminderResponse ответ сервиса уведомлений
type ReminderResponse struct {
	MessageID string `json:"message_id"`
	Channel   string `json:"channel"` // email | sms
}

// ErrorResponse модель ошибки от NotifyService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
