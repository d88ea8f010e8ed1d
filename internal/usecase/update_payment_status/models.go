package update_payment_status

// Request модель запроса на обновление статуса оплаты
type Request struct {
	BookingID     int64  // ID бронирования
	PaymentStatus string // Целевой статус оплаты (pending | partial | paid | refunded)
}

// Response модель ответа с обновленными статусами
type Response struct {
	BookingID     int64  // ID бронирования
	Status        string // Статус бронирования после перехода
	PaymentStatus string // Статус оплаты после перехода
}
