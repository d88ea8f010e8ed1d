package update_payment_status

// UpdatePaymentStatusRequest HTTP request model
type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus"` // pending | partial | paid | refunded
}

// UpdatePaymentStatusResponse HTTP response model
type UpdatePaymentStatusResponse struct {
	BookingID     int64  `json:"bookingId"`
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
}
