package ptr

// Ptr возвращает указатель на переданное значение
// Удобно для передачи литералов в опциональные поля
func Ptr[T any](v T) *T {
	return &v
}

// Deref возвращает значение по указателю или fallback, если указатель nil
func Deref[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
