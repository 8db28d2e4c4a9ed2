package complete_booking

// Request модель запроса на выполнение бронирования
type Request struct {
	BookingID string
}

// Response результат выполнения услуги
type Response struct {
	BookingID   string
	ServiceName string
	Earned      float64  // Сумма, зачисленная на баланс
	Balance     float64  // Баланс после оплаты
	Destroyed   []string // Инструменты, сломанные во время работы
	Status      string
}
