package sell_product

// Request модель запроса на продажу косметики
type Request struct {
	ProductName string
	Quantity    int
}

// Response итог продажи
type Response struct {
	ProductName string
	Quantity    int
	Total       float64 // Сумма к оплате
	Remaining   int     // Остаток на складе
	Balance     float64 // Баланс после оплаты
}
