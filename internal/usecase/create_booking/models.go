package create_booking

// Request модель запроса на создание бронирования
type Request struct {
	ClientName           string // Имя клиента
	ClientAge            int    // Возраст клиента
	MasterName           string // Имя мастера
	MasterSpecialization string // Специализация мастера (опционально, уточняет поиск)
	ServiceName          string // Название услуги
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID                   string
	ClientName           string
	ClientAge            int
	MasterName           string
	MasterSpecialization string
	ServiceName          string
	ServicePrice         float64
	Status               string
}
