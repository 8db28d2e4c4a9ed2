package snapshot

// Document полный снимок состояния салона
// Формат совместим с файлом, который пишет и читает консольное приложение
type Document struct {
	Name      string            `json:"name"`
	Balance   float64           `json:"balance"`
	Staff     []MasterRecord    `json:"staff"`
	Inventory []InventoryRecord `json:"inventory"`
	Services  []ServiceRecord   `json:"services"`
	Bookings  []BookingRecord   `json:"bookings"`
}

// MasterRecord мастер; специализация хранится строковой меткой
type MasterRecord struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
	Spec string `json:"spec"`
}

// InventoryRecord товар склада; Price заполняется только для Cosmetics
type InventoryRecord struct {
	Type   string   `json:"type"` // "Cosmetics" | "Equipment"
	Name   string   `json:"name"`
	Desc   string   `json:"desc"`
	Amount int      `json:"amount"`
	Price  *float64 `json:"price,omitempty"`
}

// ServiceRecord услуга; ресурсы ссылаются на склад по имени
type ServiceRecord struct {
	Type          string   `json:"type"` // "HairService" | "CosmeticProcedure"
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	ResourceNames []string `json:"resource_names"`
}

// ClientRecord клиент бронирования
type ClientRecord struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// BookingRecord бронирование; мастер ищется по паре (имя, специализация), услуга по имени
type BookingRecord struct {
	ID          string       `json:"id,omitempty"`
	Client      ClientRecord `json:"client"`
	MasterName  string       `json:"master_name"`
	MasterSpec  string       `json:"master_spec"`
	ServiceName string       `json:"service_name"`
	Status      string       `json:"status"`
}
