package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	PackageID     string    // ID пакета услуги
	CustomerName  string    // Имя клиента
	CustomerEmail string    // Email клиента
	CustomerPhone *string   // Телефон клиента (опционально)
	Notes         *string   // Пожелания клиента (опционально)
	StartAt       time.Time // Абсолютное время начала
}
