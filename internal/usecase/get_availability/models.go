package get_availability

import (
	"time"

	"github.com/rsmnv/RST-BookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	PackageID string    // ID пакета услуги
	Date      time.Time // Календарная дата в бизнес-таймзоне (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date        time.Time // Дата, на которую запрашивались слоты
	PackageID   string    // ID пакета
	Slots       []Slot    // Список доступных слотов по возрастанию времени
	BufferMin   int       // Обязательная пауза после бронирования
	IntervalMin int       // Шаг генерации слотов
	DurationMin int       // Длительность услуги
}

// Slot модель предлагаемого времени начала
type Slot struct {
	Start time.Time        // Абсолютное время начала
	Label types.TimeString // Время начала для отображения ("HH:MM")
}
