package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на получение доступных слотов.
// ExcludeAppointmentID включает режим редактирования: собственная цепочка
// слотов этой записи исключается из занятости перед расчетом
type Request struct {
	Date                 time.Time // Дата, на которую запрашиваются слоты (без времени)
	ServiceName          string    // Имя запрашиваемой услуги
	ExcludeAppointmentID *int64    // ID редактируемой записи (опционально)
}

// Response модель ответа со списком доступных стартовых слотов.
// Slots упорядочен по возрастанию времени; вызывающая сторона использует
// первый элемент как время по умолчанию
type Response struct {
	Date            time.Time          // Дата, на которую запрашивались слоты
	ServiceName     string             // Имя услуги
	DurationMinutes int                // Длительность услуги (0, если услуга не найдена)
	Slots           []types.TimeString // Доступные стартовые слоты
}
