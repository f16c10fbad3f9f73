package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
)

// SlotsResponse HTTP модель ответа со списком доступных стартовых слотов.
// Слоты упорядочены по возрастанию времени; defaultTime - первый из них,
// время, предлагаемое форме бронирования по умолчанию
type SlotsResponse struct {
	Date            string   `json:"date"`
	ServiceName     string   `json:"serviceName"`
	DurationMinutes int      `json:"durationMinutes"`
	Slots           []string `json:"slots"`
	DefaultTime     string   `json:"defaultTime,omitempty"`
}

// ToUseCaseRequest собирает запрос use case из параметров HTTP запроса
func ToUseCaseRequest(dateStr, serviceName string, excludeID *int64) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		Date:                 date,
		ServiceName:          serviceName,
		ExcludeAppointmentID: excludeID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, s.String())
	}

	out := &SlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		ServiceName:     resp.ServiceName,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}

	if len(slots) > 0 {
		out.DefaultTime = slots[0]
	}

	return out
}
