package domain

import (
	"strings"
	"time"
)

// Service услуга с фиксированной длительностью.
// Имя уникально без учета регистра; длительность кратна шагу сетки
type Service struct {
	ID              int64
	Name            string
	DurationMinutes int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SlotsRequired возвращает количество слотов сетки, занимаемых услугой
func (s *Service) SlotsRequired() int {
	return s.DurationMinutes / SlotGranularityMinutes
}

// IsValidDuration проверяет, что длительность положительна, кратна шагу сетки
// и не превышает максимум
func IsValidDuration(durationMinutes int) bool {
	return durationMinutes >= MinServiceDurationMinutes &&
		durationMinutes <= MaxServiceDurationMinutes &&
		durationMinutes%SlotGranularityMinutes == 0
}

// DurationIndex строит индекс длительностей по имени услуги.
// Записи ссылаются на услуги по имени, сохраненному на момент бронирования,
// поэтому ключ - точное имя услуги
func DurationIndex(services []*Service) map[string]int {
	index := make(map[string]int, len(services))
	for _, s := range services {
		index[s.Name] = s.DurationMinutes
	}
	return index
}

// FindServiceByName ищет услугу по имени без учета регистра
func FindServiceByName(services []*Service, name string) *Service {
	for _, s := range services {
		if strings.EqualFold(s.Name, name) {
			return s
		}
	}
	return nil
}
