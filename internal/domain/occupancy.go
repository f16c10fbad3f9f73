package domain

import "github.com/m04kA/SMC-AppointmentService/pkg/types"

// SlotSet множество занятых слотов, адресуемое позицией в сетке.
// Сетка имеет фиксированную размерность, поэтому булев массив по индексу слота
// точнее и дешевле, чем множество строк
type SlotSet struct {
	occupied [GridSize]bool
}

// Add помечает слот занятым. Токены вне сетки игнорируются
func (s *SlotSet) Add(t types.TimeString) {
	if i, ok := slotIndex[t]; ok {
		s.occupied[i] = true
	}
}

// Remove снимает отметку занятости со слота
func (s *SlotSet) Remove(t types.TimeString) {
	if i, ok := slotIndex[t]; ok {
		s.occupied[i] = false
	}
}

// Contains возвращает true, если слот занят. Токен вне сетки занятым не считается
func (s *SlotSet) Contains(t types.TimeString) bool {
	i, ok := slotIndex[t]
	return ok && s.occupied[i]
}

// Count возвращает количество занятых слотов
func (s *SlotSet) Count() int {
	count := 0
	for _, occ := range s.occupied {
		if occ {
			count++
		}
	}
	return count
}

// Union возвращает объединение двух множеств
func (s SlotSet) Union(other SlotSet) SlotSet {
	for i, occ := range other.occupied {
		if occ {
			s.occupied[i] = true
		}
	}
	return s
}

// ExpandOccupancy разворачивает записи дня в множество занятых слотов.
// Длительность каждой записи берется из индекса услуг по имени; записи,
// ссылающиеся на удаленную услугу, молча пропускаются - они не удаляются
// и не чинятся, но и занятость больше не создают.
// Результат не зависит от порядка записей
func ExpandOccupancy(appointments []*Appointment, durationByService map[string]int) SlotSet {
	var occupied SlotSet

	for _, appt := range appointments {
		duration, ok := durationByService[appt.ServiceName]
		if !ok {
			continue
		}

		// Цепочка может упереться в границу сетки - занимаем пройденную часть
		run, _ := SlotRun(appt.StartTime, duration)
		for _, slot := range run {
			occupied.Add(slot)
		}
	}

	return occupied
}

// LunchBreakSet возвращает обеденный перерыв в виде SlotSet
func LunchBreakSet() SlotSet {
	var s SlotSet
	for _, slot := range LunchBreakSlots {
		s.Add(slot)
	}
	return s
}
