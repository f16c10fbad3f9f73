package domain

import "github.com/m04kA/SMC-AppointmentService/pkg/types"

// ResolveAvailableSlots возвращает упорядоченный по времени список стартовых
// слотов, с которых услуга длительностью durationMinutes помещается целиком:
// каждый слот цепочки принадлежит сетке и не входит в blocked.
// Пустой результат - легальное терминальное состояние ("на сегодня мест нет")
func ResolveAvailableSlots(durationMinutes int, blocked SlotSet) []types.TimeString {
	candidates := make([]types.TimeString, 0, len(timeSlots))

	if durationMinutes <= 0 || durationMinutes%SlotGranularityMinutes != 0 {
		return candidates
	}

	for _, start := range timeSlots {
		run, ok := SlotRun(start, durationMinutes)
		if !ok {
			// Цепочка вышла за закрытие - услуга не помещается
			continue
		}

		fits := true
		for _, slot := range run {
			if blocked.Contains(slot) {
				fits = false
				break
			}
		}

		if fits {
			candidates = append(candidates, start)
		}
	}

	return candidates
}

// BlockedSlots собирает множество недоступных слотов для расчета доступности:
// занятость записями минус собственная цепочка редактируемой записи
// (selfExclusion), плюс обеденный перерыв. selfExclusion строится по
// ИСХОДНОЙ услуге редактируемой записи, чтобы запись не блокировала сама
// себя; перерыв добавляется после исключения и снять его нельзя
func BlockedSlots(occupancy SlotSet, selfExclusion []types.TimeString) SlotSet {
	for _, slot := range selfExclusion {
		occupancy.Remove(slot)
	}
	return occupancy.Union(LunchBreakSet())
}

// ContainsSlot возвращает true, если token присутствует в списке слотов
func ContainsSlot(slots []types.TimeString, token types.TimeString) bool {
	for _, s := range slots {
		if s == token {
			return true
		}
	}
	return false
}
