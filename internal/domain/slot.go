package domain

import (
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// GridSize количество слотов рабочего дня: по два на каждый час с 09:00,
// кроме последнего часа, у которого есть только 18:00 (день закрывается в 19:00)
const GridSize = (CloseHour-OpenHour)*2 - 1

// timeSlots канонический упорядоченный список стартовых слотов рабочего дня:
// 09:00, 09:30, ..., 17:30, 18:00
var timeSlots = buildTimeSlots()

// slotIndex позиция слота в сетке, для O(1) проверки принадлежности
var slotIndex = buildSlotIndex()

func buildTimeSlots() []types.TimeString {
	slots := make([]types.TimeString, 0, GridSize)
	for hour := OpenHour; hour < CloseHour; hour++ {
		slots = append(slots, types.TimeString(fmt.Sprintf("%02d:00", hour)))
		// 18:30 не добавляем: получасовой слот не успел бы закончиться к закрытию
		if hour != CloseHour-1 {
			slots = append(slots, types.TimeString(fmt.Sprintf("%02d:30", hour)))
		}
	}
	return slots
}

func buildSlotIndex() map[types.TimeString]int {
	index := make(map[types.TimeString]int, len(timeSlots))
	for i, slot := range timeSlots {
		index[slot] = i
	}
	return index
}

// TimeSlots возвращает копию канонической сетки слотов
func TimeSlots() []types.TimeString {
	out := make([]types.TimeString, len(timeSlots))
	copy(out, timeSlots)
	return out
}

// GridContains возвращает true, если токен является слотом сетки
func GridContains(t types.TimeString) bool {
	_, ok := slotIndex[t]
	return ok
}

// SlotIndex возвращает позицию слота в сетке
func SlotIndex(t types.TimeString) (int, bool) {
	i, ok := slotIndex[t]
	return i, ok
}

// NextSlot возвращает слот на 30 минут позже. Для последнего слота сетки
// (и любого токена вне сетки) возвращает ok=false: шаг за границу сетки
// означает "услуга не помещается", а не ошибку
func NextSlot(t types.TimeString) (types.TimeString, bool) {
	i, ok := slotIndex[t]
	if !ok || i == len(timeSlots)-1 {
		return "", false
	}
	return timeSlots[i+1], true
}

// SlotRun возвращает непрерывную цепочку слотов, которую заняла бы услуга
// длительностью durationMinutes со стартом в start. Если цепочка выходит за
// границу сетки, возвращает ok=false вместе с уже пройденной частью
func SlotRun(start types.TimeString, durationMinutes int) ([]types.TimeString, bool) {
	if durationMinutes <= 0 || durationMinutes%SlotGranularityMinutes != 0 {
		return nil, false
	}

	required := durationMinutes / SlotGranularityMinutes
	run := make([]types.TimeString, 0, required)

	current := start
	for i := 0; i < required; i++ {
		if !GridContains(current) {
			return run, false
		}
		run = append(run, current)

		if i == required-1 {
			break
		}
		next, ok := NextSlot(current)
		if !ok {
			return run, false
		}
		current = next
	}

	return run, true
}
