package domain

import "github.com/m04kA/SMC-AppointmentService/pkg/types"

// Grid configuration: единственное кресло, рабочий день 09:00-19:00,
// бронирование с фиксированным шагом 30 минут
const (
	SlotGranularityMinutes = 30

	OpenHour  = 9  // первый слот начинается в 09:00
	CloseHour = 19 // день закрывается в 19:00, слотов с началом в 19:00 и позже нет
)

// Business validation constants
const (
	MinServiceDurationMinutes = 30
	MaxServiceDurationMinutes = 480 // 8 часов

	MaxServiceNameLength = 100
	MaxClientNameLength  = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// LunchBreakSlots обеденный перерыв: слоты, исключенные из бронирования
// независимо от занятости
var LunchBreakSlots = []types.TimeString{"12:00", "12:30"}
