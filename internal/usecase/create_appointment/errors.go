package create_appointment

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("service not found")

	// ErrInvalidTimeSlot возвращается, когда запрошенное время не является
	// слотом сетки
	ErrInvalidTimeSlot = errors.New("invalid time slot")

	// ErrSlotNotAvailable возвращается, когда услуга не помещается с запрошенного
	// слота: занятость, обеденный перерыв или выход за время закрытия
	ErrSlotNotAvailable = errors.New("slot not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
