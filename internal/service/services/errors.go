package services

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("services.service: service not found")

	// ErrDuplicateName возвращается при попытке добавить услугу с именем,
	// уже существующим в каталоге (без учета регистра)
	ErrDuplicateName = errors.New("services.service: service name already exists")

	// ErrInvalidDuration возвращается, когда длительность не является
	// положительным кратным шага сетки (30 минут)
	ErrInvalidDuration = errors.New("services.service: invalid duration")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("services.service: invalid input")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("services.service: internal error")
)
