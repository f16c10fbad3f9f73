package list_services

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/service/services/models"
)

// ServicesService интерфейс сервиса каталога услуг
type ServicesService interface {
	List(ctx context.Context) (*models.ServiceListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
