package get_therapist

import (
	"context"

	"github.com/Wu-ChengLiang/TMC-BookingService/internal/service/directory/models"
)

type DirectoryService interface {
	GetTherapist(ctx context.Context, id int64) (*models.TherapistResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
