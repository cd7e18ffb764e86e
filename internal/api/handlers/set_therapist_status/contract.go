package set_therapist_status

import (
	"context"

	"github.com/Wu-ChengLiang/TMC-BookingService/internal/service/directory/models"
)

type DirectoryService interface {
	SetTherapistStatus(ctx context.Context, id int64, req *models.SetTherapistStatusRequest) (*models.TherapistResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
