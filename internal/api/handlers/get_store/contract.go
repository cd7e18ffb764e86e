package get_store

import (
	"context"

	"github.com/Wu-ChengLiang/TMC-BookingService/internal/service/directory/models"
)

type DirectoryService interface {
	GetStore(ctx context.Context, id int64) (*models.StoreResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
