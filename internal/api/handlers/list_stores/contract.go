package list_stores

import (
	"context"

	"github.com/Wu-ChengLiang/TMC-BookingService/internal/service/directory/models"
)

type DirectoryService interface {
	ListStores(ctx context.Context) (*models.StoreListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
