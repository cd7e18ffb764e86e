package create_store

import (
	"context"

	"github.com/Wu-ChengLiang/TMC-BookingService/internal/service/directory/models"
)

type DirectoryService interface {
	CreateStore(ctx context.Context, req *models.CreateStoreRequest) (*models.StoreResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
