package delete_therapist

import "context"

type DirectoryService interface {
	DeleteTherapist(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
