package fire_master

import (
	"context"
)

type SalonService interface {
	FireMaster(ctx context.Context, name, specialization string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
