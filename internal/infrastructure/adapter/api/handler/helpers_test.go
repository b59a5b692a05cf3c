package handler

import (
	coreport "github.com/amirhossein-jamali/pollwin/internal/domain/port/core"
	"github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/logger"
)

func quietLogger() coreport.Logger {
	return logger.NewNoopLogger()
}
