package payment

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/pollwin/internal/domain/error"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/core"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/external"
)

// Gateway modes
const (
	ModeImmediate = "immediate"
	ModeDeferred  = "deferred"
)

// NewGateway builds the configured gateway wrapped with a call deadline
func NewGateway(mode string, timeout time.Duration, ids core.IDGenerator, logger core.Logger) (external.PaymentGateway, error) {
	var gw external.PaymentGateway
	switch mode {
	case ModeImmediate, "":
		gw = NewImmediateGateway(logger)
	case ModeDeferred:
		gw = NewSandboxGateway(ids, logger)
	default:
		return nil, fmt.Errorf("%w: payment mode %q", errs.ErrInvalidEnumValue, mode)
	}
	return WithTimeout(gw, timeout), nil
}
