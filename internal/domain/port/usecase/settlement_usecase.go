package usecase

import (
	"context"

	"github.com/amirhossein-jamali/pollwin/internal/domain/entity"
)

// SettlementUseCase defines result declaration and result views
type SettlementUseCase interface {
	// DeclareResult closes a poll and distributes its pool to the winning option's backers
	DeclareResult(ctx context.Context, pollID, winningOptionID string) (*entity.SettlementReport, error)

	GetResults(ctx context.Context, pollID string) (*entity.PollResults, error)

	GetMyResult(ctx context.Context, pollID, userID string) (*entity.MyResult, error)
}
