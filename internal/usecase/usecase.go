package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/harshit1t/dashboard/internal/repository"
	"github.com/harshit1t/dashboard/internal/usecase/domain"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	UserUsecaseInterface
	AccessUsecaseInterface
	TeamUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, ctx, repo, timeout)
}
