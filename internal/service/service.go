package service

import (
	"context"

	"github.com/Egor213/DQMeta/internal/domain"
	"github.com/Egor213/DQMeta/internal/repo"
)

type DQResult interface {
	ListResults(ctx context.Context) ([]domain.DQResult, error)
}

// TxManager opens a transaction for the duration of fn and releases it on return.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Services struct {
	DQResult
}

type ServicesDependencies struct {
	Repos     *repo.Repositories
	TxManager TxManager
}

func NewServices(deps ServicesDependencies) *Services {
	return &Services{
		DQResult: NewDQResultService(deps.Repos.DQResult, deps.TxManager),
	}
}
