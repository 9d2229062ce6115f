package repo

import (
	"context"

	"github.com/Egor213/DQMeta/internal/domain"
	"github.com/Egor213/DQMeta/internal/repo/pgdb"
	"github.com/Egor213/DQMeta/pkg/postgres"
)

type DQResult interface {
	GetResults(ctx context.Context) ([]domain.DQResult, error)
}

type Repositories struct {
	DQResult
}

func NewRepositories(pg *postgres.Postgres) *Repositories {
	return &Repositories{
		DQResult: pgdb.NewDQResultRepo(pg),
	}
}
