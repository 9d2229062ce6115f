package pgdb

import (
	"context"

	"github.com/Egor213/DQMeta/internal/domain"
	errorsUtils "github.com/Egor213/DQMeta/pkg/errors"
	"github.com/Egor213/DQMeta/pkg/postgres"
	"github.com/jackc/pgx/v5"
)

const dqResultsTable = "quality_logs"

// Text columns are nullable on the ingestion side, the API always returns strings.
var dqResultColumns = []string{
	"id",
	"COALESCE(dataset_name, '') AS dataset_name",
	"COALESCE(rule_type, '') AS rule_type",
	"COALESCE(severity, '') AS severity",
	"COALESCE(message, '') AS message",
	`"timestamp"`,
}

type DQResultRepo struct {
	*postgres.Postgres
}

func NewDQResultRepo(pg *postgres.Postgres) *DQResultRepo {
	return &DQResultRepo{pg}
}

// GetResults returns every row in storage order. It runs inside the
// transaction carried by ctx if there is one.
func (r *DQResultRepo) GetResults(ctx context.Context) ([]domain.DQResult, error) {
	sql, args, err := r.Builder.
		Select(dqResultColumns...).
		From(dqResultsTable).
		ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	results, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.DQResult])
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return results, nil
}
