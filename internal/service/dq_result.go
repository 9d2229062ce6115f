package service

import (
	"context"

	"github.com/Egor213/DQMeta/internal/domain"
	"github.com/Egor213/DQMeta/internal/repo"
	errorsUtils "github.com/Egor213/DQMeta/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type DQResultService struct {
	resultRepo repo.DQResult
	trManager  TxManager
}

func NewDQResultService(rr repo.DQResult, tm TxManager) *DQResultService {
	return &DQResultService{
		resultRepo: rr,
		trManager:  tm,
	}
}

func (s *DQResultService) ListResults(ctx context.Context) ([]domain.DQResult, error) {
	var results []domain.DQResult

	err := s.trManager.Do(ctx, func(ctx context.Context) error {
		var err error
		results, err = s.resultRepo.GetResults(ctx)
		return err
	})
	if err != nil {
		if errorsUtils.IsUndefinedTable(err) {
			log.WithError(err).Warn("quality_logs table is missing, was the schema created?")
		} else {
			log.WithError(err).Error("Failed to read dq results")
		}
		return nil, errorsUtils.WrapPathErr(ErrCannotListResults)
	}

	return results, nil
}
