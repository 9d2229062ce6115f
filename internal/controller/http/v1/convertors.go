package httpv1

import (
	"time"

	"github.com/Egor213/DQMeta/internal/domain"
)

type healthResponse struct {
	Status string `json:"status"`
	Engine string `json:"engine"`
}

type dqResultResponse struct {
	Id          int64     `json:"id"`
	DatasetName string    `json:"dataset_name"`
	RuleType    string    `json:"rule_type"`
	Severity    string    `json:"severity"`
	Message     string    `json:"message"`
	Timestamp   time.Time `json:"timestamp"`
}

func toDQResultResponse(r domain.DQResult) dqResultResponse {
	return dqResultResponse{
		Id:          r.Id,
		DatasetName: r.DatasetName,
		RuleType:    r.RuleType,
		Severity:    r.Severity,
		Message:     r.Message,
		Timestamp:   r.Timestamp,
	}
}

// toDQResultsResponse never returns nil so an empty table encodes as [].
func toDQResultsResponse(results []domain.DQResult) []dqResultResponse {
	resp := make([]dqResultResponse, 0, len(results))
	for _, r := range results {
		resp = append(resp, toDQResultResponse(r))
	}
	return resp
}
