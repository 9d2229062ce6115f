package httpv1_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpv1 "github.com/Egor213/DQMeta/internal/controller/http/v1"
	"github.com/Egor213/DQMeta/internal/domain"
	"github.com/Egor213/DQMeta/internal/metrics"
	countermocks "github.com/Egor213/DQMeta/internal/mocks/counters"
	servicemocks "github.com/Egor213/DQMeta/internal/mocks/service"
	"github.com/Egor213/DQMeta/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type dqResultBody struct {
	Id          *int64  `json:"id"`
	DatasetName string  `json:"dataset_name"`
	RuleType    string  `json:"rule_type"`
	Severity    string  `json:"severity"`
	Message     string  `json:"message"`
	Timestamp   *string `json:"timestamp"`
}

func newRouter(svc service.DQResult, counters *metrics.Counters) *echo.Echo {
	e := echo.New()
	httpv1.ConfigureRouter(e, &service.Services{DQResult: svc}, counters)
	return e
}

func doGet(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	ctrl := gomock.NewController(t)
	e := newRouter(servicemocks.NewMockDQResult(ctrl), metrics.NewTestCounters())

	for i := 0; i < 2; i++ {
		rec := doGet(e, "/health")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status": "active", "engine": "Echo"}`, rec.Body.String())
	}
}

func TestListResults(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	testCases := []struct {
		name         string
		mockBehavior func(s *servicemocks.MockDQResult)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "empty table",
			mockBehavior: func(s *servicemocks.MockDQResult) {
				s.EXPECT().ListResults(gomock.Any()).Return(nil, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name: "single row",
			mockBehavior: func(s *servicemocks.MockDQResult) {
				s.EXPECT().ListResults(gomock.Any()).Return([]domain.DQResult{
					{Id: 1, DatasetName: "sales", RuleType: "null_check", Severity: "high", Message: "3 nulls found", Timestamp: ts},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody: `[{
				"id": 1,
				"dataset_name": "sales",
				"rule_type": "null_check",
				"severity": "high",
				"message": "3 nulls found",
				"timestamp": "2026-03-14T09:26:53Z"
			}]`,
		},
		{
			name: "storage failure",
			mockBehavior: func(s *servicemocks.MockDQResult) {
				s.EXPECT().ListResults(gomock.Any()).Return(nil, service.ErrCannotListResults)
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"message": "Internal Server Error"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := servicemocks.NewMockDQResult(ctrl)
			tc.mockBehavior(svc)

			rec := doGet(newRouter(svc, metrics.NewTestCounters()), "/logs")

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.JSONEq(t, tc.wantBody, rec.Body.String())
		})
	}
}

func TestListResults_SingleRowFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := servicemocks.NewMockDQResult(ctrl)
	svc.EXPECT().ListResults(gomock.Any()).Return([]domain.DQResult{
		{Id: 42, DatasetName: "sales", RuleType: "null_check", Severity: "high", Message: "3 nulls found", Timestamp: time.Now().UTC()},
	}, nil)

	rec := doGet(newRouter(svc, metrics.NewTestCounters()), "/logs")
	require.Equal(t, http.StatusOK, rec.Code)

	var body []dqResultBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)

	got := body[0]
	assert.Equal(t, "sales", got.DatasetName)
	assert.Equal(t, "null_check", got.RuleType)
	assert.Equal(t, "high", got.Severity)
	assert.Equal(t, "3 nulls found", got.Message)
	require.NotNil(t, got.Id)
	require.NotNil(t, got.Timestamp)
	_, err := time.Parse(time.RFC3339Nano, *got.Timestamp)
	assert.NoError(t, err)
}

func TestListResults_Cardinality(t *testing.T) {
	const n = 25
	ctrl := gomock.NewController(t)

	rows := make([]domain.DQResult, 0, n)
	for i := 1; i <= n; i++ {
		rows = append(rows, domain.DQResult{
			Id:          int64(i),
			DatasetName: fmt.Sprintf("dataset_%d", i),
			RuleType:    "null_check",
			Severity:    "low",
			Timestamp:   time.Now(),
		})
	}

	svc := servicemocks.NewMockDQResult(ctrl)
	svc.EXPECT().ListResults(gomock.Any()).Return(rows, nil)

	rec := doGet(newRouter(svc, metrics.NewTestCounters()), "/logs")
	require.Equal(t, http.StatusOK, rec.Code)

	var body []dqResultBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, n)

	seen := make(map[int64]bool, n)
	for i, r := range body {
		require.NotNil(t, r.Id)
		assert.Equal(t, int64(i+1), *r.Id)
		assert.False(t, seen[*r.Id], "duplicate id %d", *r.Id)
		seen[*r.Id] = true
	}
}

func TestListResults_Counters(t *testing.T) {
	ctrl := gomock.NewController(t)

	requests := countermocks.NewMockCounter(ctrl)
	served := countermocks.NewMockCounter(ctrl)
	counters := &metrics.Counters{HttpRequests: requests, ResultsServed: served}

	svc := servicemocks.NewMockDQResult(ctrl)

	t.Run("ok", func(t *testing.T) {
		svc.EXPECT().ListResults(gomock.Any()).Return([]domain.DQResult{
			{Id: 1, Severity: "high"},
			{Id: 2, Severity: "low"},
		}, nil)
		gomock.InOrder(
			requests.EXPECT().Inc("/logs", "received"),
			requests.EXPECT().Inc("/logs", "ok"),
		)
		served.EXPECT().Inc("high")
		served.EXPECT().Inc("low")

		rec := doGet(newRouter(svc, counters), "/logs")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("failed", func(t *testing.T) {
		svc.EXPECT().ListResults(gomock.Any()).Return(nil, errors.New("db error"))
		gomock.InOrder(
			requests.EXPECT().Inc("/logs", "received"),
			requests.EXPECT().Inc("/logs", "failed"),
		)

		rec := doGet(newRouter(svc, counters), "/logs")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestUnknownRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	e := newRouter(servicemocks.NewMockDQResult(ctrl), metrics.NewTestCounters())

	rec := doGet(e, "/results")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
