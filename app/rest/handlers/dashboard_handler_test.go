package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sixtyseconds/ai-development-hub/app/domain"
	mock_port "github.com/sixtyseconds/ai-development-hub/app/mocks"
)

func TestGetTable(t *testing.T) {
	tests := []struct {
		name           string
		table          string
		query          string
		setupMocks     func(queries *mock_port.MockQueryCoordinator)
		expectedStatus int
		expectedBody   func(*testing.T, []byte)
	}{
		{
			name:  "query parameters map onto fetch options",
			table: "projects",
			query: "select=id,name&limit=20&page=1&order=updated_at.desc&status=in_progress&refresh=true",
			setupMocks: func(queries *mock_port.MockQueryCoordinator) {
				queries.EXPECT().
					FetchFromTable(gomock.Any(), "projects", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, opts domain.FetchOptions) *domain.QueryResult {
						assert.Equal(t, "id,name", opts.Select)
						assert.Equal(t, 20, opts.Limit)
						assert.Equal(t, 1, opts.Page)
						assert.True(t, opts.ForceRefresh)
						require.NotNil(t, opts.OrderBy)
						assert.Equal(t, "updated_at", opts.OrderBy.Column)
						assert.False(t, opts.OrderBy.Ascending)
						assert.Equal(t, map[string]any{"status": "in_progress"}, opts.Filters)
						return &domain.QueryResult{Data: []domain.Row{{"id": "p-1"}}, Count: 42}
					})
			},
			expectedStatus: http.StatusOK,
			expectedBody: func(t *testing.T, body []byte) {
				var resp TableResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Len(t, resp.Data, 1)
				assert.Equal(t, 42, resp.Count)
				assert.Empty(t, resp.Error)
			},
		},
		{
			name:  "query failure surfaces in the payload",
			table: "errortable",
			setupMocks: func(queries *mock_port.MockQueryCoordinator) {
				queries.EXPECT().
					FetchFromTable(gomock.Any(), "errortable", gomock.Any()).
					Return(&domain.QueryResult{Err: errors.New("relation does not exist")})
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody: func(t *testing.T, body []byte) {
				var resp TableResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Contains(t, resp.Error, "does not exist")
			},
		},
		{
			name:           "invalid table name is rejected",
			table:          "Projects;drop",
			setupMocks:     func(queries *mock_port.MockQueryCoordinator) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "non-numeric limit is rejected",
			table:          "projects",
			query:          "limit=ten",
			setupMocks:     func(queries *mock_port.MockQueryCoordinator) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			queries := mock_port.NewMockQueryCoordinator(ctrl)
			tt.setupMocks(queries)

			h := NewDashboardHandler(queries, handlerLogger())
			e := echo.New()
			target := "/v1/tables/" + tt.table
			if tt.query != "" {
				target += "?" + tt.query
			}
			req := httptest.NewRequest(http.MethodGet, target, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("table")
			c.SetParamValues(tt.table)

			require.NoError(t, h.GetTable(c))
			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != nil {
				tt.expectedBody(t, rec.Body.Bytes())
			}
		})
	}
}

func TestBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	queries := mock_port.NewMockQueryCoordinator(ctrl)

	queries.EXPECT().
		BatchQueries(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, qs []domain.BatchQuery) []domain.BatchResult {
			require.Len(t, qs, 2)
			assert.Equal(t, "clients", qs[0].Table)
			assert.Equal(t, "projects", qs[1].Table)
			return []domain.BatchResult{
				{Row: domain.Row{"id": "c-1"}},
				{Err: errors.New("projects unavailable")},
			}
		})

	h := NewDashboardHandler(queries, handlerLogger())
	e := echo.New()
	body := `[{"table":"clients","filters":{"id":"c-1"}},{"table":"projects"}]`
	req := httptest.NewRequest(http.MethodPost, "/v1/tables/batch", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Batch(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []BatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "c-1", resp[0].Row["id"])
	assert.Empty(t, resp[0].Error)
	assert.Nil(t, resp[1].Row)
	assert.Contains(t, resp[1].Error, "unavailable")
}

func TestBatch_InvalidTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	queries := mock_port.NewMockQueryCoordinator(ctrl)

	h := NewDashboardHandler(queries, handlerLogger())
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/tables/batch", strings.NewReader(`[{"table":"Bad-Name"}]`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Batch(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	queries := mock_port.NewMockQueryCoordinator(ctrl)

	counts := map[string]int{
		"clients":          7,
		"projects":         3,
		"feature_requests": 12,
		"support_tickets":  4,
	}
	for table, count := range counts {
		count := count
		queries.EXPECT().
			FetchFromTable(gomock.Any(), table, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, opts domain.FetchOptions) *domain.QueryResult {
				assert.Equal(t, "id", opts.Select, "count reads fetch a single-row window")
				assert.Equal(t, 1, opts.Limit)
				return &domain.QueryResult{Count: count}
			})
	}

	projectID := uuid.New()
	clientID := uuid.New()
	now := time.Now().UTC().Format(time.RFC3339)
	queries.EXPECT().
		BatchQueries(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, qs []domain.BatchQuery) []domain.BatchResult {
			require.Len(t, qs, 3)
			assert.Equal(t, "projects", qs[0].Table)
			assert.Equal(t, "feature_requests", qs[1].Table)
			assert.Equal(t, "support_tickets", qs[2].Table)
			return []domain.BatchResult{
				{Row: domain.Row{
					"id":         projectID.String(),
					"name":       "Website Rebuild",
					"client_id":  clientID.String(),
					"status":     "in_progress",
					"created_at": now,
					"updated_at": now,
				}},
				{},
				{Row: domain.Row{
					"id":           uuid.New().String(),
					"title":        "Checkout broken on mobile",
					"client_id":    clientID.String(),
					"status":       "open",
					"priority":     "critical",
					"submitted_at": now,
					"updated_at":   now,
				}},
			}
		})
	queries.EXPECT().
		FetchFromTable(gomock.Any(), "activity_log", gomock.Any()).
		Return(&domain.QueryResult{Data: []domain.Row{
			{
				"id":          uuid.New().String(),
				"action":      "created",
				"entity_type": "project",
				"entity_id":   projectID.String(),
				"created_at":  now,
			},
		}, Count: 1})

	h := NewDashboardHandler(queries, handlerLogger())
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/stats", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Stats(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp StatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 7, resp.Counts.Clients)
	assert.Equal(t, 3, resp.Counts.ActiveProjects)
	assert.Equal(t, 12, resp.Counts.OpenRequests)
	assert.Equal(t, 4, resp.Counts.OpenTickets)

	require.NotNil(t, resp.CurrentProject)
	assert.Equal(t, projectID, resp.CurrentProject.ID)
	assert.Equal(t, "Website Rebuild", resp.CurrentProject.Name)
	assert.Equal(t, domain.ProjectInProgress, resp.CurrentProject.Status)

	assert.Nil(t, resp.CriticalRequest, "an empty batch slot leaves the field unset")

	require.NotNil(t, resp.CriticalTicket)
	assert.Equal(t, domain.PriorityCritical, resp.CriticalTicket.Priority)

	require.Len(t, resp.RecentActivity, 1)
	assert.Equal(t, "created", resp.RecentActivity[0].Action)
	assert.Equal(t, projectID.String(), resp.RecentActivity[0].EntityID)
}

func TestStats_CountReadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	queries := mock_port.NewMockQueryCoordinator(ctrl)

	queries.EXPECT().
		FetchFromTable(gomock.Any(), "clients", gomock.Any()).
		Return(&domain.QueryResult{Err: errors.New("relation does not exist")})

	h := NewDashboardHandler(queries, handlerLogger())
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/stats", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Stats(c))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestClearCache(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		setupMocks func(queries *mock_port.MockQueryCoordinator)
	}{
		{
			name:   "clear everything",
			target: "/v1/cache",
			setupMocks: func(queries *mock_port.MockQueryCoordinator) {
				queries.EXPECT().ClearCache()
			},
		},
		{
			name:   "clear selected keys",
			target: "/v1/cache?key=a&key=b",
			setupMocks: func(queries *mock_port.MockQueryCoordinator) {
				queries.EXPECT().ClearCache("a", "b")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			queries := mock_port.NewMockQueryCoordinator(ctrl)
			tt.setupMocks(queries)

			h := NewDashboardHandler(queries, handlerLogger())
			e := echo.New()
			req := httptest.NewRequest(http.MethodDelete, tt.target, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, h.ClearCache(c))
			assert.Equal(t, http.StatusNoContent, rec.Code)
		})
	}
}
