package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sixtyseconds/ai-development-hub/app/domain"
	"github.com/sixtyseconds/ai-development-hub/app/port"
	"github.com/sixtyseconds/ai-development-hub/app/utils/validator"
)

// reservedParams are query parameters with fetch semantics; everything
// else becomes an equality filter.
var reservedParams = map[string]bool{
	"select":  true,
	"limit":   true,
	"page":    true,
	"order":   true,
	"refresh": true,
}

// DashboardHandler serves the cached table reads behind the dashboard
// views.
type DashboardHandler struct {
	queries port.QueryCoordinator
	logger  *slog.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(queries port.QueryCoordinator, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		queries: queries,
		logger:  logger,
	}
}

// TableResponse is the payload of a table read
type TableResponse struct {
	Data  []domain.Row `json:"data"`
	Count int          `json:"count"`
	Error string       `json:"error,omitempty"`
}

// BatchRequest is one element of a batched lookup
type BatchRequest struct {
	Table    string         `json:"table"`
	Select   string         `json:"select,omitempty"`
	Filters  map[string]any `json:"filters,omitempty"`
	CacheKey string         `json:"cache_key,omitempty"`
}

// BatchResponse pairs the first row of each lookup with its error
type BatchResponse struct {
	Row   domain.Row `json:"row"`
	Error string     `json:"error,omitempty"`
}

// GetTable handles GET /v1/tables/:table
func (h *DashboardHandler) GetTable(c echo.Context) error {
	table := c.Param("table")
	if !validator.IsValidTableName(table) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid table name"})
	}

	opts := domain.FetchOptions{
		Select:       c.QueryParam("select"),
		ForceRefresh: c.QueryParam("refresh") == "true",
	}

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be an integer"})
		}
		opts.Limit = limit
	}
	if raw := c.QueryParam("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 0 {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "page must be a non-negative integer"})
		}
		opts.Page = page
	}
	if raw := c.QueryParam("order"); raw != "" {
		opts.OrderBy = parseOrder(raw)
	}

	for key, values := range c.QueryParams() {
		if reservedParams[key] || len(values) == 0 {
			continue
		}
		if opts.Filters == nil {
			opts.Filters = make(map[string]any)
		}
		opts.Filters[key] = values[0]
	}

	res := h.queries.FetchFromTable(c.Request().Context(), table, opts)
	if res.Err != nil {
		// The failure already lives in the result; surface it with the
		// (empty) data rather than as a bare error page.
		return c.JSON(http.StatusBadGateway, TableResponse{Count: res.Count, Error: res.Err.Error()})
	}

	return c.JSON(http.StatusOK, TableResponse{Data: res.Data, Count: res.Count})
}

// Batch handles POST /v1/tables/batch
func (h *DashboardHandler) Batch(c echo.Context) error {
	var reqs []BatchRequest
	if err := c.Bind(&reqs); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "malformed request body"})
	}
	if len(reqs) == 0 {
		return c.JSON(http.StatusOK, []BatchResponse{})
	}

	queries := make([]domain.BatchQuery, len(reqs))
	for i, req := range reqs {
		if !validator.IsValidTableName(req.Table) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid table name: " + req.Table})
		}
		queries[i] = domain.BatchQuery{
			Table:    req.Table,
			Select:   req.Select,
			Filters:  req.Filters,
			CacheKey: req.CacheKey,
		}
	}

	results := h.queries.BatchQueries(c.Request().Context(), queries)

	resp := make([]BatchResponse, len(results))
	for i, res := range results {
		resp[i].Row = res.Row
		if res.Err != nil {
			resp[i].Error = res.Err.Error()
		}
	}
	return c.JSON(http.StatusOK, resp)
}

// StatsCounts carries the headline totals of the dashboard landing view
type StatsCounts struct {
	Clients        int `json:"clients"`
	ActiveProjects int `json:"active_projects"`
	OpenRequests   int `json:"open_requests"`
	OpenTickets    int `json:"open_tickets"`
}

// StatsResponse is the payload of the aggregated dashboard stats read
type StatsResponse struct {
	Counts          StatsCounts            `json:"counts"`
	CurrentProject  *domain.Project        `json:"current_project,omitempty"`
	CriticalRequest *domain.FeatureRequest `json:"critical_request,omitempty"`
	CriticalTicket  *domain.SupportTicket  `json:"critical_ticket,omitempty"`
	RecentActivity  []domain.ActivityLog   `json:"recent_activity"`
}

// Stats handles GET /v1/dashboard/stats. Counts come from exact-count
// reads with a single-row window; the headline records run as one
// concurrent batch.
func (h *DashboardHandler) Stats(c echo.Context) error {
	ctx := c.Request().Context()

	var counts StatsCounts
	countReads := []struct {
		table   string
		filters map[string]any
		dst     *int
	}{
		{"clients", nil, &counts.Clients},
		{"projects", map[string]any{"status": string(domain.ProjectInProgress)}, &counts.ActiveProjects},
		{"feature_requests", map[string]any{"status": "open"}, &counts.OpenRequests},
		{"support_tickets", map[string]any{"status": "open"}, &counts.OpenTickets},
	}
	for _, read := range countReads {
		res := h.queries.FetchFromTable(ctx, read.table, domain.FetchOptions{
			Select:  "id",
			Filters: read.filters,
			Limit:   1,
		})
		if res.Err != nil {
			return c.JSON(http.StatusBadGateway, ErrorResponse{Error: res.Err.Error()})
		}
		*read.dst = res.Count
	}

	headlines := h.queries.BatchQueries(ctx, []domain.BatchQuery{
		{Table: "projects", Filters: map[string]any{"status": string(domain.ProjectInProgress)}},
		{Table: "feature_requests", Filters: map[string]any{"status": "open", "priority": string(domain.PriorityCritical)}},
		{Table: "support_tickets", Filters: map[string]any{"status": "open", "priority": string(domain.PriorityCritical)}},
	})

	resp := StatsResponse{Counts: counts, RecentActivity: []domain.ActivityLog{}}
	if row := headlines[0].Row; row != nil {
		var project domain.Project
		if err := row.Decode(&project); err == nil {
			resp.CurrentProject = &project
		}
	}
	if row := headlines[1].Row; row != nil {
		var request domain.FeatureRequest
		if err := row.Decode(&request); err == nil {
			resp.CriticalRequest = &request
		}
	}
	if row := headlines[2].Row; row != nil {
		var ticket domain.SupportTicket
		if err := row.Decode(&ticket); err == nil {
			resp.CriticalTicket = &ticket
		}
	}

	activity := h.queries.FetchFromTable(ctx, "activity_log", domain.FetchOptions{
		Limit:   5,
		OrderBy: &domain.Order{Column: "created_at"},
	})
	if activity.Err == nil {
		if entries, err := domain.DecodeRows[domain.ActivityLog](activity.Data); err == nil {
			resp.RecentActivity = entries
		} else {
			h.logger.Warn("activity log rows skipped", "error", err)
		}
	}

	return c.JSON(http.StatusOK, resp)
}

// ClearCache handles DELETE /v1/cache
func (h *DashboardHandler) ClearCache(c echo.Context) error {
	keys := c.QueryParams()["key"]
	h.queries.ClearCache(keys...)

	h.logger.Info("cache cleared", "keys", len(keys))
	return c.NoContent(http.StatusNoContent)
}

// parseOrder reads "column.desc" / "column.asc" / "column" specs.
func parseOrder(raw string) *domain.Order {
	column, direction, _ := strings.Cut(raw, ".")
	if column == "" {
		return nil
	}
	return &domain.Order{Column: column, Ascending: direction != "desc"}
}
