package supabase

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sixtyseconds/ai-development-hub/app/domain"
)

// Query executes one table read against the storage API: equality
// filters ANDed together, optional range pagination and single-column
// ordering, with the exact row count requested alongside.
func (c *Client) Query(ctx context.Context, q domain.TableQuery) (*domain.QueryResult, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	if q.Table == "" {
		return nil, fmt.Errorf("table name is required")
	}

	params := url.Values{}
	sel := q.Select
	if sel == "" {
		sel = "*"
	}
	params.Set("select", sel)

	for col, val := range q.Filters {
		params.Set(col, "eq."+fmt.Sprint(val))
	}

	if q.OrderBy != nil {
		direction := "desc"
		if q.OrderBy.Ascending {
			direction = "asc"
		}
		params.Set("order", q.OrderBy.Column+"."+direction)
	}

	header := http.Header{}
	header.Set("Prefer", "count=exact")
	if from, to, ok := q.Range(); ok {
		header.Set("Range-Unit", "items")
		header.Set("Range", fmt.Sprintf("%d-%d", from, to))
	}

	var rows []domain.Row
	respHeader, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/rest/v1/" + url.PathEscape(q.Table),
		query:  params,
		header: header,
		authed: true,
	}, &rows)
	if err != nil {
		c.logger.Warn("table query failed", "table", q.Table, "error", err)
		return nil, fmt.Errorf("query %s: %w", q.Table, err)
	}

	return &domain.QueryResult{
		Data:  rows,
		Count: contentRangeCount(respHeader.Get("Content-Range"), len(rows)),
	}, nil
}

// Insert writes one record into a table.
func (c *Client) Insert(ctx context.Context, table string, record any) error {
	if err := c.ready(); err != nil {
		return err
	}
	if table == "" {
		return fmt.Errorf("table name is required")
	}

	header := http.Header{}
	header.Set("Prefer", "return=minimal")

	_, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/rest/v1/" + url.PathEscape(table),
		header: header,
		body:   record,
		authed: true,
	}, nil)
	if err != nil {
		return fmt.Errorf("insert into %s: %w", table, err)
	}
	return nil
}

// contentRangeCount extracts the total row count from a Content-Range
// header ("0-9/57"), falling back to the page length when the total is
// unknown.
func contentRangeCount(contentRange string, fallback int) int {
	_, total, ok := strings.Cut(contentRange, "/")
	if !ok || total == "*" {
		return fallback
	}
	count, err := strconv.Atoi(total)
	if err != nil {
		return fallback
	}
	return count
}
