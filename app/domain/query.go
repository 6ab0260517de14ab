package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// DefaultPageSize is the page size applied when a fetch does not specify one.
const DefaultPageSize = 10

// NoLimit disables range-based pagination for a fetch.
const NoLimit = -1

// Row is a single record returned by a table query.
type Row map[string]any

// Decode unmarshals the row into a typed record.
func (r Row) Decode(dst any) error {
	raw, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode row: %w", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode row: %w", err)
	}
	return nil
}

// QueryResult is the outcome of a remote table query. Failures are carried
// in Err, never thrown across the cache boundary; a result that errored is
// never cached.
type QueryResult struct {
	Data  []Row
	Err   error
	Count int
}

// First returns the first row, or nil if the result is empty.
func (r *QueryResult) First() Row {
	if len(r.Data) == 0 {
		return nil
	}
	return r.Data[0]
}

// Order specifies a single-column ordering for a table query.
type Order struct {
	Column    string
	Ascending bool
}

// TableQuery describes one remote table read: equality filters ANDed
// together, optional range-based pagination and single-column ordering.
type TableQuery struct {
	Table   string
	Select  string
	Filters map[string]any
	Limit   int
	Page    int
	OrderBy *Order
}

// Range returns the inclusive row range for the query's page, and whether
// pagination applies at all.
func (q TableQuery) Range() (from, to int, ok bool) {
	if q.Limit <= 0 {
		return 0, 0, false
	}
	return q.Page * q.Limit, (q.Page+1)*q.Limit - 1, true
}

// FetchOptions controls a cached table fetch. A zero Limit falls back to
// DefaultPageSize; NoLimit disables pagination.
type FetchOptions struct {
	Select       string
	Filters      map[string]any
	Limit        int
	Page         int
	OrderBy      *Order
	TTL          time.Duration
	ForceRefresh bool
	CacheKey     string
}

// BatchQuery is one element of a concurrent batch of single-record lookups.
type BatchQuery struct {
	Table    string
	Select   string
	Filters  map[string]any
	CacheKey string
}

// BatchResult pairs the first row of a batch lookup (or nil) with its error.
type BatchResult struct {
	Row Row
	Err error
}

// CacheKey derives the deterministic default cache key for a query from the
// full parameter tuple. Filter keys are sorted so equivalent filter sets
// produce the same key.
func (q TableQuery) CacheKey() string {
	var b strings.Builder
	b.WriteString(q.Table)
	b.WriteByte('|')
	b.WriteString(q.Select)
	b.WriteByte('|')

	keys := make([]string, 0, len(q.Filters))
	for k := range q.Filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "%s=%v&", k, q.Filters[k])
	}

	fmt.Fprintf(&b, "|%d|%d|", q.Limit, q.Page)
	if q.OrderBy != nil {
		fmt.Fprintf(&b, "%s.%t", q.OrderBy.Column, q.OrderBy.Ascending)
	}
	return b.String()
}
