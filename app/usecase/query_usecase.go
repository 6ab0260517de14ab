package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/sixtyseconds/ai-development-hub/app/cache"
	"github.com/sixtyseconds/ai-development-hub/app/domain"
	"github.com/sixtyseconds/ai-development-hub/app/port"
)

// QueryUsecase is the fetch coordinator: it builds remote table queries,
// delegates to the TTL cache and absorbs every failure into the result
// value so display logic never handles cache-plumbing errors separately
// from query errors.
type QueryUsecase struct {
	cache  *cache.Cache
	tables port.TableClient
	logger *slog.Logger
}

// NewQueryUsecase creates a new QueryUsecase instance
func NewQueryUsecase(c *cache.Cache, tables port.TableClient, logger *slog.Logger) *QueryUsecase {
	return &QueryUsecase{
		cache:  c,
		tables: tables,
		logger: logger.With("component", "query_usecase"),
	}
}

// FetchFromTable reads rows from a named table with equality filters,
// range-based pagination and optional ordering, reusing cached results
// within the TTL. It never returns a Go error: any failure during query
// construction or execution comes back as the result's Err with a zero
// count.
func (uc *QueryUsecase) FetchFromTable(ctx context.Context, table string, opts domain.FetchOptions) *domain.QueryResult {
	if table == "" {
		return &domain.QueryResult{Err: fmt.Errorf("table name is required")}
	}

	query := uc.buildQuery(table, opts)

	key := opts.CacheKey
	if key == "" {
		key = query.CacheKey()
	}

	return uc.cache.FetchWithCache(ctx, key, func(ctx context.Context) (*domain.QueryResult, error) {
		return uc.tables.Query(ctx, query)
	}, cache.FetchOptions{TTL: opts.TTL, ForceRefresh: opts.ForceRefresh})
}

// BatchQueries runs one table fetch per input concurrently, each reduced
// to its first row or nil. Batched reads are single-record lookups and
// never use stale cache, so every request forces a refresh.
func (uc *QueryUsecase) BatchQueries(ctx context.Context, queries []domain.BatchQuery) []domain.BatchResult {
	results := make([]domain.BatchResult, len(queries))

	g := new(errgroup.Group)
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			res := uc.FetchFromTable(ctx, q.Table, domain.FetchOptions{
				Select:       q.Select,
				Filters:      q.Filters,
				CacheKey:     q.CacheKey,
				ForceRefresh: true,
			})
			results[i] = domain.BatchResult{Row: res.First(), Err: res.Err}
			return nil
		})
	}
	g.Wait()

	return results
}

// InsertInto writes one record into a named table.
func (uc *QueryUsecase) InsertInto(ctx context.Context, table string, record any) error {
	if err := uc.tables.Insert(ctx, table, record); err != nil {
		uc.logger.Error("insert failed", "table", table, "error", err)
		return fmt.Errorf("insert into %s: %w", table, err)
	}
	return nil
}

// ClearCache removes the given cache keys, or everything when called
// with none.
func (uc *QueryUsecase) ClearCache(keys ...string) {
	uc.cache.Clear(keys...)
}

// buildQuery assembles the remote query, skipping nil filter values and
// applying the default page size when the caller did not choose one.
func (uc *QueryUsecase) buildQuery(table string, opts domain.FetchOptions) domain.TableQuery {
	sel := opts.Select
	if sel == "" {
		sel = "*"
	}

	limit := opts.Limit
	switch {
	case limit == 0:
		limit = domain.DefaultPageSize
	case limit < 0:
		limit = 0 // NoLimit: pagination disabled
	}

	var filters map[string]any
	for k, v := range opts.Filters {
		if v == nil {
			continue
		}
		if filters == nil {
			filters = make(map[string]any, len(opts.Filters))
		}
		filters[k] = v
	}

	return domain.TableQuery{
		Table:   table,
		Select:  sel,
		Filters: filters,
		Limit:   limit,
		Page:    opts.Page,
		OrderBy: opts.OrderBy,
	}
}
