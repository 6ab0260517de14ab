package port

//go:generate mockgen -source=query_port.go -destination=../mocks/mock_query_port.go

import (
	"context"

	"github.com/sixtyseconds/ai-development-hub/app/domain"
)

// TableQuerier executes one remote table read
type TableQuerier interface {
	Query(ctx context.Context, q domain.TableQuery) (*domain.QueryResult, error)
}

// TableWriter performs remote table writes
type TableWriter interface {
	Insert(ctx context.Context, table string, record any) error
}

// TableClient combines remote table reads and writes
type TableClient interface {
	TableQuerier
	TableWriter
}

// QueryCoordinator is the cached fetch surface consumed by views and by the
// auth container for profile lookups. Fetch operations never return a Go
// error; failures are absorbed into the result value.
type QueryCoordinator interface {
	FetchFromTable(ctx context.Context, table string, opts domain.FetchOptions) *domain.QueryResult
	BatchQueries(ctx context.Context, queries []domain.BatchQuery) []domain.BatchResult
	InsertInto(ctx context.Context, table string, record any) error
	ClearCache(keys ...string)
}
