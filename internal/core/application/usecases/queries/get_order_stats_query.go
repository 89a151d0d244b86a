package queries

import (
	"errors"

	"laundry/internal/pkg/guard"
)

var ErrGetOrderStatsQueryIsNotConstructed = errors.New(
	"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
)

// GetOrderStatsQuery retrieves order counts broken down by status and by
// catalog stage, for the operations dashboard.
//
// Example:
//
//	query := NewGetOrderStatsQuery()
//	stats, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order stats: %w", err)
//	}
//
//	fmt.Printf("%d orders total, %d in processing\n",
//	    stats.Total, stats.ByStatus["processing"])
type GetOrderStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderStatsQuery creates a query for the order statistics breakdown.
// This is a parameterless query over the whole order book.
func NewGetOrderStatsQuery() GetOrderStatsQuery {
	return GetOrderStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

// GetOrderStatsQueryResponse holds order counts keyed by the string form of
// status and stage. Only statuses and stages with at least one order appear.
type GetOrderStatsQueryResponse struct {
	Total    int
	ByStatus map[string]int
	ByStage  map[string]int
}
