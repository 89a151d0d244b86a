package queries

import (
	"context"

	"laundry/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderStatsQueryHandler aggregates order counts straight from the
// database. Uses direct SQL for optimal read performance in the CQRS
// pattern; the breakdown never loads aggregates.
type GetOrderStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatsQueryHandler creates a handler for order statistics queries.
// Requires a GORM database connection for query execution.
func NewGetOrderStatsQueryHandler(db *gorm.DB) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db}
}

// Handle executes the query and returns counts grouped by status and by
// stage, keyed by their string representations.
func (h GetOrderStatsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatsQuery,
) (GetOrderStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	response := GetOrderStatsQueryResponse{
		ByStatus: make(map[string]int),
		ByStage:  make(map[string]int),
	}

	statusRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetOrderStatsQueryResponse{}, err
	}
	defer statusRows.Close()

	for statusRows.Next() {
		var status int
		var count int

		if err = statusRows.Scan(&status, &count); err != nil {
			return GetOrderStatsQueryResponse{}, err
		}

		response.ByStatus[order.Status(status).String()] = count
		response.Total += count
	}
	if err = statusRows.Err(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	stageRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			current_stage,
			COUNT(*)
		FROM orders
		GROUP BY current_stage
	`).Rows()
	if err != nil {
		return GetOrderStatsQueryResponse{}, err
	}
	defer stageRows.Close()

	for stageRows.Next() {
		var stage int
		var count int

		if err = stageRows.Scan(&stage, &count); err != nil {
			return GetOrderStatsQueryResponse{}, err
		}

		response.ByStage[order.Stage(stage).String()] = count
	}
	if err = stageRows.Err(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	return response, nil
}
