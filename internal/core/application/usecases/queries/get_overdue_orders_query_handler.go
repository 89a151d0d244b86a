package queries

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOverdueOrdersQueryHandler retrieves overdue orders from the database.
// Filters to non-terminal orders with a delivery estimate in the past, so
// the escalation job only ever sees orders that can still be acted on.
type GetOverdueOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueOrdersQueryHandler creates a handler for overdue order queries.
// Requires a GORM database connection for query execution.
func NewGetOverdueOrdersQueryHandler(db *gorm.DB) GetOverdueOrdersQueryHandler {
	return GetOverdueOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all overdue orders as of the query's
// reference time, most overdue first.
func (h GetOverdueOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueOrdersQuery,
) ([]GetOverdueOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOverdueOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_code,
			assigned_staff_id,
			status,
			current_stage,
			estimated_delivery
		FROM orders
		WHERE status NOT IN (?, ?)
		  AND estimated_delivery IS NOT NULL
		  AND estimated_delivery < ?
		ORDER BY estimated_delivery
	`, order.Completed, order.Cancelled, query.AsOf()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var overdueResp GetOverdueOrdersQueryResponse
		var id uuid.UUID
		var staffID uuid.NullUUID
		var status, stage int
		var estimatedDelivery time.Time

		err = rows.Scan(
			&id,
			&overdueResp.OrderCode,
			&staffID,
			&status,
			&stage,
			&estimatedDelivery,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		overdueResp.ID = orderID

		if staffID.Valid {
			assignee, staffErr := kernel.UUIDFromBytes(staffID.UUID[:])
			if staffErr != nil {
				return nil, staffErr
			}
			overdueResp.AssignedStaffID = &assignee
		}

		overdueResp.Status = order.Status(status)
		overdueResp.CurrentStage = order.Stage(stage)
		overdueResp.EstimatedDelivery = estimatedDelivery
		orders = append(orders, overdueResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
