package services_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildOrder(t *testing.T, code string) *order.Order {
	t.Helper()
	item, err := order.NewItem("wash-fold", 1, []string{"shirt"}, decimal.NewFromInt(5))
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), code, kernel.NewUUID(),
		[]order.Item{item}, time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return o
}

func buildOrderAtStage(t *testing.T, code string, advances int) *order.Order {
	t.Helper()
	o := buildOrder(t, code)
	require.NoError(t, o.StartProcessing(true, time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)))
	for i := 0; i < advances; i++ {
		require.NoError(t, o.AdvanceStage(time.Date(2024, 6, 1, 11+i, 0, 0, 0, time.UTC), ""))
	}
	return o
}

func TestProgressProjector_ProgressPercent(t *testing.T) {
	projector := services.NewProgressProjector()

	t.Run("pre-work stages report the fixed minimal value", func(t *testing.T) {
		o := buildOrder(t, "ORD-2024-010")
		assert.Equal(t, 5, projector.ProgressPercent(o))

		require.NoError(t, o.ConfirmPickup(time.Now()))
		assert.Equal(t, 5, projector.ProgressPercent(o))
	})

	t.Run("work stages report the rounded work-index fraction", func(t *testing.T) {
		expected := map[int]int{
			0: 13, // items_received, 1/8
			1: 25, // washing
			2: 38, // drying, 3/8 = 37.5 rounds up
			3: 50, // folding
			4: 63, // quality_check, 5/8 = 62.5 rounds up
			5: 75, // ready_for_delivery
			6: 88, // out_for_delivery, 7/8 = 87.5 rounds up
		}

		for advances, percent := range expected {
			o := buildOrderAtStage(t, "ORD-2024-011", advances)
			assert.Equal(t, percent, projector.ProgressPercent(o),
				"stage %s", o.CurrentStage())
		}
	})

	t.Run("completed order is exactly 100", func(t *testing.T) {
		o := buildOrderAtStage(t, "ORD-2024-012", 7)

		assert.Equal(t, order.Completed, o.Status())
		assert.Equal(t, 100, projector.ProgressPercent(o))
	})

	t.Run("is monotonically non-decreasing across the whole lifecycle", func(t *testing.T) {
		o := buildOrder(t, "ORD-2024-013")
		last := projector.ProgressPercent(o)

		require.NoError(t, o.ConfirmPickup(time.Now()))
		require.NoError(t, o.StartProcessing(true, time.Now()))
		for {
			current := projector.ProgressPercent(o)
			assert.GreaterOrEqual(t, current, last)
			last = current
			if o.Status() == order.Completed {
				break
			}
			require.NoError(t, o.AdvanceStage(time.Now(), ""))
		}
		assert.Equal(t, 100, last)
	})
}

func TestProgressProjector_RenderTimeline(t *testing.T) {
	projector := services.NewProgressProjector()

	t.Run("renders one step per reached stage with flags", func(t *testing.T) {
		o := buildOrderAtStage(t, "ORD-2024-014", 1) // at washing

		steps := projector.RenderTimeline(o)

		require.Len(t, steps, order.Washing.CatalogIndex()+1)
		for i, step := range steps {
			assert.Equal(t, i, step.Stage.CatalogIndex())
			if step.Stage == order.Washing {
				assert.True(t, step.Current)
				assert.False(t, step.Completed)
			} else {
				assert.True(t, step.Completed)
				assert.False(t, step.Current)
			}
		}
	})

	t.Run("joins timestamps from the order history", func(t *testing.T) {
		o := buildOrderAtStage(t, "ORD-2024-015", 0)

		steps := projector.RenderTimeline(o)

		byStage := map[order.Stage]services.TimelineStep{}
		for _, step := range steps {
			byStage[step.Stage] = step
		}

		require.NotNil(t, byStage[order.OrderPlaced].Timestamp)
		require.NotNil(t, byStage[order.ItemsReceived].Timestamp)
		// pickup was skipped, so it renders without a timestamp
		assert.Nil(t, byStage[order.PickupConfirmed].Timestamp)
	})

	t.Run("fresh order renders only the placement step", func(t *testing.T) {
		o := buildOrder(t, "ORD-2024-016")

		steps := projector.RenderTimeline(o)

		require.Len(t, steps, 1)
		assert.Equal(t, order.OrderPlaced, steps[0].Stage)
		assert.True(t, steps[0].Current)
	})
}

func TestSortByStage(t *testing.T) {
	t.Run("orders deep in processing surface first", func(t *testing.T) {
		fresh := buildOrder(t, "ORD-2024-020")
		washing := buildOrderAtStage(t, "ORD-2024-021", 1)
		folding := buildOrderAtStage(t, "ORD-2024-022", 3)

		sorted := services.SortByStage([]*order.Order{fresh, washing, folding})

		assert.Equal(t, "ORD-2024-022", sorted[0].OrderCode())
		assert.Equal(t, "ORD-2024-021", sorted[1].OrderCode())
		assert.Equal(t, "ORD-2024-020", sorted[2].OrderCode())
	})

	t.Run("ties break on order code", func(t *testing.T) {
		second := buildOrderAtStage(t, "ORD-2024-031", 2)
		first := buildOrderAtStage(t, "ORD-2024-030", 2)

		sorted := services.SortByStage([]*order.Order{second, first})

		assert.Equal(t, "ORD-2024-030", sorted[0].OrderCode())
	})
}
