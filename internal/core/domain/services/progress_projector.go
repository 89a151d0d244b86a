package services

import (
	"math"
	"sort"
	"time"

	"laundry/internal/core/domain/model/order"
)

// preWorkProgress is the fixed percentage reported while an order is still in
// the pre-work stages (order_placed, pickup_confirmed).
const preWorkProgress = 5

// TimelineStep is one rendered entry of the customer-facing timeline: a
// catalog stage the order has reached, flagged as completed or current.
type TimelineStep struct {
	Stage     order.Stage
	Completed bool
	Current   bool
	Timestamp *time.Time
	Notes     string
}

// ProgressProjector derives the customer-facing progress view of an order:
// a 0-100 completion percentage and a rendered stage timeline.
//
// The projector is a pure function of the order and the stage catalog. It
// never mutates order state and is safe to call repeatedly from
// polling-refresh UIs.
type ProgressProjector struct{}

// NewProgressProjector creates a new ProgressProjector instance.
func NewProgressProjector() ProgressProjector {
	return ProgressProjector{}
}

// ProgressPercent returns the order's completion percentage.
//
// Rules:
//   - a completed order is always exactly 100, regardless of stage arithmetic
//   - pre-work stages report a fixed minimal value
//   - work stages report round(workIndex / workStageCount * 100)
//
// The value is monotonically non-decreasing as the order advances through the
// catalog in order.
func (p ProgressProjector) ProgressPercent(o *order.Order) int {
	if o.Status() == order.Completed {
		return 100
	}

	stage := o.CurrentStage()
	if !stage.IsWorkStage() {
		return preWorkProgress
	}

	return int(math.Round(float64(stage.WorkStageIndex()) / float64(order.WorkStageCount) * 100))
}

// RenderTimeline returns one step per catalog stage up to and including the
// order's current stage, in catalog order. Stages before the current one are
// flagged completed, the current one is flagged current; stages not yet
// reached are not rendered.
//
// Timestamps and notes are joined in from the order's timeline history where
// a matching event exists. When a stage occurs multiple times in the history
// the latest event wins.
func (p ProgressProjector) RenderTimeline(o *order.Order) []TimelineStep {
	currentIndex := o.CurrentStage().CatalogIndex()
	if currentIndex < 0 {
		return nil
	}

	events := make(map[order.Stage]order.StageEvent, len(o.Timeline()))
	for _, event := range o.Timeline() {
		events[event.Stage()] = event
	}

	steps := make([]TimelineStep, 0, currentIndex+1)
	for _, stage := range order.Stages() {
		index := stage.CatalogIndex()
		if index > currentIndex {
			break
		}

		step := TimelineStep{
			Stage:     stage,
			Completed: index < currentIndex,
			Current:   index == currentIndex,
		}
		if event, ok := events[stage]; ok {
			ts := event.Timestamp()
			step.Timestamp = &ts
			step.Notes = event.Notes()
		}
		steps = append(steps, step)
	}

	return steps
}

// SortByStage orders a staff member's work queue by catalog stage position,
// so orders deep in processing surface before ones that have not started,
// with the human-facing order code as a stable tie-break.
//
// Ordering is a presentation concern; the slice is sorted in place and
// returned for convenience.
func SortByStage(orders []*order.Order) []*order.Order {
	sort.SliceStable(orders, func(i, j int) bool {
		left := orders[i].CurrentStage().CatalogIndex()
		right := orders[j].CurrentStage().CatalogIndex()
		if left != right {
			return left > right
		}
		return orders[i].OrderCode() < orders[j].OrderCode()
	})
	return orders
}
