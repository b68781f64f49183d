package orderview

import (
	"sync"
	"time"

	"laundry-admin/internal/entities"
	"laundry-admin/pkg/logger"
)

// highlightTTL is how long a located order stays visually marked before the
// highlight request is cleared.
const highlightTTL = 3 * time.Second

// Engine owns the operator's view state: the pending and applied filter
// copies, the view mode, the filter panel flag and the highlight request.
// The filtered list itself is derived, never stored; every read recomputes
// it from the current snapshot, so re-evaluation is always deterministic.
//
// All state is guarded by one mutex. There is no parallel pipeline here:
// correctness relies on recomputing after each state change, the same way
// the dashboard re-renders after each commit.
type Engine struct {
	log        engineLogger
	source     OrderSource
	normalizer Normalizer
	notifier   Notifier
	now        func() time.Time
	loc        *time.Location

	mu          sync.Mutex
	mode        entities.ViewMode
	applied     entities.Filters
	pending     entities.Filters
	showFilters bool

	// requestedID is the pending highlight request, 0 when absent.
	// highlightedID is the order currently marked in the view.
	requestedID   int64
	highlightedID int64
	clearTimer    *time.Timer
}

func New(
	log engineLogger,
	source OrderSource,
	normalizer Normalizer,
	notifier Notifier,
	now func() time.Time,
	loc *time.Location,
) *Engine {
	if now == nil {
		now = time.Now
	}

	return &Engine{
		log:        log.With(),
		source:     source,
		normalizer: normalizer,
		notifier:   notifier,
		now:        now,
		loc:        loc,
		mode:       entities.ViewToday,
		applied:    entities.DefaultFilters(),
		pending:    entities.DefaultFilters(),
	}
}

// View returns the display-ready projection of the current snapshot through
// the applied filters and the view mode. It is a pure read.
func (e *Engine) View() entities.OrderView {
	e.mu.Lock()
	defer e.mu.Unlock()

	orders := e.source.All()
	visible := e.visibleLocked(orders)

	return entities.OrderView{
		Orders:        visible,
		Mode:          e.mode,
		Applied:       e.applied,
		Pending:       e.pending,
		ShowFilters:   e.showFilters,
		HighlightedID: e.highlightedID,
		TotalCount:    len(orders),
		FilteredCount: len(visible),
	}
}

// SetViewMode switches the coarse order-set selector. Any mode is reachable
// from any other.
func (e *Engine) SetViewMode(mode string) error {
	if !entities.IsValidViewMode(mode) {
		return ErrInvalidViewMode
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.mode = entities.ViewMode(mode)
	e.resolveHighlightLocked()
	return nil
}

// StageFilters replaces the pending filter copy. Nothing is applied until
// ApplyFilters is called, and the panel flag is untouched: editing happens
// inside an already-open panel.
func (e *Engine) StageFilters(filters entities.Filters) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.pending = normalizeFilters(filters)
}

// ApplyFilters promotes the pending copy to the applied one.
func (e *Engine) ApplyFilters() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.applied = e.pending
	e.resolveHighlightLocked()
}

// ResetFilters restores both filter copies to their defaults and the view
// mode to today's orders.
func (e *Engine) ResetFilters() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.applied = entities.DefaultFilters()
	e.pending = entities.DefaultFilters()
	e.mode = entities.ViewToday
	e.showFilters = false
	e.resolveHighlightLocked()
}

// FilterOptions derives the distinct dropdown values from the full snapshot,
// preserving first-seen order.
func (e *Engine) FilterOptions() entities.FilterOptions {
	orders := e.source.All()

	options := entities.FilterOptions{}
	seen := map[string]map[string]bool{
		"customer": {},
		"camp":     {},
		"room":     {},
		"service":  {},
		"pickup":   {},
	}

	appendUnique := func(kind, value string, dst *[]string) {
		if value == "" || seen[kind][value] {
			return
		}
		seen[kind][value] = true
		*dst = append(*dst, value)
	}

	for _, order := range orders {
		appendUnique("customer", order.CustomerName, &options.CustomerNames)
		appendUnique("camp", order.CampName, &options.CampNames)
		appendUnique("room", order.RoomNumber, &options.RoomNumbers)
		appendUnique("pickup", order.PickupMethod, &options.PickupMethods)
		for _, service := range order.Services {
			appendUnique("service", service.Name, &options.Services)
		}
	}

	return options
}

// RequestHighlight registers an incoming "new order" signal and tries to
// bring that order into view. A newer request supersedes the previous one.
func (e *Engine) RequestHighlight(orderID int64) {
	if orderID == 0 {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.stopClearTimerLocked()
	e.requestedID = orderID
	e.highlightedID = 0
	e.resolveHighlightLocked()
}

// Evaluate re-runs the highlight resolver against the current snapshot.
// The order source calls it after every refresh.
func (e *Engine) Evaluate() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.resolveHighlightLocked()
}

// Close cancels the pending highlight-clear timer.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.stopClearTimerLocked()
}

// resolveHighlightLocked implements the self-correcting highlight retry:
//  1. the target is visible: mark it and arm the clear timer;
//  2. the target exists but is filtered out: force the filters and mode wide
//     open, surface the panel and re-check against the widened list;
//  3. the target is absent from the full set: the request stays pending and
//     the panel stays forced open (stale ids are logged, never dropped).
func (e *Engine) resolveHighlightLocked() {
	if e.requestedID == 0 {
		return
	}

	orders := e.source.All()

	if containsOrder(e.visibleLocked(orders), e.requestedID) {
		e.markHighlightedLocked()
		return
	}

	e.applied = entities.DefaultFilters()
	e.pending = entities.DefaultFilters()
	e.mode = entities.ViewAll
	e.showFilters = true

	if containsOrder(e.visibleLocked(orders), e.requestedID) {
		e.markHighlightedLocked()
		return
	}

	e.log.Warn("highlighted order missing from the full order set",
		logger.NewField("order", e.requestedID),
	)
}

func (e *Engine) markHighlightedLocked() {
	id := e.requestedID
	e.highlightedID = id

	if e.notifier != nil {
		e.notifier.OrderHighlighted(id)
	}

	e.stopClearTimerLocked()
	e.clearTimer = time.AfterFunc(highlightTTL, func() {
		e.mu.Lock()
		defer e.mu.Unlock()

		// A newer request may have replaced this one while the timer ran.
		if e.requestedID != id {
			return
		}
		e.requestedID = 0
		e.highlightedID = 0
	})
}

func (e *Engine) stopClearTimerLocked() {
	if e.clearTimer != nil {
		e.clearTimer.Stop()
		e.clearTimer = nil
	}
}

func (e *Engine) visibleLocked(orders []entities.Order) []entities.Order {
	visible := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		if !matchesFilters(order, e.applied) {
			continue
		}
		if !e.matchesMode(order) {
			continue
		}
		visible = append(visible, order)
	}
	return visible
}

func containsOrder(orders []entities.Order, id int64) bool {
	for _, order := range orders {
		if order.ID == id {
			return true
		}
	}
	return false
}

// normalizeFilters maps empty dropdown selections back to the sentinel so a
// client omitting a field does not accidentally filter everything out.
func normalizeFilters(filters entities.Filters) entities.Filters {
	if filters.CustomerName == "" {
		filters.CustomerName = entities.FilterAll
	}
	if filters.CampName == "" {
		filters.CampName = entities.FilterAll
	}
	if filters.RoomNumber == "" {
		filters.RoomNumber = entities.FilterAll
	}
	if filters.Service == "" {
		filters.Service = entities.FilterAll
	}
	if filters.PaymentStatus == "" {
		filters.PaymentStatus = entities.FilterAll
	}
	if filters.PickupMethod == "" {
		filters.PickupMethod = entities.FilterAll
	}
	return filters
}
