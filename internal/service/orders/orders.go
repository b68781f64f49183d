package orders

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"laundry-admin/internal/entities"
	"laundry-admin/pkg/logger"
)

type Service struct {
	log        serviceLogger
	gateway    Gateway
	cache      Cache
	repository Repository
	view       ViewEngine
}

func New(
	log serviceLogger,
	gateway Gateway,
	cache Cache,
	repository Repository,
	view ViewEngine,
) *Service {
	return &Service{
		log:        log.With(),
		gateway:    gateway,
		cache:      cache,
		repository: repository,
		view:       view,
	}
}

// Refresh re-fetches all four backend resources, joins them into display
// orders and swaps the snapshot. The fetches run concurrently but the
// projection waits for every one of them: partial results are never
// surfaced. A failed sub-fetch degrades to an empty collection for that
// resource only; when the orders fetch itself fails, the last persisted
// snapshot is kept on screen instead.
func (s *Service) Refresh(ctx context.Context) error {
	var (
		rawOrders []entities.RawOrder
		services  []entities.Service
		slots     []entities.PickupSlot
		camps     []entities.Camp
		ordersErr error
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		rawOrders, ordersErr = s.gateway.ListOrders(groupCtx)
		if ordersErr != nil {
			s.logFetchFailure("laundry_order", ordersErr)
		}
		return nil
	})
	group.Go(func() error {
		var err error
		if services, err = s.gateway.ListServices(groupCtx); err != nil {
			s.logFetchFailure("service", err)
			services = nil
		}
		return nil
	})
	group.Go(func() error {
		var err error
		if slots, err = s.gateway.ListPickupSlots(groupCtx); err != nil {
			s.logFetchFailure("pickup_slot", err)
			slots = nil
		}
		return nil
	})
	group.Go(func() error {
		var err error
		if camps, err = s.gateway.ListCamps(groupCtx); err != nil {
			s.logFetchFailure("camp", err)
			camps = nil
		}
		return nil
	})
	// Fetch errors are downgraded to empty collections above.
	_ = group.Wait()

	if ordersErr != nil {
		return s.restoreSnapshot(ctx, ordersErr)
	}

	projected := projectOrders(rawOrders, services, slots, camps)
	s.cache.Replace(projected)
	s.view.Evaluate()

	if err := s.repository.ReplaceSnapshot(ctx, projected); err != nil {
		s.log.Warn("persist order snapshot",
			logger.NewField("error", err),
		)
	}

	s.log.Info("order snapshot refreshed",
		logger.NewField("orders", len(projected)),
		logger.NewField("services", len(services)),
		logger.NewField("pickup_slots", len(slots)),
		logger.NewField("camps", len(camps)),
	)
	return nil
}

// UpdateStatus applies an optimistic in-memory update, then confirms it with
// the backend. On backend failure the previous status is restored and the
// error is surfaced to the caller; there is no automatic retry.
func (s *Service) UpdateStatus(ctx context.Context, orderID int64, status string) error {
	if !entities.IsValidOrderStatus(status) {
		return ErrInvalidStatus
	}
	newStatus := entities.OrderStatusType(status)

	previous, found := s.cache.SetStatus(orderID, newStatus)
	if !found {
		return ErrOrderNotFound
	}
	s.view.Evaluate()

	if err := s.gateway.UpdateOrderStatus(ctx, orderID, newStatus); err != nil {
		s.cache.SetStatus(orderID, previous)
		s.view.Evaluate()
		return fmt.Errorf("%w: %w", ErrBackendUpdate, err)
	}

	if order, ok := s.cache.Get(orderID); ok {
		if err := s.repository.ReplaceSnapshot(ctx, s.cache.All()); err != nil {
			s.log.Warn("persist order snapshot after status update",
				logger.NewField("order", order.ID),
				logger.NewField("error", err),
			)
		}
	}

	return nil
}

// All exposes the current snapshot.
func (s *Service) All() []entities.Order {
	return s.cache.All()
}

func (s *Service) restoreSnapshot(ctx context.Context, cause error) error {
	if len(s.cache.All()) > 0 {
		// A previous refresh already populated the view; keep it.
		return fmt.Errorf("refresh orders: %w", cause)
	}

	persisted, err := s.repository.LoadSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("refresh orders: %w (snapshot fallback: %w)", cause, err)
	}

	s.cache.Replace(persisted)
	s.view.Evaluate()

	s.log.Warn("serving persisted order snapshot",
		logger.NewField("orders", len(persisted)),
		logger.NewField("error", cause),
	)
	return nil
}

func (s *Service) logFetchFailure(resource string, err error) {
	s.log.Warn("backend fetch failed, substituting empty collection",
		logger.NewField("resource", resource),
		logger.NewField("error", err),
	)
}
