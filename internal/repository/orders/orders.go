package orders

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"laundry-admin/internal/entities"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier   Querier
	txManager TxManager
}

func New(querier Querier, txManager TxManager) *Repository {
	return &Repository{
		querier:   querier,
		txManager: txManager,
	}
}

// ReplaceSnapshot swaps the persisted snapshot for the given one. Delete and
// insert run in one transaction so a crash mid-write never leaves a partial
// snapshot behind.
func (r *Repository) ReplaceSnapshot(ctx context.Context, orders []entities.Order) error {
	err := r.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := r.querier.Exec(ctx, `DELETE FROM order_snapshot`); err != nil {
			return fmt.Errorf("clear snapshot: %w", err)
		}

		if len(orders) == 0 {
			return nil
		}

		builder := qb.
			Insert("order_snapshot").
			Columns(
				"position", "id", "title", "customer_name", "room_number",
				"pickup_method", "payment_confirmed", "total_price",
				"special_instructions", "status", "order_timestamp",
				"camp_name", "services", "pickup_slot", "date_created",
			)

		for position := range orders {
			model, err := FromDomain(position, &orders[position])
			if err != nil {
				return err
			}

			builder = builder.Values(
				model.Position,
				model.ID,
				model.Title,
				model.CustomerName,
				model.RoomNumber,
				model.PickupMethod,
				model.PaymentConfirmed,
				model.TotalPrice,
				model.SpecialInstructions,
				model.Status,
				model.OrderTimestamp,
				model.CampName,
				model.Services,
				model.PickupSlot,
				model.DateCreated,
			)
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("build snapshot insert: %w", err)
		}

		if _, err := r.querier.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("insert snapshot: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("unexpected orders repository replace snapshot error: %w", err)
	}
	return nil
}

// LoadSnapshot returns the persisted snapshot in its original backend order.
func (r *Repository) LoadSnapshot(ctx context.Context) ([]entities.Order, error) {
	query := `
		SELECT
			id, title, customer_name, room_number, pickup_method,
			payment_confirmed, total_price, special_instructions, status,
			order_timestamp, camp_name, services, pickup_slot, date_created
		FROM order_snapshot
		ORDER BY position ASC
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected orders repository load snapshot error: %w", err)
	}
	defer rows.Close()

	var orders []entities.Order
	for rows.Next() {
		var model OrderDB
		err := rows.Scan(
			&model.ID,
			&model.Title,
			&model.CustomerName,
			&model.RoomNumber,
			&model.PickupMethod,
			&model.PaymentConfirmed,
			&model.TotalPrice,
			&model.SpecialInstructions,
			&model.Status,
			&model.OrderTimestamp,
			&model.CampName,
			&model.Services,
			&model.PickupSlot,
			&model.DateCreated,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected orders repository scan error: %w", err)
		}

		order, err := ToDomain(&model)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected orders repository rows error: %w", err)
	}

	return orders, nil
}
