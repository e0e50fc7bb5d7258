package inventory

import (
	"context"

	"github.com/warungin/backend/internal/domain/inventory"
)

// ApplyInbound credits the movement's destination warehouse and appends the
// movement row. The caller must already be inside a transaction; the stock
// row is locked until it commits. Other services reuse this for referenced
// receipts, purchase order receiving in particular.
func ApplyInbound(ctx context.Context, stocks inventory.StockRepository, movements inventory.StockMovementRepository, movement *inventory.StockMovement) error {
	stock, err := stocks.GetOrCreateForUpdate(ctx, *movement.ToWarehouseID, movement.ProductID)
	if err != nil {
		return err
	}
	if err := stock.Increase(movement.Quantity); err != nil {
		return err
	}
	if err := stocks.Save(ctx, stock); err != nil {
		return err
	}
	return movements.Save(ctx, movement)
}

// ApplyOutbound debits the movement's source warehouse after the sufficiency
// check and appends the movement row
func ApplyOutbound(ctx context.Context, stocks inventory.StockRepository, movements inventory.StockMovementRepository, movement *inventory.StockMovement) error {
	stock, err := stocks.GetOrCreateForUpdate(ctx, *movement.FromWarehouseID, movement.ProductID)
	if err != nil {
		return err
	}
	if err := stock.Decrease(movement.Quantity); err != nil {
		return err
	}
	if err := stocks.Save(ctx, stock); err != nil {
		return err
	}
	return movements.Save(ctx, movement)
}

// ApplyTransfer debits the source, credits the destination and appends the
// single movement row carrying both sides
func ApplyTransfer(ctx context.Context, stocks inventory.StockRepository, movements inventory.StockMovementRepository, movement *inventory.StockMovement) error {
	source, err := stocks.GetOrCreateForUpdate(ctx, *movement.FromWarehouseID, movement.ProductID)
	if err != nil {
		return err
	}
	if err := source.Decrease(movement.Quantity); err != nil {
		return err
	}
	if err := stocks.Save(ctx, source); err != nil {
		return err
	}

	dest, err := stocks.GetOrCreateForUpdate(ctx, *movement.ToWarehouseID, movement.ProductID)
	if err != nil {
		return err
	}
	if err := dest.Increase(movement.Quantity); err != nil {
		return err
	}
	if err := stocks.Save(ctx, dest); err != nil {
		return err
	}
	return movements.Save(ctx, movement)
}
