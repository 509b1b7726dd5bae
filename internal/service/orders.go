package service

import (
	"context"
	"log/slog"

	"github.com/candylab/sweetbot/core/logger"
	"github.com/candylab/sweetbot/internal/models"
)

// Orders advances the order status lifecycle. Every mutation is gated on the
// single configured administrator identity.
type Orders struct {
	store   OrderStore
	adminID int64
}

// NewOrders constructs the order lifecycle service.
func NewOrders(store OrderStore, adminID int64) *Orders {
	return &Orders{store: store, adminID: adminID}
}

func (s *Orders) authorize(actorID int64) error {
	if actorID != s.adminID {
		return ErrForbidden
	}
	return nil
}

// Accept moves an order to accepted. Only the administrator may call it.
func (s *Orders) Accept(ctx context.Context, actorID, orderID int64) (*models.Order, error) {
	return s.setStatus(ctx, actorID, orderID, models.OrderStatusAccepted)
}

// MarkShipped moves an order to shipped. Shipping does not require a prior
// accept; the status pair is deliberately unordered.
func (s *Orders) MarkShipped(ctx context.Context, actorID, orderID int64) (*models.Order, error) {
	return s.setStatus(ctx, actorID, orderID, models.OrderStatusShipped)
}

// Cancel moves an order to canceled.
func (s *Orders) Cancel(ctx context.Context, actorID, orderID int64) (*models.Order, error) {
	return s.setStatus(ctx, actorID, orderID, models.OrderStatusCanceled)
}

func (s *Orders) setStatus(ctx context.Context, actorID, orderID int64, status models.OrderStatus) (*models.Order, error) {
	if err := s.authorize(actorID); err != nil {
		logger.Warn(ctx, "service.orders", "order.status.forbidden",
			slog.Int64("user_id", actorID),
			slog.Int64("order_id", orderID),
		)
		return nil, err
	}

	order, err := s.store.ByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	ok, err := s.store.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrOrderNotFound
	}
	order.Status = status

	logger.Info(ctx, "service.orders", "order.status",
		slog.Int64("order_id", orderID),
		slog.String("order_status", string(status)),
	)
	return order, nil
}

// Recent lists the newest orders for the administrator.
func (s *Orders) Recent(ctx context.Context, actorID int64, limit int) ([]models.Order, error) {
	if err := s.authorize(actorID); err != nil {
		return nil, err
	}
	return s.store.Recent(ctx, limit)
}
