package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lunchbox/backend/internal/calendar"
	"lunchbox/backend/internal/logger"
	"lunchbox/backend/internal/model"
	"lunchbox/backend/internal/repository"
)

//go:generate mockgen -source=order_service.go -destination=mock/mock_order_service.go -package=mock

// OrderService handles order submissions and the "today" view.
type OrderService interface {
	// Save creates the order for (date, user) or overwrites the existing one.
	Save(ctx context.Context, order model.Order) error
	// Today returns the authoritative order of every user for the current
	// day in the reference timezone.
	Today(ctx context.Context) ([]model.Order, error)
}

type orderService struct {
	orders repository.OrderRepository
	dates  *calendar.Normalizer
	now    func() time.Time
}

// NewOrderService creates an order service. A nil now uses time.Now.
func NewOrderService(orders repository.OrderRepository, dates *calendar.Normalizer, now func() time.Time) OrderService {
	if now == nil {
		now = time.Now
	}
	return &orderService{orders: orders, dates: dates, now: now}
}

func (s *orderService) Save(ctx context.Context, order model.Order) error {
	order.User = strings.TrimSpace(order.User)
	order.Date = strings.TrimSpace(order.Date)
	if order.User == "" {
		return invalidf("user is required")
	}
	if !calendar.IsCanonical(order.Date) {
		return invalidf("date must be yyyy-MM-dd, got %q", order.Date)
	}

	rows, err := s.orders.List(ctx)
	if err != nil {
		return fmt.Errorf("list orders: %w", err)
	}

	rec := model.OrderRecord{
		Date:       order.Date,
		User:       order.User,
		Menu:       order.Menu,
		Time:       order.Time,
		GuestLabel: model.LabelForGuest(order.IsGuest),
		UpdatedAt:  formatTimestamp(s.now()),
	}

	for _, row := range rows {
		if row.User == order.User && s.dates.Normalize(row.Date) == order.Date {
			if err := s.orders.Update(ctx, row.ID, rec); err != nil {
				return fmt.Errorf("update order %d: %w", row.ID, err)
			}
			logger.Info("order saved", "module", "service", "action", "update", "resource", "order", "result", "ok", "date", order.Date, "user", order.User, "row_id", row.ID)
			return nil
		}
	}

	id, err := s.orders.Append(ctx, rec)
	if err != nil {
		return fmt.Errorf("append order: %w", err)
	}
	logger.Info("order saved", "module", "service", "action", "create", "resource", "order", "result", "ok", "date", order.Date, "user", order.User, "row_id", id)
	return nil
}

func (s *orderService) Today(ctx context.Context) ([]model.Order, error) {
	rows, err := s.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	today := s.dates.Today(s.now())
	latest, _ := resolveDuplicates(rows, func(row model.OrderRow) string {
		if s.dates.Normalize(row.Date) != today {
			return ""
		}
		return row.User
	})

	orders := make([]model.Order, 0, len(latest))
	for _, row := range latest {
		orders = append(orders, model.Order{
			Date:    today,
			User:    row.User,
			Menu:    row.Menu,
			Time:    row.Time,
			IsGuest: model.IsGuestLabel(row.GuestLabel),
		})
	}
	return orders, nil
}
