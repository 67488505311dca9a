package service

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"
	"time"

	"golang.org/x/sync/errgroup"

	"lunchbox/backend/internal/calendar"
	"lunchbox/backend/internal/logger"
	"lunchbox/backend/internal/model"
	"lunchbox/backend/internal/repository"
)

//go:generate mockgen -source=maintenance_service.go -destination=mock/mock_maintenance_service.go -package=mock

// MaintenanceService holds the out-of-band utilities: duplicate cleanup and
// the same-day summary. Neither is reachable over HTTP.
type MaintenanceService interface {
	// Cleanup deletes every non-authoritative row of each (date, user) key
	// and returns the number of deleted rows. Rows missing a date or a user
	// are left alone, as the today view ignores them too.
	Cleanup(ctx context.Context) (int64, error)
	// Stats summarizes today's orders.
	Stats(ctx context.Context) (Summary, error)
}

// MenuCount is one line of the menu frequency table.
type MenuCount struct {
	Menu  string
	Count int
}

// Summary is the same-day statistics report.
type Summary struct {
	Date      string
	Total     int
	Guests    int
	Employees int
	Menus     []MenuCount
	// Pending lists configured employees without an order today.
	Pending []string
}

type maintenanceService struct {
	orders   repository.OrderRepository
	today    OrderService
	settings SettingsService
	dates    *calendar.Normalizer
	now      func() time.Time
}

// NewMaintenanceService creates the maintenance utilities. A nil now uses time.Now.
func NewMaintenanceService(orders repository.OrderRepository, today OrderService, settings SettingsService, dates *calendar.Normalizer, now func() time.Time) MaintenanceService {
	if now == nil {
		now = time.Now
	}
	return &maintenanceService{orders: orders, today: today, settings: settings, dates: dates, now: now}
}

func (s *maintenanceService) Cleanup(ctx context.Context) (int64, error) {
	rows, err := s.orders.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list orders: %w", err)
	}

	_, stale := resolveDuplicates(rows, func(row model.OrderRow) string {
		date := s.dates.Normalize(row.Date)
		if date == "" || row.User == "" {
			return ""
		}
		return date + "|" + row.User
	})
	if len(stale) == 0 {
		logger.Info("cleanup finished", "module", "service", "action", "delete", "resource", "order", "result", "ok", "deleted", 0)
		return 0, nil
	}

	deleted, err := s.orders.DeleteRows(ctx, stale)
	if err != nil {
		return 0, fmt.Errorf("delete duplicate orders: %w", err)
	}
	logger.Info("cleanup finished", "module", "service", "action", "delete", "resource", "order", "result", "ok", "deleted", deleted)
	return deleted, nil
}

func (s *maintenanceService) Stats(ctx context.Context) (Summary, error) {
	var (
		orders   []model.Order
		settings *model.Settings
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = s.today.Today(gctx)
		return err
	})
	// Settings only feed Pending; a load failure leaves it nil.
	g.Go(func() error {
		loaded, err := s.settings.Get(gctx)
		if err != nil {
			logger.Warn("settings unavailable, pending list skipped", "module", "service", "action", "stats", "resource", "settings", "result", "failed", "error", err)
			return nil
		}
		settings = loaded
		return nil
	})
	if err := g.Wait(); err != nil {
		return Summary{}, fmt.Errorf("load stats: %w", err)
	}

	summary := Summary{Date: s.dates.Today(s.now()), Total: len(orders)}
	if len(orders) > 0 {
		// Same day the orders were filtered on.
		summary.Date = orders[0].Date
	}
	ordered := make(map[string]bool, len(orders))
	index := make(map[string]int)
	for _, order := range orders {
		ordered[order.User] = true
		if order.IsGuest {
			summary.Guests++
		} else {
			summary.Employees++
		}
		if i, ok := index[order.Menu]; ok {
			summary.Menus[i].Count++
			continue
		}
		index[order.Menu] = len(summary.Menus)
		summary.Menus = append(summary.Menus, MenuCount{Menu: order.Menu, Count: 1})
	}
	slices.SortStableFunc(summary.Menus, func(a, b MenuCount) int {
		return cmp.Compare(b.Count, a.Count)
	})

	if settings != nil && settings.Employees != nil {
		for _, name := range *settings.Employees {
			if !ordered[name] {
				summary.Pending = append(summary.Pending, name)
			}
		}
	}
	return summary, nil
}

// Format renders the summary as a plain text report.
func (s Summary) Format(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Orders for %s\n", s.Date)
	fmt.Fprintf(tw, "Total\t%d\n", s.Total)
	fmt.Fprintf(tw, "Employees\t%d\n", s.Employees)
	fmt.Fprintf(tw, "Guests\t%d\n", s.Guests)
	if len(s.Menus) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "Menu\tCount")
		for _, m := range s.Menus {
			fmt.Fprintf(tw, "%s\t%d\n", m.Menu, m.Count)
		}
	}
	if len(s.Pending) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintf(tw, "Not ordered yet\t%d\n", len(s.Pending))
		for _, name := range s.Pending {
			fmt.Fprintf(tw, "  %s\t\n", name)
		}
	}
	return tw.Flush()
}
