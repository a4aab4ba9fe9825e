package services

import (
	"context"
	"net/http"
	"time"

	"admin-service/models"
	"admin-service/repository"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// MonthlySales is one bucket of the last-12-months revenue chart.
type MonthlySales struct {
	Month string  `json:"month"` // e.g. "Jan 2026"
	Sales float64 `json:"sales"`
}

type DashboardMetrics struct {
	TotalRevenue   float64        `json:"totalRevenue"`
	TotalOrders    int            `json:"totalOrders"`
	TotalCustomers int64          `json:"totalCustomers"`
	SalesPerMonth  []MonthlySales `json:"salesPerMonth"`
}

type DashboardService struct {
	orders    repository.OrderRepository
	customers repository.CustomerRepository
	logger    *zap.Logger
}

func NewDashboardService(orders repository.OrderRepository, customers repository.CustomerRepository, logger *zap.Logger) *DashboardService {
	return &DashboardService{orders: orders, customers: customers, logger: logger}
}

// GetMetrics aggregates revenue, order and customer counts, and the monthly
// sales chart. Orders and the customer count are fetched concurrently.
func (s *DashboardService) GetMetrics(ctx context.Context) (*DashboardMetrics, *ServiceError) {
	var (
		orders         []models.Order
		totalCustomers int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = s.orders.FindAllSorted(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		totalCustomers, err = s.customers.Count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("Failed to aggregate dashboard metrics", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Internal Server Error"}
	}

	totalRevenue := 0.0
	for _, order := range orders {
		totalRevenue += order.TotalAmount
	}

	return &DashboardMetrics{
		TotalRevenue:   totalRevenue,
		TotalOrders:    len(orders),
		TotalCustomers: totalCustomers,
		SalesPerMonth:  salesPerMonth(orders, time.Now().UTC()),
	}, nil
}

// salesPerMonth buckets order totals into the twelve months ending at now,
// oldest bucket first. Months without sales appear with zero.
func salesPerMonth(orders []models.Order, now time.Time) []MonthlySales {
	type monthKey struct {
		year  int
		month time.Month
	}

	totals := make(map[monthKey]float64, len(orders))
	for _, order := range orders {
		created := order.CreatedAt.UTC()
		totals[monthKey{created.Year(), created.Month()}] += order.TotalAmount
	}

	buckets := make([]MonthlySales, 0, 12)
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -11, 0)
	for i := 0; i < 12; i++ {
		month := start.AddDate(0, i, 0)
		buckets = append(buckets, MonthlySales{
			Month: month.Format("Jan 2006"),
			Sales: totals[monthKey{month.Year(), month.Month()}],
		})
	}
	return buckets
}
