package services_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"admin-service/models"
	"admin-service/services"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newDashboardService(orders *mockOrderRepo, customers *mockCustomerRepo) *services.DashboardService {
	logger, _ := zap.NewDevelopment()
	return services.NewDashboardService(orders, customers, logger)
}

func TestGetMetrics_Totals(t *testing.T) {
	now := time.Now().UTC()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 12, 0, 0, 0, time.UTC)
	endOfPrevMonth := firstOfMonth.AddDate(0, 0, -1)
	orders := &mockOrderRepo{
		all: []models.Order{
			{TotalAmount: 25.98, CreatedAt: firstOfMonth},
			{TotalAmount: 10.02, CreatedAt: firstOfMonth},
			{TotalAmount: 5.00, CreatedAt: endOfPrevMonth},
		},
	}
	customers := &mockCustomerRepo{count: 2}
	svc := newDashboardService(orders, customers)

	metrics, serviceErr := svc.GetMetrics(context.Background())

	assert.Nil(t, serviceErr)
	assert.Equal(t, 41.0, metrics.TotalRevenue)
	assert.Equal(t, 3, metrics.TotalOrders)
	assert.Equal(t, int64(2), metrics.TotalCustomers)

	assert.Len(t, metrics.SalesPerMonth, 12)
	last := metrics.SalesPerMonth[11]
	assert.Equal(t, now.Format("Jan 2006"), last.Month)
	assert.Equal(t, 36.0, last.Sales)

	previous := metrics.SalesPerMonth[10]
	assert.Equal(t, 5.0, previous.Sales)
}

func TestGetMetrics_OldOrdersOutsideWindow(t *testing.T) {
	now := time.Now().UTC()
	orders := &mockOrderRepo{
		all: []models.Order{
			{TotalAmount: 100.0, CreatedAt: now.AddDate(-2, 0, 0)},
		},
	}
	svc := newDashboardService(orders, &mockCustomerRepo{})

	metrics, serviceErr := svc.GetMetrics(context.Background())

	assert.Nil(t, serviceErr)
	// Revenue counts all orders; the chart only covers the last 12 months.
	assert.Equal(t, 100.0, metrics.TotalRevenue)
	for _, bucket := range metrics.SalesPerMonth {
		assert.Equal(t, 0.0, bucket.Sales)
	}
}

func TestGetMetrics_RepoError(t *testing.T) {
	orders := &mockOrderRepo{allErr: errors.New("mongo: network error")}
	svc := newDashboardService(orders, &mockCustomerRepo{})

	metrics, serviceErr := svc.GetMetrics(context.Background())

	assert.Nil(t, metrics)
	assert.Equal(t, http.StatusInternalServerError, serviceErr.StatusCode)
}
