package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"admin-service/models"
	"admin-service/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// OrderSummary is one row of the admin orders table: the order joined with
// its customer's display name.
type OrderSummary struct {
	ID          primitive.ObjectID `json:"_id"`
	Customer    string             `json:"customer"`
	Products    int                `json:"products"`
	TotalAmount float64            `json:"totalAmount"`
	CreatedAt   string             `json:"createdAt"`
}

// OrderDetails pairs an order with its customer record for the detail page.
type OrderDetails struct {
	OrderDetails *models.Order    `json:"orderDetails"`
	Customer     *models.Customer `json:"customer"`
}

type OrderService struct {
	orders    repository.OrderRepository
	customers repository.CustomerRepository
	logger    *zap.Logger
}

func NewOrderService(orders repository.OrderRepository, customers repository.CustomerRepository, logger *zap.Logger) *OrderService {
	return &OrderService{orders: orders, customers: customers, logger: logger}
}

// ListOrders returns all orders newest first, each joined with the customer
// name. Orders whose customer record is missing show "Unknown".
func (s *OrderService) ListOrders(ctx context.Context) ([]OrderSummary, *ServiceError) {
	orders, err := s.orders.FindAllSorted(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch orders", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Internal Server Error"}
	}

	summaries := make([]OrderSummary, 0, len(orders))
	for _, order := range orders {
		name := "Unknown"
		customer, err := s.customers.FindByExternalID(ctx, order.CustomerExternalID)
		if err != nil {
			s.logger.Warn("Failed to look up customer for order",
				zap.String("order_id", order.ID.Hex()),
				zap.Error(err),
			)
		} else if customer != nil && customer.Name != "" {
			name = customer.Name
		}

		summaries = append(summaries, OrderSummary{
			ID:          order.ID,
			Customer:    name,
			Products:    len(order.Products),
			TotalAmount: order.TotalAmount,
			CreatedAt:   formatOrderDate(order.CreatedAt),
		})
	}
	return summaries, nil
}

func (s *OrderService) GetOrderDetails(ctx context.Context, id primitive.ObjectID) (*OrderDetails, *ServiceError) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "Order not found"}
	}

	customer, err := s.customers.FindByExternalID(ctx, order.CustomerExternalID)
	if err != nil {
		s.logger.Error("Failed to look up customer for order",
			zap.String("order_id", order.ID.Hex()),
			zap.Error(err),
		)
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Internal Server Error"}
	}
	if customer == nil {
		customer = &models.Customer{ExternalID: order.CustomerExternalID, Name: "Unknown"}
	}

	return &OrderDetails{OrderDetails: order, Customer: customer}, nil
}

// formatOrderDate renders timestamps the way the dashboard displays them,
// e.g. "Jul 2nd, 2025 at 3:04 PM".
func formatOrderDate(t time.Time) string {
	return fmt.Sprintf("%s %s, %d at %s",
		t.Format("Jan"), ordinal(t.Day()), t.Year(), t.Format("3:04 PM"))
}

func ordinal(day int) string {
	suffix := "th"
	if day%100 < 11 || day%100 > 13 {
		switch day % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", day, suffix)
}
