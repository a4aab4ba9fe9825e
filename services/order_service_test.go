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
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newOrderService(orders *mockOrderRepo, customers *mockCustomerRepo) *services.OrderService {
	logger, _ := zap.NewDevelopment()
	return services.NewOrderService(orders, customers, logger)
}

func TestListOrders_JoinsCustomerNames(t *testing.T) {
	orderID := primitive.NewObjectID()
	orders := &mockOrderRepo{
		all: []models.Order{
			{
				ID:                 orderID,
				CustomerExternalID: "user_2abc",
				Products:           []models.OrderItem{{Product: "p1"}, {Product: "p2"}},
				TotalAmount:        25.98,
				CreatedAt:          time.Date(2025, time.July, 2, 15, 4, 0, 0, time.UTC),
			},
			{
				ID:                 primitive.NewObjectID(),
				CustomerExternalID: "user_missing",
				TotalAmount:        9.50,
				CreatedAt:          time.Date(2025, time.March, 21, 9, 30, 0, 0, time.UTC),
			},
		},
	}
	customers := &mockCustomerRepo{byExternalID: map[string]*models.Customer{
		"user_2abc": {ExternalID: "user_2abc", Name: "Ada Lovelace"},
	}}
	svc := newOrderService(orders, customers)

	summaries, serviceErr := svc.ListOrders(context.Background())

	assert.Nil(t, serviceErr)
	assert.Len(t, summaries, 2)

	assert.Equal(t, orderID, summaries[0].ID)
	assert.Equal(t, "Ada Lovelace", summaries[0].Customer)
	assert.Equal(t, 2, summaries[0].Products)
	assert.Equal(t, 25.98, summaries[0].TotalAmount)
	assert.Equal(t, "Jul 2nd, 2025 at 3:04 PM", summaries[0].CreatedAt)

	assert.Equal(t, "Unknown", summaries[1].Customer)
	assert.Equal(t, "Mar 21st, 2025 at 9:30 AM", summaries[1].CreatedAt)
}

func TestListOrders_RepoError(t *testing.T) {
	orders := &mockOrderRepo{allErr: errors.New("mongo: cursor error")}
	svc := newOrderService(orders, &mockCustomerRepo{})

	summaries, serviceErr := svc.ListOrders(context.Background())

	assert.Nil(t, summaries)
	assert.Equal(t, http.StatusInternalServerError, serviceErr.StatusCode)
}

func TestGetOrderDetails(t *testing.T) {
	orderID := primitive.NewObjectID()
	order := &models.Order{ID: orderID, CustomerExternalID: "user_2abc", TotalAmount: 25.98}
	orders := &mockOrderRepo{byID: map[primitive.ObjectID]*models.Order{orderID: order}}
	customers := &mockCustomerRepo{byExternalID: map[string]*models.Customer{
		"user_2abc": {ExternalID: "user_2abc", Name: "Ada Lovelace"},
	}}
	svc := newOrderService(orders, customers)

	details, serviceErr := svc.GetOrderDetails(context.Background(), orderID)

	assert.Nil(t, serviceErr)
	assert.Equal(t, order, details.OrderDetails)
	assert.Equal(t, "Ada Lovelace", details.Customer.Name)
}

func TestGetOrderDetails_UnknownCustomer(t *testing.T) {
	orderID := primitive.NewObjectID()
	order := &models.Order{ID: orderID, CustomerExternalID: "user_gone"}
	orders := &mockOrderRepo{byID: map[primitive.ObjectID]*models.Order{orderID: order}}
	svc := newOrderService(orders, &mockCustomerRepo{byExternalID: map[string]*models.Customer{}})

	details, serviceErr := svc.GetOrderDetails(context.Background(), orderID)

	assert.Nil(t, serviceErr)
	assert.Equal(t, "Unknown", details.Customer.Name)
	assert.Equal(t, "user_gone", details.Customer.ExternalID)
}
