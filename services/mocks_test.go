package services_test

import (
	"context"

	"admin-service/models"

	"github.com/stripe/stripe-go/v80"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ---- mock Stripe client ----

type mockStripeAPI struct {
	createFn    func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	getFn       func(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	constructFn func(payload []byte, sigHeader string) (stripe.Event, error)

	createCalls      int
	getCalls         int
	lastCreateParams *stripe.CheckoutSessionParams
	lastGetID        string
}

func (m *mockStripeAPI) CreateCheckoutSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	m.createCalls++
	m.lastCreateParams = params
	return m.createFn(params)
}

func (m *mockStripeAPI) GetCheckoutSession(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	m.getCalls++
	m.lastGetID = id
	return m.getFn(id, params)
}

func (m *mockStripeAPI) ConstructEvent(payload []byte, sigHeader string) (stripe.Event, error) {
	return m.constructFn(payload, sigHeader)
}

// ---- mock repositories ----

type mockOrderRepo struct {
	created   []*models.Order
	createErr error
	byID      map[primitive.ObjectID]*models.Order
	findErr   error
	all       []models.Order
	allErr    error
}

func (m *mockOrderRepo) Create(_ context.Context, order *models.Order) (primitive.ObjectID, error) {
	if m.createErr != nil {
		return primitive.NilObjectID, m.createErr
	}
	id := primitive.NewObjectID()
	order.ID = id
	m.created = append(m.created, order)
	return id, nil
}

func (m *mockOrderRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Order, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.byID[id], nil
}

func (m *mockOrderRepo) FindAllSorted(_ context.Context) ([]models.Order, error) {
	return m.all, m.allErr
}

type addOrderCall struct {
	customerID primitive.ObjectID
	orderID    primitive.ObjectID
}

type mockCustomerRepo struct {
	byExternalID map[string]*models.Customer
	findErr      error
	created      []*models.Customer
	createErr    error
	addCalls     []addOrderCall
	addErr       error
	all          []models.Customer
	allErr       error
	count        int64
	countErr     error
}

func (m *mockCustomerRepo) FindByExternalID(_ context.Context, externalID string) (*models.Customer, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.byExternalID[externalID], nil
}

func (m *mockCustomerRepo) Create(_ context.Context, customer *models.Customer) error {
	if m.createErr != nil {
		return m.createErr
	}
	customer.ID = primitive.NewObjectID()
	m.created = append(m.created, customer)
	return nil
}

func (m *mockCustomerRepo) AddOrder(_ context.Context, customerID, orderID primitive.ObjectID) error {
	if m.addErr != nil {
		return m.addErr
	}
	m.addCalls = append(m.addCalls, addOrderCall{customerID: customerID, orderID: orderID})
	return nil
}

func (m *mockCustomerRepo) FindAllSorted(_ context.Context) ([]models.Customer, error) {
	return m.all, m.allErr
}

func (m *mockCustomerRepo) Count(_ context.Context) (int64, error) {
	return m.count, m.countErr
}

// ---- mock producer ----

type mockProducer struct {
	events  []models.OrderEvent
	sendErr error
}

func (m *mockProducer) SendOrderEvent(event models.OrderEvent) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.events = append(m.events, event)
	return nil
}
