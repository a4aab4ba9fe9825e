package services

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"admin-service/kafka"
	"admin-service/models"
	"admin-service/repository"

	"github.com/stripe/stripe-go/v80"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const checkoutCompletedEvent = "checkout.session.completed"

// WebhookService materializes orders from the provider's asynchronous
// payment-completion events. Order creation and customer upsert are two
// independent document writes with no cross-document transaction; if the
// customer write fails the order remains without a back-reference.
type WebhookService struct {
	stripe    StripeAPI
	orders    repository.OrderRepository
	customers repository.CustomerRepository
	producer  kafka.ProducerAPI
	logger    *zap.Logger
}

func NewWebhookService(stripeAPI StripeAPI, orders repository.OrderRepository, customers repository.CustomerRepository, producer kafka.ProducerAPI, logger *zap.Logger) *WebhookService {
	return &WebhookService{
		stripe:    stripeAPI,
		orders:    orders,
		customers: customers,
		producer:  producer,
		logger:    logger,
	}
}

// HandleEvent verifies and processes one inbound webhook call. It reports
// whether an order was created so the controller can pick the response body.
// Signature failures reject the whole request before any write happens.
func (s *WebhookService) HandleEvent(ctx context.Context, payload []byte, sigHeader string) (bool, *ServiceError) {
	event, err := s.stripe.ConstructEvent(payload, sigHeader)
	if err != nil {
		s.logger.Warn("Webhook signature verification failed", zap.Error(err))
		return false, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Webhook error"}
	}

	if event.Type != checkoutCompletedEvent {
		s.logger.Info("Ignoring webhook event",
			zap.String("event_type", string(event.Type)),
			zap.String("event_id", event.ID),
		)
		return false, nil
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		s.logger.Error("Failed to decode checkout session from event",
			zap.String("event_id", event.ID),
			zap.Error(err),
		)
		return false, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Webhook error"}
	}

	// The event payload may be truncated or stale; the freshly retrieved
	// session is the source of truth for line items and addresses.
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	params.AddExpand("line_items.data.price.product")

	fullSess, err := s.stripe.GetCheckoutSession(sess.ID, params)
	if err != nil {
		s.logger.Error("Failed to retrieve checkout session",
			zap.String("session_id", sess.ID),
			zap.Error(err),
		)
		return false, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Webhook error"}
	}

	order := OrderFromSession(fullSess)

	orderID, err := s.orders.Create(ctx, order)
	if err != nil {
		s.logger.Error("Failed to persist order",
			zap.String("session_id", fullSess.ID),
			zap.Error(err),
		)
		return false, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Webhook error"}
	}

	if serviceErr := s.upsertCustomer(ctx, fullSess, order, orderID); serviceErr != nil {
		return false, serviceErr
	}

	s.publishOrderCreated(order, orderID)

	s.logger.Info("Order created from checkout session",
		zap.String("order_id", orderID.Hex()),
		zap.String("session_id", fullSess.ID),
		zap.String("customer_external_id", order.CustomerExternalID),
		zap.Float64("total_amount", order.TotalAmount),
	)
	return true, nil
}

func (s *WebhookService) upsertCustomer(ctx context.Context, sess *stripe.CheckoutSession, order *models.Order, orderID primitive.ObjectID) *ServiceError {
	existing, err := s.customers.FindByExternalID(ctx, order.CustomerExternalID)
	if err != nil {
		s.logger.Error("Failed to look up customer",
			zap.String("customer_external_id", order.CustomerExternalID),
			zap.Error(err),
		)
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Webhook error"}
	}

	customer, created := LinkOrder(existing, CustomerInfoFromSession(sess), orderID)

	if created {
		err = s.customers.Create(ctx, customer)
	} else {
		err = s.customers.AddOrder(ctx, customer.ID, orderID)
	}
	if err != nil {
		s.logger.Error("Failed to upsert customer",
			zap.String("customer_external_id", order.CustomerExternalID),
			zap.Bool("created", created),
			zap.Error(err),
		)
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Webhook error"}
	}
	return nil
}

// publishOrderCreated emits the order event to Kafka. Logging only on
// failure, never failing the webhook.
func (s *WebhookService) publishOrderCreated(order *models.Order, orderID primitive.ObjectID) {
	if s.producer == nil {
		return
	}
	event := models.OrderEvent{
		Type:               "order.created",
		OrderID:            orderID.Hex(),
		CustomerExternalID: order.CustomerExternalID,
		TotalAmount:        order.TotalAmount,
		Timestamp:          time.Now().UTC(),
	}
	if err := s.producer.SendOrderEvent(event); err != nil {
		s.logger.Error("Failed to publish order event",
			zap.String("order_id", event.OrderID),
			zap.Error(err),
		)
	}
}

// CustomerInfo is the identity extracted from a checkout session.
type CustomerInfo struct {
	ExternalID string
	Name       string
	Email      string
}

// CustomerInfoFromSession pulls the paying customer's identity out of the
// session, defaulting missing fields to empty strings.
func CustomerInfoFromSession(sess *stripe.CheckoutSession) CustomerInfo {
	info := CustomerInfo{ExternalID: sess.ClientReferenceID}
	if sess.CustomerDetails != nil {
		info.Name = sess.CustomerDetails.Name
		info.Email = sess.CustomerDetails.Email
	}
	return info
}

// OrderFromSession maps a fully retrieved checkout session onto an order
// document. Missing address subfields default to empty strings and missing
// line-item metadata to "N/A" rather than failing.
func OrderFromSession(sess *stripe.CheckoutSession) *models.Order {
	var address models.ShippingAddress
	if sess.ShippingDetails != nil && sess.ShippingDetails.Address != nil {
		addr := sess.ShippingDetails.Address
		address = models.ShippingAddress{
			Street:     addr.Line1,
			City:       addr.City,
			State:      addr.State,
			PostalCode: addr.PostalCode,
			Country:    addr.Country,
		}
	}

	var items []models.OrderItem
	if sess.LineItems != nil {
		items = make([]models.OrderItem, 0, len(sess.LineItems.Data))
		for _, lineItem := range sess.LineItems.Data {
			item := models.OrderItem{
				Color:    "N/A",
				Size:     "N/A",
				Quantity: lineItem.Quantity,
			}
			if lineItem.Price != nil && lineItem.Price.Product != nil {
				metadata := lineItem.Price.Product.Metadata
				item.Product = metadata["productId"]
				if color := metadata["color"]; color != "" {
					item.Color = color
				}
				if size := metadata["size"]; size != "" {
					item.Size = size
				}
			}
			items = append(items, item)
		}
	}

	shippingRate := ""
	if sess.ShippingCost != nil && sess.ShippingCost.ShippingRate != nil {
		shippingRate = sess.ShippingCost.ShippingRate.ID
	}

	return &models.Order{
		CustomerExternalID: sess.ClientReferenceID,
		Products:           items,
		ShippingAddress:    address,
		ShippingRate:       shippingRate,
		TotalAmount:        float64(sess.AmountTotal) / 100,
		CreatedAt:          time.Now().UTC(),
	}
}

// LinkOrder decides create-vs-append for the customer record tied to a new
// order. External identity is the sole key; no tie-breaking is needed.
func LinkOrder(existing *models.Customer, info CustomerInfo, orderID primitive.ObjectID) (*models.Customer, bool) {
	if existing != nil {
		existing.Orders = append(existing.Orders, orderID)
		return existing, false
	}
	return &models.Customer{
		ExternalID: info.ExternalID,
		Name:       info.Name,
		Email:      info.Email,
		Orders:     []primitive.ObjectID{orderID},
	}, true
}
