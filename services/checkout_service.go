package services

import (
	"context"
	"math"
	"net/http"

	"admin-service/models"

	"github.com/stripe/stripe-go/v80"
	"go.uber.org/zap"
)

// Countries the storefront ships to. The provider rejects sessions whose
// collected address falls outside this list.
var allowedShippingCountries = []string{
	"US", "CA", "PH", "JP", "SG", "GB", "AU", "DE", "FR", "IT", "ES",
}

// CheckoutService turns a storefront cart into a provider-hosted payment
// session. Nothing is persisted locally; the session lives in the provider's
// system until the completion webhook arrives.
type CheckoutService struct {
	stripe        StripeAPI
	storeURL      string
	currency      string
	shippingRates []string
	logger        *zap.Logger
}

func NewCheckoutService(stripeAPI StripeAPI, storeURL, currency string, shippingRates []string, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{
		stripe:        stripeAPI,
		storeURL:      storeURL,
		currency:      currency,
		shippingRates: shippingRates,
		logger:        logger,
	}
}

// CreateSession validates the cart and creates the checkout session. A single
// attempt is made; on provider failure the caller must resubmit.
func (s *CheckoutService) CreateSession(ctx context.Context, req *models.CheckoutRequest) (*stripe.CheckoutSession, *ServiceError) {
	if len(req.CartItems) == 0 || req.Customer.ExternalID == "" {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Not enough data to checkout"}
	}

	params := s.buildSessionParams(req)
	params.Context = ctx

	sess, err := s.stripe.CreateCheckoutSession(params)
	if err != nil {
		s.logger.Error("Failed to create checkout session",
			zap.String("customer_external_id", req.Customer.ExternalID),
			zap.Error(err),
		)
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Internal Server Error"}
	}

	s.logger.Info("Checkout session created",
		zap.String("session_id", sess.ID),
		zap.String("customer_external_id", req.Customer.ExternalID),
		zap.Int("line_items", len(req.CartItems)),
	)
	return sess, nil
}

func (s *CheckoutService) buildSessionParams(req *models.CheckoutRequest) *stripe.CheckoutSessionParams {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(req.CartItems))
	for _, cartItem := range req.CartItems {
		metadata := map[string]string{"productId": cartItem.Item.ID}
		if cartItem.Size != "" {
			metadata["size"] = cartItem.Size
		}
		if cartItem.Color != "" {
			metadata["color"] = cartItem.Color
		}

		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(s.currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:     stripe.String(cartItem.Item.Title),
					Metadata: metadata,
				},
				// Provider amounts are in minor currency units.
				UnitAmount: stripe.Int64(int64(math.Round(cartItem.Item.Price * 100))),
			},
			Quantity: stripe.Int64(cartItem.Quantity),
		})
	}

	shippingOptions := make([]*stripe.CheckoutSessionShippingOptionParams, 0, len(s.shippingRates))
	for _, rate := range s.shippingRates {
		shippingOptions = append(shippingOptions, &stripe.CheckoutSessionShippingOptionParams{
			ShippingRate: stripe.String(rate),
		})
	}

	return &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		ShippingAddressCollection: &stripe.CheckoutSessionShippingAddressCollectionParams{
			AllowedCountries: stripe.StringSlice(allowedShippingCountries),
		},
		ShippingOptions:   shippingOptions,
		LineItems:         lineItems,
		ClientReferenceID: stripe.String(req.Customer.ExternalID),
		SuccessURL:        stripe.String(s.storeURL + "/payment_success"),
		CancelURL:         stripe.String(s.storeURL + "/cart"),
	}
}
