package services_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"admin-service/models"
	"admin-service/services"

	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v80"
	"go.uber.org/zap"
)

func newCheckoutService(api *mockStripeAPI) *services.CheckoutService {
	logger, _ := zap.NewDevelopment()
	return services.NewCheckoutService(api, "https://store.example.com", "php", []string{"shr_standard", "shr_express"}, logger)
}

func twoItemCart() *models.CheckoutRequest {
	return &models.CheckoutRequest{
		CartItems: []models.CartItem{
			{
				Item:     models.CartProduct{ID: "665f1a0c2ab79c0012345678", Title: "Linen Shirt", Price: 19.99},
				Quantity: 2,
				Size:     "M",
				Color:    "White",
			},
			{
				Item:     models.CartProduct{ID: "665f1a0c2ab79c0087654321", Title: "Canvas Tote", Price: 5.555},
				Quantity: 1,
			},
		},
		Customer: models.CheckoutCustomer{ExternalID: "user_2abc"},
	}
}

func TestCreateSession_BuildsLineItemsFromCart(t *testing.T) {
	api := &mockStripeAPI{
		createFn: func(_ *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
			return &stripe.CheckoutSession{ID: "cs_test_1", URL: "https://checkout.stripe.com/pay/cs_test_1"}, nil
		},
	}
	svc := newCheckoutService(api)

	sess, serviceErr := svc.CreateSession(context.Background(), twoItemCart())

	assert.Nil(t, serviceErr)
	assert.Equal(t, "cs_test_1", sess.ID)
	assert.Equal(t, 1, api.createCalls)

	params := api.lastCreateParams
	assert.Len(t, params.LineItems, 2)

	first := params.LineItems[0]
	assert.Equal(t, int64(1999), *first.PriceData.UnitAmount)
	assert.Equal(t, int64(2), *first.Quantity)
	assert.Equal(t, "Linen Shirt", *first.PriceData.ProductData.Name)
	assert.Equal(t, "php", *first.PriceData.Currency)
	assert.Equal(t, "665f1a0c2ab79c0012345678", first.PriceData.ProductData.Metadata["productId"])
	assert.Equal(t, "M", first.PriceData.ProductData.Metadata["size"])
	assert.Equal(t, "White", first.PriceData.ProductData.Metadata["color"])

	// 5.555 * 100 rounds half away from zero.
	second := params.LineItems[1]
	assert.Equal(t, int64(556), *second.PriceData.UnitAmount)
	_, hasSize := second.PriceData.ProductData.Metadata["size"]
	_, hasColor := second.PriceData.ProductData.Metadata["color"]
	assert.False(t, hasSize)
	assert.False(t, hasColor)

	assert.Equal(t, "payment", *params.Mode)
	assert.Equal(t, []string{"card"}, stripeStrings(params.PaymentMethodTypes))
	assert.Equal(t, "user_2abc", *params.ClientReferenceID)
	assert.Equal(t, "https://store.example.com/payment_success", *params.SuccessURL)
	assert.Equal(t, "https://store.example.com/cart", *params.CancelURL)
	assert.Len(t, params.ShippingOptions, 2)
	assert.Equal(t, "shr_standard", *params.ShippingOptions[0].ShippingRate)
	assert.Len(t, params.ShippingAddressCollection.AllowedCountries, 11)
}

func TestCreateSession_EmptyCart(t *testing.T) {
	api := &mockStripeAPI{}
	svc := newCheckoutService(api)

	req := &models.CheckoutRequest{Customer: models.CheckoutCustomer{ExternalID: "user_2abc"}}
	sess, serviceErr := svc.CreateSession(context.Background(), req)

	assert.Nil(t, sess)
	assert.Equal(t, http.StatusBadRequest, serviceErr.StatusCode)
	assert.Equal(t, "Not enough data to checkout", serviceErr.Message)
	assert.Equal(t, 0, api.createCalls)
}

func TestCreateSession_MissingCustomerIdentity(t *testing.T) {
	api := &mockStripeAPI{}
	svc := newCheckoutService(api)

	req := twoItemCart()
	req.Customer.ExternalID = ""
	sess, serviceErr := svc.CreateSession(context.Background(), req)

	assert.Nil(t, sess)
	assert.Equal(t, http.StatusBadRequest, serviceErr.StatusCode)
	assert.Equal(t, 0, api.createCalls)
}

func TestCreateSession_ProviderError(t *testing.T) {
	api := &mockStripeAPI{
		createFn: func(_ *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
			return nil, errors.New("stripe: connection reset")
		},
	}
	svc := newCheckoutService(api)

	sess, serviceErr := svc.CreateSession(context.Background(), twoItemCart())

	assert.Nil(t, sess)
	assert.Equal(t, http.StatusInternalServerError, serviceErr.StatusCode)
	assert.Equal(t, "Internal Server Error", serviceErr.Message)
	// Single attempt, no retry.
	assert.Equal(t, 1, api.createCalls)
}

func stripeStrings(ptrs []*string) []string {
	out := make([]string, 0, len(ptrs))
	for _, p := range ptrs {
		out = append(out, *p)
	}
	return out
}
