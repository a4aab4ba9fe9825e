package models

// CartProduct is the slice of a product the storefront sends along with a
// checkout request. Prices are in major currency units.
type CartProduct struct {
	ID    string  `json:"_id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
}

// CartItem exists only for the duration of a single checkout request.
type CartItem struct {
	Item     CartProduct `json:"item"`
	Quantity int64       `json:"quantity"`
	Size     string      `json:"size,omitempty"`
	Color    string      `json:"color,omitempty"`
}

type CheckoutCustomer struct {
	ExternalID string `json:"externalId"`
}

type CheckoutRequest struct {
	CartItems []CartItem       `json:"cartItems"`
	Customer  CheckoutCustomer `json:"customer"`
}
