package controllers

import (
	"net/http"

	"admin-service/models"
	"admin-service/services"

	"github.com/gin-gonic/gin"
)

// The storefront runs on a different origin, so checkout responses carry
// permissive CORS headers and the preflight is answered explicitly.
var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Methods": "GET, POST, PUT, DELETE, OPTIONS",
	"Access-Control-Allow-Headers": "Content-Type, Authorization",
}

type CheckoutController struct {
	Checkout *services.CheckoutService
}

func NewCheckoutController(checkout *services.CheckoutService) *CheckoutController {
	return &CheckoutController{Checkout: checkout}
}

func (cc *CheckoutController) Options(c *gin.Context) {
	setCORSHeaders(c)
	c.JSON(http.StatusOK, gin.H{})
}

// CreateSession handles POST /api/checkout and returns the provider session
// verbatim, including its hosted redirect URL.
func (cc *CheckoutController) CreateSession(c *gin.Context) {
	setCORSHeaders(c)

	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "Not enough data to checkout")
		return
	}

	sess, serviceErr := cc.Checkout.CreateSession(c.Request.Context(), &req)
	if serviceErr != nil {
		c.String(serviceErr.StatusCode, serviceErr.Message)
		return
	}

	c.JSON(http.StatusOK, sess)
}

func setCORSHeaders(c *gin.Context) {
	for key, value := range corsHeaders {
		c.Header(key, value)
	}
}
