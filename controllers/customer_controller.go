package controllers

import (
	"net/http"

	"admin-service/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CustomerController struct {
	Repo repository.CustomerRepository
}

func NewCustomerController(repo repository.CustomerRepository) *CustomerController {
	return &CustomerController{Repo: repo}
}

func (cc *CustomerController) GetCustomers(c *gin.Context) {
	customers, err := cc.Repo.FindAllSorted(c.Request.Context())
	if err != nil {
		zap.L().Error("Error finding customers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
		return
	}
	c.JSON(http.StatusOK, customers)
}
