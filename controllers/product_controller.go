package controllers

import (
	"net/http"

	"admin-service/models"
	"admin-service/repository"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type ProductController struct {
	Repo  repository.ProductRepository
	Cache *CacheManager
}

func NewProductController(repo repository.ProductRepository, cache *CacheManager) *ProductController {
	return &ProductController{Repo: repo, Cache: cache}
}

type productPayload struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Media       []string `json:"media"`
	Category    string   `json:"category"`
	Collections []string `json:"collections"`
	Tags        []string `json:"tags"`
	Sizes       []string `json:"sizes"`
	Colors      []string `json:"colors"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	Expense     float64  `json:"expense"`
}

// GetProducts lists all products, newest first, served from cache when warm.
func (pc *ProductController) GetProducts(c *gin.Context) {
	if products, ok := pc.Cache.GetProductList(c.Request.Context()); ok {
		c.JSON(http.StatusOK, products)
		return
	}

	products, err := pc.Repo.FindAllSorted(c.Request.Context())
	if err != nil {
		zap.L().Error("Error finding products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	pc.Cache.SetProductListAsync(products)
	c.JSON(http.StatusOK, products)
}

func (pc *ProductController) GetProductByID(c *gin.Context) {
	id := c.Param("id")
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		zap.L().Warn("Invalid product id", zap.String("id", id))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	if product, ok := pc.Cache.GetProduct(c.Request.Context(), id); ok {
		c.JSON(http.StatusOK, product)
		return
	}

	product, err := pc.Repo.FindByID(c.Request.Context(), productID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else {
			zap.L().Error("Database error", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		}
		return
	}

	pc.Cache.SetProductAsync(id, product)
	c.JSON(http.StatusOK, product)
}

func (pc *ProductController) CreateProduct(c *gin.Context) {
	var payload productPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	collections, err := parseObjectIDs(payload.Collections)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid collection id"})
		return
	}

	product := models.Product{
		Title:       payload.Title,
		Description: payload.Description,
		Media:       payload.Media,
		Category:    payload.Category,
		Collections: collections,
		Tags:        payload.Tags,
		Sizes:       payload.Sizes,
		Colors:      payload.Colors,
		Price:       payload.Price,
		Expense:     payload.Expense,
	}

	if err := pc.Repo.Create(c.Request.Context(), &product); err != nil {
		zap.L().Error("Error creating product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	pc.Cache.Invalidate(c.Request.Context(), "")
	c.JSON(http.StatusOK, product)
}

func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id := c.Param("id")
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	var payload productPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	collections, err := parseObjectIDs(payload.Collections)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid collection id"})
		return
	}

	updates := bson.M{
		"title":       payload.Title,
		"description": payload.Description,
		"media":       payload.Media,
		"category":    payload.Category,
		"collections": collections,
		"tags":        payload.Tags,
		"sizes":       payload.Sizes,
		"colors":      payload.Colors,
		"price":       payload.Price,
		"expense":     payload.Expense,
	}

	if err := pc.Repo.Update(c.Request.Context(), productID, updates); err != nil {
		zap.L().Error("Error updating product", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	pc.Cache.Invalidate(c.Request.Context(), id)
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id := c.Param("id")
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	if err := pc.Repo.Delete(c.Request.Context(), productID); err != nil {
		zap.L().Error("Error deleting product", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}

	pc.Cache.Invalidate(c.Request.Context(), id)
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func parseObjectIDs(hexIDs []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(hexIDs))
	for _, hexID := range hexIDs {
		id, err := primitive.ObjectIDFromHex(hexID)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
