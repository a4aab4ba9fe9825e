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

type CollectionController struct {
	Repo repository.CollectionRepository
}

func NewCollectionController(repo repository.CollectionRepository) *CollectionController {
	return &CollectionController{Repo: repo}
}

type collectionPayload struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image" binding:"required"`
}

func (cc *CollectionController) GetCollections(c *gin.Context) {
	collections, err := cc.Repo.FindAllSorted(c.Request.Context())
	if err != nil {
		zap.L().Error("Error finding collections", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch collections"})
		return
	}
	c.JSON(http.StatusOK, collections)
}

func (cc *CollectionController) GetCollectionByID(c *gin.Context) {
	id := c.Param("id")
	collectionID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid collection id"})
		return
	}

	collection, err := cc.Repo.FindByID(c.Request.Context(), collectionID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Collection not found"})
		} else {
			zap.L().Error("Database error", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		}
		return
	}
	c.JSON(http.StatusOK, collection)
}

func (cc *CollectionController) CreateCollection(c *gin.Context) {
	var payload collectionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	collection := models.Collection{
		Title:       payload.Title,
		Description: payload.Description,
		Image:       payload.Image,
	}

	if err := cc.Repo.Create(c.Request.Context(), &collection); err != nil {
		zap.L().Error("Error creating collection", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create collection"})
		return
	}
	c.JSON(http.StatusOK, collection)
}

func (cc *CollectionController) UpdateCollection(c *gin.Context) {
	id := c.Param("id")
	collectionID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid collection id"})
		return
	}

	var payload collectionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := bson.M{
		"title":       payload.Title,
		"description": payload.Description,
		"image":       payload.Image,
	}

	if err := cc.Repo.Update(c.Request.Context(), collectionID, updates); err != nil {
		zap.L().Error("Error updating collection", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update collection"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (cc *CollectionController) DeleteCollection(c *gin.Context) {
	id := c.Param("id")
	collectionID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid collection id"})
		return
	}

	if err := cc.Repo.Delete(c.Request.Context(), collectionID); err != nil {
		zap.L().Error("Error deleting collection", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete collection"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
