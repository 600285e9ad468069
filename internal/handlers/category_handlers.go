package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cashflowhq/cashflow-commander/internal/database"
	"github.com/cashflowhq/cashflow-commander/models"
)

func ListCategoriesHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)
		if userID == 0 {
			c.JSON(http.StatusOK, []models.Category{})
			return
		}

		ctype := c.Query("type")
		if ctype != "" && !models.ValidTransactionType(ctype) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "type must be income or expense"})
			return
		}

		categories, err := database.GetCategoriesByUser(pool, userID, ctype)
		if err != nil {
			log.Printf("listing categories: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

func InitializeDefaultCategoriesHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := database.InitializeDefaultCategories(pool, currentUserID(c)); err != nil {
			log.Printf("initializing default categories: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not initialize categories"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "categories initialized"})
	}
}

type createCategoryRequest struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Type  string `json:"type"`
}

func CreateCategoryHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		if req.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}
		if !models.ValidTransactionType(req.Type) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "type must be income or expense"})
			return
		}

		category := &models.Category{
			UserID: currentUserID(c),
			Name:   req.Name,
			Icon:   req.Icon,
			Color:  req.Color,
			Type:   req.Type,
		}
		if err := database.CreateCategory(pool, category); err != nil {
			log.Printf("creating category: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create category"})
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}
