package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cashflowhq/cashflow-commander/internal/database"
	"github.com/cashflowhq/cashflow-commander/models"
	"github.com/cashflowhq/cashflow-commander/utils"
)

func ListBudgetsHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)
		if userID == 0 {
			c.JSON(http.StatusOK, []models.BudgetSummary{})
			return
		}

		summaries, err := database.GetBudgetSummariesByUser(pool, userID)
		if err != nil {
			log.Printf("listing budgets: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list budgets"})
			return
		}
		c.JSON(http.StatusOK, summaries)
	}
}

type createBudgetRequest struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Period   string  `json:"period"`
}

func CreateBudgetHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createBudgetRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		if req.Category == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "category is required"})
			return
		}
		if req.Amount <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be positive"})
			return
		}
		if !models.ValidBudgetPeriod(req.Period) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "period must be weekly, monthly or yearly"})
			return
		}

		start, end := utils.PeriodBounds(req.Period, time.Now())
		budget := &models.Budget{
			UserID:    currentUserID(c),
			Category:  req.Category,
			Amount:    req.Amount,
			Period:    req.Period,
			StartDate: start,
			EndDate:   end,
		}
		if err := database.CreateBudget(pool, budget); err != nil {
			log.Printf("creating budget: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create budget"})
			return
		}
		c.JSON(http.StatusCreated, budget)
	}
}

type updateBudgetRequest struct {
	Amount   *float64 `json:"amount"`
	IsActive *bool    `json:"is_active"`
}

func UpdateBudgetHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid budget id"})
			return
		}

		var req updateBudgetRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if req.Amount != nil && *req.Amount <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be positive"})
			return
		}

		budget, err := database.UpdateBudget(pool, currentUserID(c), id, req.Amount, req.IsActive)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "budget not found"})
				return
			}
			log.Printf("updating budget: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update budget"})
			return
		}
		c.JSON(http.StatusOK, budget)
	}
}
