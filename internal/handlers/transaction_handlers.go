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
)

func ListTransactionsHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)
		if userID == 0 {
			c.JSON(http.StatusOK, []models.TransactionWithAccount{})
			return
		}

		limit, _ := strconv.Atoi(c.Query("limit"))
		accountID, _ := strconv.Atoi(c.Query("account_id"))

		transactions, err := database.GetTransactionsByUser(pool, userID, limit, accountID)
		if err != nil {
			log.Printf("listing transactions: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list transactions"})
			return
		}
		c.JSON(http.StatusOK, transactions)
	}
}

type createTransactionRequest struct {
	AccountID   int      `json:"account_id"`
	Type        string   `json:"type"`
	Amount      float64  `json:"amount"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Date        int64    `json:"date"`
	Tags        []string `json:"tags"`
}

func CreateTransactionHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createTransactionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		if !models.ValidTransactionType(req.Type) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "type must be income or expense"})
			return
		}
		if req.Amount <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be positive"})
			return
		}
		if req.Category == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "category is required"})
			return
		}

		tx := &models.Transaction{
			UserID:      currentUserID(c),
			AccountID:   req.AccountID,
			Type:        req.Type,
			Amount:      req.Amount,
			Category:    req.Category,
			Description: req.Description,
			Date:        req.Date,
			Tags:        req.Tags,
		}
		if err := database.CreateTransaction(pool, tx); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
				return
			}
			log.Printf("creating transaction: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create transaction"})
			return
		}
		c.JSON(http.StatusCreated, tx)
	}
}

// MonthlyStatsHandler sums income and expenses over a calendar month.
// month is 0-based (January = 0) to match the client.
func MonthlyStatsHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)
		if userID == 0 {
			c.JSON(http.StatusOK, models.MonthlyStats{Transactions: []models.Transaction{}})
			return
		}

		now := time.Now()
		month := int(now.Month()) - 1
		year := now.Year()
		if m := c.Query("month"); m != "" {
			parsed, err := strconv.Atoi(m)
			if err != nil || parsed < 0 || parsed > 11 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "month must be between 0 and 11"})
				return
			}
			month = parsed
		}
		if y := c.Query("year"); y != "" {
			parsed, err := strconv.Atoi(y)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
				return
			}
			year = parsed
		}

		stats, err := database.GetMonthlyStats(pool, userID, month, year)
		if err != nil {
			log.Printf("monthly stats: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not compute monthly stats"})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

func CategoryBreakdownHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)
		if userID == 0 {
			c.JSON(http.StatusOK, []models.CategoryTotal{})
			return
		}

		txType := c.Query("type")
		if !models.ValidTransactionType(txType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "type must be income or expense"})
			return
		}

		days, _ := strconv.Atoi(c.Query("days"))

		totals, err := database.GetCategoryBreakdown(pool, userID, txType, days)
		if err != nil {
			log.Printf("category breakdown: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not compute breakdown"})
			return
		}
		c.JSON(http.StatusOK, totals)
	}
}
