package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cashflowhq/cashflow-commander/internal/database"
	"github.com/cashflowhq/cashflow-commander/models"
)

func ListAccountsHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)
		if userID == 0 {
			c.JSON(http.StatusOK, []models.Account{})
			return
		}

		accounts, err := database.GetActiveAccountsByUser(pool, userID)
		if err != nil {
			log.Printf("listing accounts: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list accounts"})
			return
		}
		c.JSON(http.StatusOK, accounts)
	}
}

type createAccountRequest struct {
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Currency string  `json:"currency"`
	Balance  float64 `json:"balance"`
	Color    string  `json:"color"`
}

func CreateAccountHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createAccountRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		if req.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}
		if !models.ValidAccountType(req.Type) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "type must be checking, savings, credit or investment"})
			return
		}
		if req.Currency == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "currency is required"})
			return
		}

		account := &models.Account{
			UserID:   currentUserID(c),
			Name:     req.Name,
			Type:     req.Type,
			Currency: req.Currency,
			Balance:  req.Balance,
			Color:    req.Color,
		}
		if err := database.CreateAccount(pool, account); err != nil {
			log.Printf("creating account: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create account"})
			return
		}
		c.JSON(http.StatusCreated, account)
	}
}

type updateAccountRequest struct {
	Name    *string  `json:"name"`
	Balance *float64 `json:"balance"`
	Color   *string  `json:"color"`
}

func UpdateAccountHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid account id"})
			return
		}

		var req updateAccountRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		account, err := database.UpdateAccount(pool, currentUserID(c), id, req.Name, req.Balance, req.Color)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
				return
			}
			log.Printf("updating account: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update account"})
			return
		}
		c.JSON(http.StatusOK, account)
	}
}

func TotalBalanceHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)
		if userID == 0 {
			c.JSON(http.StatusOK, gin.H{"total": 0})
			return
		}

		total, err := database.GetTotalBalance(pool, userID)
		if err != nil {
			log.Printf("total balance: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not compute total balance"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"total": total})
	}
}
