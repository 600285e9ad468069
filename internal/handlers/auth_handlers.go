package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cashflowhq/cashflow-commander/internal/database"
	"github.com/cashflowhq/cashflow-commander/models"
	"github.com/cashflowhq/cashflow-commander/utils"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func RegisterHandler(pool *pgxpool.Pool, jwtSecret, founderEmail string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var creds credentials
		if err := c.ShouldBindJSON(&creds); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		creds.Email = strings.TrimSpace(creds.Email)
		if creds.Email == "" || !strings.Contains(creds.Email, "@") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "a valid email is required"})
			return
		}
		if len(creds.Password) < 8 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "password must be at least 8 characters"})
			return
		}

		user := &models.User{Email: creds.Email, Password: creds.Password}
		if err := database.RegisterUser(pool, user, founderEmail); err != nil {
			log.Printf("registering user: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not register user"})
			return
		}

		token, err := utils.GenerateToken(jwtSecret, user.ID, 24*time.Hour)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
	}
}

func LoginHandler(pool *pgxpool.Pool, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var creds credentials
		if err := c.ShouldBindJSON(&creds); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		user, err := database.AuthenticateUser(pool, creds.Email, creds.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}

		token, err := utils.GenerateToken(jwtSecret, user.ID, 24*time.Hour)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
			return
		}

		user.PasswordHash = ""
		c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
	}
}

// MeHandler returns the authenticated user with their profile, or null
// when anonymous.
func MeHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)
		if userID == 0 {
			c.JSON(http.StatusOK, nil)
			return
		}

		user, err := database.GetUserByID(pool, userID)
		if err != nil {
			c.JSON(http.StatusOK, nil)
			return
		}

		profile, err := database.GetProfileByUserID(pool, userID)
		if err != nil {
			log.Printf("loading profile: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load profile"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": user, "profile": profile})
	}
}
