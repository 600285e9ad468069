package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cashflowhq/cashflow-commander/internal/database"
	"github.com/cashflowhq/cashflow-commander/models"
)

// requireFounder resolves whether the caller holds the founder role and
// writes the rejection itself when they do not.
func requireFounder(pool *pgxpool.Pool, c *gin.Context, action string) bool {
	isFounder, err := database.IsFounder(pool, currentUserID(c))
	if err != nil {
		log.Printf("founder check: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not verify permissions"})
		return false
	}
	if !isFounder {
		c.JSON(http.StatusForbidden, gin.H{"error": "only the founder can " + action})
		return false
	}
	return true
}

func IsFounderHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		isFounder, err := database.IsFounder(pool, currentUserID(c))
		if err != nil {
			log.Printf("founder check: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not verify permissions"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"is_founder": isFounder})
	}
}

func ListBadgesHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		badges, err := database.GetAllBadges(pool)
		if err != nil {
			log.Printf("listing badges: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list badges"})
			return
		}
		c.JSON(http.StatusOK, badges)
	}
}

func UserBadgesHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
			return
		}

		details, err := database.GetUserBadges(pool, userID)
		if err != nil {
			log.Printf("listing user badges: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list badges"})
			return
		}
		c.JSON(http.StatusOK, details)
	}
}

type createBadgeRequest struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

func CreateBadgeHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireFounder(pool, c, "create badges") {
			return
		}

		var req createBadgeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if req.Name == "" || req.DisplayName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and display_name are required"})
			return
		}

		badge := &models.Badge{
			Name:        req.Name,
			DisplayName: req.DisplayName,
			Description: req.Description,
			Icon:        req.Icon,
			Color:       req.Color,
		}
		if err := database.CreateBadge(pool, badge); err != nil {
			if err.Error() == "badge with this name already exists" {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			log.Printf("creating badge: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create badge"})
			return
		}
		c.JSON(http.StatusCreated, badge)
	}
}

type badgeAssignmentRequest struct {
	UserID  int `json:"user_id"`
	BadgeID int `json:"badge_id"`
}

func AssignBadgeHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireFounder(pool, c, "assign badges") {
			return
		}

		var req badgeAssignmentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		if err := database.AssignBadge(pool, req.UserID, req.BadgeID, currentUserID(c)); err != nil {
			switch err.Error() {
			case "badge not found":
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			case "user already has this badge":
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			default:
				log.Printf("assigning badge: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not assign badge"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "badge assigned"})
	}
}

func RevokeBadgeHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireFounder(pool, c, "revoke badges") {
			return
		}

		var req badgeAssignmentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		if err := database.RevokeBadge(pool, req.UserID, req.BadgeID); err != nil {
			if err.Error() == "user does not have this badge" {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			log.Printf("revoking badge: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not revoke badge"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "badge revoked"})
	}
}

// InitFounderBadgeHandler ensures the FOUNDER badge exists and assigns
// it to the caller when they hold the founder role. Called on app load.
func InitFounderBadgeHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)

		isFounder, err := database.IsFounder(pool, userID)
		if err != nil {
			log.Printf("founder check: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not verify permissions"})
			return
		}

		result, err := database.EnsureFounderBadge(pool, userID, isFounder)
		if err != nil {
			log.Printf("initializing founder badge: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not initialize founder badge"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// ListAllUsersHandler is the founder's badge-management overview. A
// non-founder gets an empty list rather than an error.
func ListAllUsersHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		isFounder, err := database.IsFounder(pool, currentUserID(c))
		if err != nil {
			log.Printf("founder check: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not verify permissions"})
			return
		}
		if !isFounder {
			c.JSON(http.StatusOK, []models.AdminUserEntry{})
			return
		}

		entries, err := database.GetAllProfilesWithBadges(pool)
		if err != nil {
			log.Printf("listing users: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list users"})
			return
		}
		c.JSON(http.StatusOK, entries)
	}
}
