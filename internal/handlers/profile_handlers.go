package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cashflowhq/cashflow-commander/internal/database"
	"github.com/cashflowhq/cashflow-commander/models"
)

func GetProfileHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)
		if userID == 0 {
			c.JSON(http.StatusOK, nil)
			return
		}

		profile, err := database.GetProfileByUserID(pool, userID)
		if err != nil {
			log.Printf("loading profile: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load profile"})
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

type upsertProfileRequest struct {
	Username          string `json:"username"`
	Bio               string `json:"bio"`
	ProfilePictureURL string `json:"profile_picture_url"`
}

func UpsertProfileHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req upsertProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		if len(req.Username) < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username must be at least 2 characters"})
			return
		}
		if len(req.Username) > 30 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username cannot exceed 30 characters"})
			return
		}
		if len(req.Bio) > 150 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bio cannot exceed 150 characters"})
			return
		}

		profile := &models.Profile{
			UserID:            currentUserID(c),
			Username:          req.Username,
			Bio:               req.Bio,
			ProfilePictureURL: req.ProfilePictureURL,
		}
		if err := database.UpsertProfile(pool, profile); err != nil {
			log.Printf("upserting profile: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save profile"})
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

// ProfileWithBadgesHandler returns the caller's profile together with
// every badge they hold.
func ProfileWithBadgesHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)
		if userID == 0 {
			c.JSON(http.StatusOK, nil)
			return
		}

		profile, err := database.GetProfileByUserID(pool, userID)
		if err != nil {
			log.Printf("loading profile: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load profile"})
			return
		}

		details, err := database.GetUserBadges(pool, userID)
		if err != nil {
			log.Printf("loading badges: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load badges"})
			return
		}

		badges := []models.Badge{}
		for _, d := range details {
			badges = append(badges, d.Badge)
		}

		c.JSON(http.StatusOK, models.ProfileWithBadges{
			Profile: profile,
			UserID:  userID,
			Badges:  badges,
		})
	}
}
