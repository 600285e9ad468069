package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cashflowhq/cashflow-commander/internal/database"
	"github.com/cashflowhq/cashflow-commander/internal/insights"
	"github.com/cashflowhq/cashflow-commander/models"
)

func ListInsightsHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)
		if userID == 0 {
			c.JSON(http.StatusOK, []models.Insight{})
			return
		}

		list, err := database.GetInsightsByUser(pool, userID)
		if err != nil {
			log.Printf("listing insights: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list insights"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GenerateInsightsHandler reruns the analysis over the caller's recent
// transactions and replaces the stored set.
func GenerateInsightsHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		generated, err := insights.Refresh(pool, currentUserID(c))
		if err != nil {
			log.Printf("generating insights: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate insights"})
			return
		}
		c.JSON(http.StatusOK, generated)
	}
}

func MarkInsightReadHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid insight id"})
			return
		}

		if err := database.MarkInsightRead(pool, currentUserID(c), id); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "insight not found"})
				return
			}
			log.Printf("marking insight read: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update insight"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "insight marked as read"})
	}
}
