package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"matchmaker/internal/models"
)

type MatchController struct {
	DB *gorm.DB
}

// GetYears returns the reporting years that have stored match results
func (mc *MatchController) GetYears(c *gin.Context) {
	var years []int
	err := mc.DB.WithContext(c.Request.Context()).
		Raw("SELECT DISTINCT income_year FROM match_results ORDER BY income_year").
		Scan(&years).Error
	if err != nil {
		log.Printf("failed to get years: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"years": years,
	})
}

// GetMatchesByYear returns stored match results for one reporting year
func (mc *MatchController) GetMatchesByYear(c *gin.Context) {
	ctx := c.Request.Context()

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return
	}

	limit := getLimitWithDefault(c, 100)

	matches, err := gorm.G[models.MatchResult](mc.DB).
		Where("income_year = ?", year).
		Order("section_id ASC").
		Limit(limit).
		Find(ctx)
	if err != nil {
		log.Printf("failed to get matches: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	if len(matches) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No matches for year"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"matches": matches,
	})
}

func getLimitWithDefault(c *gin.Context, defaultValue int) int {
	var err error
	limit := defaultValue
	if c.Query("limit") != "" {
		limit, err = strconv.Atoi(c.Query("limit"))
		if err != nil {
			log.Printf("failed to parse limit: %v, using default value: %d", err, defaultValue)
			return defaultValue
		}
	}
	return limit
}
