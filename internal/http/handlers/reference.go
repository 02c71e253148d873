package handlers

import (
	"net/http"
	"strconv"

	"farekiosk/internal/domain"

	"github.com/gin-gonic/gin"
)

// GET /api/zones
func GetZones(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"zones": domain.StationBoard()})
}

// GET /api/zones/:id
func GetZone(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "zone id must be a whole number", nil)
		return
	}
	zone, err := domain.FindZoneStations(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, zone)
}

// GET /api/fares
func GetFares(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"currency": "cents", "fares": domain.FareTable()})
}
