// handlers/advisor.go
package handlers

import (
	"errors"
	"net/http"

	"myadvisor/models"
	"myadvisor/services/advisor"
	"myadvisor/services/booking"
	"myadvisor/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdvisorHandler exposes advisor profile, schedule and search endpoints.
type AdvisorHandler struct {
	AdvisorService advisor.AdvisorService
	BookingService booking.BookingService
}

func NewAdvisorHandler(advisorSvc advisor.AdvisorService, bookingSvc booking.BookingService) *AdvisorHandler {
	return &AdvisorHandler{AdvisorService: advisorSvc, BookingService: bookingSvc}
}

// GetAdvisorByIDHandler handles GET /api/advisors/:id.
func (h *AdvisorHandler) GetAdvisorByIDHandler(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	profile, err := h.AdvisorService.GetProfile(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetMyProfileHandler handles GET /api/advisors/me/profile.
func (h *AdvisorHandler) GetMyProfileHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	profile, err := h.AdvisorService.GetProfileByUserID(usr.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// SaveMyProfileHandler handles PUT /api/advisors/me/profile.
func (h *AdvisorHandler) SaveMyProfileHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	var input advisor.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	profile, err := h.AdvisorService.SaveProfile(usr.ID, input)
	if err != nil {
		utils.GetLogger().Error("Failed to save advisor profile", zap.Uint("userID", usr.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetMyScheduleHandler handles GET /api/advisors/me/schedule.
func (h *AdvisorHandler) GetMyScheduleHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	schedule, err := h.AdvisorService.GetSchedule(usr.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// SaveMyScheduleHandler handles PUT /api/advisors/me/schedule.
func (h *AdvisorHandler) SaveMyScheduleHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	var schedule models.ShiftSchedule
	if err := c.ShouldBindJSON(&schedule); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	saved, err := h.AdvisorService.SaveSchedule(usr.ID, schedule)
	if err != nil {
		if errors.Is(err, advisor.ErrInvalidShift) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, saved)
}

// GetMyFreeWindowsHandler handles GET /api/advisors/me/free-windows.
func (h *AdvisorHandler) GetMyFreeWindowsHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	profile, err := h.AdvisorService.GetProfileByUserID(usr.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	rangeStart, rangeEnd, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	windows, err := h.BookingService.GetFreeWindows(profile.ID, rangeStart, rangeEnd)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, booking.ErrMissingSchedule):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"free_windows": windows})
}

// SearchAdvisorsHandler handles GET /api/advisors/search.
func (h *AdvisorHandler) SearchAdvisorsHandler(c *gin.Context) {
	rangeStart, rangeEnd, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	results, err := h.AdvisorService.Search(c.Query("service"), rangeStart, rangeEnd)
	if err != nil {
		if errors.Is(err, booking.ErrInvalidRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("Advisor search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"advisors": results})
}

// ListServiceTypesHandler handles GET /api/service-types.
func (h *AdvisorHandler) ListServiceTypesHandler(c *gin.Context) {
	types, err := h.AdvisorService.ListServiceTypes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, types)
}
