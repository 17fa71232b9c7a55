// handlers/booking.go
package handlers

import (
	"errors"
	"net/http"

	"myadvisor/services/booking"
	"myadvisor/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes appointment endpoints.
type BookingHandler struct {
	BookingService booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{BookingService: svc}
}

// BookAppointmentHandler handles POST /api/appointments.
func (h *BookingHandler) BookAppointmentHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	var req booking.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	appointment, err := h.BookingService.BookAppointment(usr.ID, req)
	if err != nil {
		if errors.Is(err, booking.ErrSlotTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "advisor not available at this time"})
			return
		}
		utils.GetLogger().Error("Booking failed",
			zap.Uint("investorID", usr.ID), zap.Uint("advisorID", req.AdvisorID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, appointment)
}

// ListAppointmentsHandler handles GET /api/appointments.
func (h *BookingHandler) ListAppointmentsHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	appointments, err := h.BookingService.ListAppointmentsFor(usr)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// ConfirmAppointmentHandler handles PUT /api/appointments/:id/confirm.
func (h *BookingHandler) ConfirmAppointmentHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	id, err := uintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	appointment, err := h.BookingService.ConfirmAppointment(usr, id)
	if err != nil {
		if errors.Is(err, booking.ErrNotOwner) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appointment)
}

// CancelAppointmentHandler handles PUT /api/appointments/:id/cancel.
func (h *BookingHandler) CancelAppointmentHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	id, err := uintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	appointment, err := h.BookingService.CancelAppointment(usr, id)
	if err != nil {
		if errors.Is(err, booking.ErrNotOwner) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appointment)
}

// DeleteAppointmentHandler handles DELETE /api/appointments/:id.
func (h *BookingHandler) DeleteAppointmentHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	id, err := uintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.BookingService.DeleteAppointment(usr, id); err != nil {
		if errors.Is(err, booking.ErrNotOwner) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted"})
}
