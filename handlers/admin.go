// handlers/admin.go
package handlers

import (
	"net/http"

	"myadvisor/services/admin"
	"myadvisor/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes administrative endpoints.
type AdminHandler struct {
	AdminService admin.AdminService
}

func NewAdminHandler(svc admin.AdminService) *AdminHandler {
	return &AdminHandler{AdminService: svc}
}

// GetAllUsersHandler handles GET /api/admin/users.
func (h *AdminHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := h.AdminService.GetAllUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetAllAdvisorsHandler handles GET /api/admin/advisors.
func (h *AdminHandler) GetAllAdvisorsHandler(c *gin.Context) {
	advisors, err := h.AdminService.GetAllAdvisors()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, advisors)
}

// GetMetricsHandler handles GET /api/admin/metrics.
func (h *AdminHandler) GetMetricsHandler(c *gin.Context) {
	metrics, err := h.AdminService.GetMetrics()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// DeleteUserHandler handles DELETE /api/admin/users/:id.
func (h *AdminHandler) DeleteUserHandler(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.AdminService.DeleteUser(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	utils.GetLogger().Info("admin removed user", zap.Uint("userID", id))
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}
