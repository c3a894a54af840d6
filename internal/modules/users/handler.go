package users

import (
	"errors"
	"net/http"

	"sigmagram/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for user profiles.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	group := protected.Group("/users")
	{
		group.GET("", h.FindAll)
		group.GET("/:id", h.FindOne)
		group.PATCH("/me", h.UpdateMe)
		group.DELETE("/me", h.RemoveMe)
	}
}

func (h *Handler) FindAll(c *gin.Context) {
	users, err := h.service.FindAll(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list users")
		return
	}
	response.Success(c, http.StatusOK, users)
}

func (h *Handler) FindOne(c *gin.Context) {
	user, err := h.service.FindOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "GET_FAILED", "Failed to load user")
		return
	}
	response.Success(c, http.StatusOK, user)
}

func (h *Handler) UpdateMe(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, err := h.service.Update(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update user")
		return
	}
	response.Success(c, http.StatusOK, user)
}

func (h *Handler) RemoveMe(c *gin.Context) {
	if err := h.service.Remove(c.Request.Context(), c.GetString("user_id")); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete user")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Account deleted"})
}
