package communities

import (
	"errors"
	"net/http"

	"sigmagram/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for communities.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	group := protected.Group("/communities")
	{
		group.POST("", h.Create)
		group.GET("", h.FindAll)
		group.GET("/:id", h.FindOne)
		group.PATCH("/:id", h.Update)
		group.DELETE("/:id", h.Remove)
		group.POST("/:id/follow", h.Follow)
		group.DELETE("/:id/follow", h.Unfollow)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateCommunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	community, err := h.service.Create(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		if errors.Is(err, ErrCategoryTaken) {
			response.Error(c, http.StatusConflict, "CATEGORY_TAKEN", "Community category already exists")
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create community")
		return
	}

	response.Success(c, http.StatusCreated, community)
}

func (h *Handler) FindAll(c *gin.Context) {
	communities, err := h.service.FindAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list communities")
		return
	}
	response.Success(c, http.StatusOK, communities)
}

func (h *Handler) FindOne(c *gin.Context) {
	community, err := h.service.FindOne(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		if errors.Is(err, ErrCommunityNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Community not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "GET_FAILED", "Failed to load community")
		return
	}
	response.Success(c, http.StatusOK, community)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateCommunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	community, err := h.service.Update(c.Request.Context(), c.Param("id"), c.GetString("user_id"), req)
	if err != nil {
		h.writeError(c, err, "UPDATE_FAILED", "Failed to update community")
		return
	}
	response.Success(c, http.StatusOK, community)
}

func (h *Handler) Remove(c *gin.Context) {
	if err := h.service.Remove(c.Request.Context(), c.Param("id"), c.GetString("user_id")); err != nil {
		h.writeError(c, err, "DELETE_FAILED", "Failed to delete community")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Community deleted"})
}

func (h *Handler) Follow(c *gin.Context) {
	follow, err := h.service.Follow(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrCommunityNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Community not found")
		case errors.Is(err, ErrAlreadyFollowing):
			response.Error(c, http.StatusConflict, "ALREADY_FOLLOWING", "You are already following this community")
		default:
			response.Error(c, http.StatusInternalServerError, "FOLLOW_FAILED", "Failed to follow community")
		}
		return
	}
	response.Success(c, http.StatusCreated, follow)
}

func (h *Handler) Unfollow(c *gin.Context) {
	if err := h.service.Unfollow(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFollowing) {
			response.Error(c, http.StatusNotFound, "NOT_FOLLOWING", "You are not following this community")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UNFOLLOW_FAILED", "Failed to unfollow community")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Unfollowed community"})
}

func (h *Handler) writeError(c *gin.Context, err error, fallbackCode, fallbackMsg string) {
	switch {
	case errors.Is(err, ErrCommunityNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Community not found")
	case errors.Is(err, ErrNotCommunityOwner):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You are not authorized to modify this community")
	case errors.Is(err, ErrCategoryTaken):
		response.Error(c, http.StatusConflict, "CATEGORY_TAKEN", "Community category already exists")
	default:
		response.Error(c, http.StatusInternalServerError, fallbackCode, fallbackMsg)
	}
}
