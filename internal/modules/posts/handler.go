package posts

import (
	"errors"
	"net/http"
	"strconv"

	"sigmagram/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for posts.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	group := protected.Group("/posts")
	{
		group.POST("", h.Create)
		group.GET("", h.FindAll)
		group.GET("/:id", h.FindOne)
		group.PATCH("/:id", h.Update)
		group.DELETE("/:id", h.Remove)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	post, err := h.service.Create(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create post")
		return
	}
	response.Success(c, http.StatusCreated, post)
}

func (h *Handler) FindAll(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	take, _ := strconv.Atoi(c.DefaultQuery("take", "20"))
	communityID := c.Query("community_id")

	posts, err := h.service.FindAll(c.Request.Context(), c.GetString("user_id"), skip, take, communityID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list posts")
		return
	}
	response.Success(c, http.StatusOK, posts)
}

func (h *Handler) FindOne(c *gin.Context) {
	post, err := h.service.FindOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Post not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "GET_FAILED", "Failed to load post")
		return
	}
	response.Success(c, http.StatusOK, post)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	post, err := h.service.Update(c.Request.Context(), c.Param("id"), c.GetString("user_id"), req)
	if err != nil {
		h.writeError(c, err, "UPDATE_FAILED", "Failed to update post")
		return
	}
	response.Success(c, http.StatusOK, post)
}

func (h *Handler) Remove(c *gin.Context) {
	if err := h.service.Remove(c.Request.Context(), c.Param("id"), c.GetString("user_id")); err != nil {
		h.writeError(c, err, "DELETE_FAILED", "Failed to delete post")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Post deleted"})
}

func (h *Handler) writeError(c *gin.Context, err error, fallbackCode, fallbackMsg string) {
	switch {
	case errors.Is(err, ErrPostNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Post not found")
	case errors.Is(err, ErrNotPostAuthor):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You are not authorized to modify this post")
	default:
		response.Error(c, http.StatusInternalServerError, fallbackCode, fallbackMsg)
	}
}
