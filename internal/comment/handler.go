package comment

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"zogakzip/pkg/pagination"
	"zogakzip/pkg/response"
)

// Handler handles HTTP requests for comment operations
type Handler struct {
	service *Service
}

// NewHandler creates a new comment handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// PostRoutes returns the router mounted under /posts/{postId}/comments
func (h *Handler) PostRoutes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.ListByPost)

	return r
}

// Routes returns the router for /comments endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Put("/{commentId}", h.Update)
	r.Delete("/{commentId}", h.Delete)

	return r
}

// Create handles POST /posts/{postId}/comments
// @Summary      Create a comment
// @Description  Add a comment to a post; bumps the post's comment counter
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        postId path string true "Post ID"
// @Param        request body CreateCommentRequest true "Comment creation request"
// @Success      201 {object} CommentResponse
// @Failure      400 {object} response.APIError
// @Failure      404 {object} response.APIError
// @Router       /posts/{postId}/comments [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postId")

	var req CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	c, err := h.service.Create(r.Context(), postID, &req)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "failed to create comment")
		return
	}

	response.JSON(w, http.StatusCreated, c.ToResponse())
}

// ListByPost handles GET /posts/{postId}/comments
func (h *Handler) ListByPost(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postId")

	page, err := pagination.Parse(r.URL.Query())
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	params := ListParams{
		PostID: postID,
		Skip:   page.Skip(),
		Limit:  page.Limit(),
	}

	comments, total, err := h.service.ListByPost(r.Context(), params)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "failed to list comments")
		return
	}

	data := make([]*CommentResponse, len(comments))
	for i, c := range comments {
		data[i] = c.ToResponse()
	}

	response.JSON(w, http.StatusOK, &CommentListResponse{
		CurrentPage:    page.Page,
		TotalPages:     page.TotalPages(total),
		TotalItemCount: total,
		Data:           data,
	})
}

// Update handles PUT /comments/{commentId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "commentId")

	var req UpdateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	c, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrCommentNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrWrongPassword):
			response.Forbidden(w, err.Error())
		default:
			response.InternalError(w, "failed to update comment")
		}
		return
	}

	response.JSON(w, http.StatusOK, c.ToResponse())
}

// Delete handles DELETE /comments/{commentId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "commentId")

	var req PasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.service.Delete(r.Context(), id, req.Password); err != nil {
		switch {
		case errors.Is(err, ErrCommentNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrWrongPassword):
			response.Forbidden(w, err.Error())
		default:
			response.InternalError(w, "failed to delete comment")
		}
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "comment deleted"})
}
