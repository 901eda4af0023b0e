package post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"zogakzip/pkg/pagination"
	"zogakzip/pkg/response"
)

// Handler handles HTTP requests for post operations
type Handler struct {
	service *Service
}

// NewHandler creates a new post handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GroupRoutes returns the router mounted under /groups/{groupId}/posts
func (h *Handler) GroupRoutes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.ListByGroup)

	return r
}

// Routes returns the router for /posts endpoints. The comments router is
// mounted under /{postId}/comments.
func (h *Handler) Routes(comments chi.Router) chi.Router {
	r := chi.NewRouter()

	r.Route("/{postId}", func(r chi.Router) {
		r.Get("/", h.GetByID)
		r.Put("/", h.Update)
		r.Delete("/", h.Delete)
		r.Post("/verify-password", h.VerifyPassword)
		r.Post("/like", h.Like)
		r.Get("/is-public", h.PublicStatus)
		r.Mount("/comments", comments)
	})

	return r
}

// Create handles POST /groups/{groupId}/posts
// @Summary      Create a post
// @Description  Create a memory post inside a group; bumps the group's post counter
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        groupId path string true "Group ID"
// @Param        request body CreatePostRequest true "Post creation request"
// @Success      201 {object} PostResponse
// @Failure      400 {object} response.APIError
// @Failure      404 {object} response.APIError
// @Router       /groups/{groupId}/posts [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "groupId")

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	p, err := h.service.Create(r.Context(), groupID, &req)
	if err != nil {
		if errors.Is(err, ErrGroupNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "failed to create post")
		return
	}

	response.JSON(w, http.StatusCreated, p.ToResponse())
}

// ListByGroup handles GET /groups/{groupId}/posts
// @Summary      List posts in a group
// @Description  Paginated post listing; keyword matches title or tags
// @Tags         posts
// @Produce      json
// @Param        groupId path string true "Group ID"
// @Param        page query int false "Page number" default(1)
// @Param        pageSize query int false "Items per page" default(10)
// @Param        sortBy query string false "latest | mostCommented | mostLiked"
// @Param        keyword query string false "Substring match on title or tags"
// @Param        isPublic query bool false "Filter by public flag"
// @Success      200 {object} PostListResponse
// @Failure      404 {object} response.APIError
// @Router       /groups/{groupId}/posts [get]
func (h *Handler) ListByGroup(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "groupId")
	query := r.URL.Query()

	page, err := pagination.Parse(query)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	isPublic, ok := parseOptionalBool(query.Get("isPublic"))
	if !ok {
		response.BadRequest(w, "isPublic must be true or false")
		return
	}

	params := ListParams{
		GroupID:  groupID,
		Keyword:  query.Get("keyword"),
		IsPublic: isPublic,
		SortBy:   query.Get("sortBy"),
		Skip:     page.Skip(),
		Limit:    page.Limit(),
	}

	posts, total, err := h.service.ListByGroup(r.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, ErrGroupNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrInvalidSortKey):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, "failed to list posts")
		}
		return
	}

	data := make([]*PostResponse, len(posts))
	for i, p := range posts {
		data[i] = p.ToResponse()
	}

	response.JSON(w, http.StatusOK, &PostListResponse{
		CurrentPage:    page.Page,
		TotalPages:     page.TotalPages(total),
		TotalItemCount: total,
		Data:           data,
	})
}

// GetByID handles GET /posts/{postId}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "postId")

	p, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "failed to get post")
		return
	}

	response.JSON(w, http.StatusOK, p.ToResponse())
}

// Update handles PUT /posts/{postId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "postId")

	var req UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	p, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrPostNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrWrongPassword):
			response.Forbidden(w, err.Error())
		default:
			response.InternalError(w, "failed to update post")
		}
		return
	}

	response.JSON(w, http.StatusOK, p.ToResponse())
}

// Delete handles DELETE /posts/{postId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "postId")

	var req PasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.service.Delete(r.Context(), id, req.Password); err != nil {
		switch {
		case errors.Is(err, ErrPostNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrWrongPassword):
			response.Forbidden(w, err.Error())
		default:
			response.InternalError(w, "failed to delete post")
		}
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "post deleted"})
}

// VerifyPassword handles POST /posts/{postId}/verify-password
func (h *Handler) VerifyPassword(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "postId")

	var req PasswordRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	if err := h.service.VerifyPassword(r.Context(), id, req.Password); err != nil {
		switch {
		case errors.Is(err, ErrPostNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrWrongPassword):
			response.Unauthorized(w, err.Error())
		default:
			response.InternalError(w, "failed to verify password")
		}
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "password verified"})
}

// Like handles POST /posts/{postId}/like
func (h *Handler) Like(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "postId")

	likes, err := h.service.Like(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "failed to like post")
		return
	}

	response.JSON(w, http.StatusOK, &LikeResponse{LikeCount: likes})
}

// PublicStatus handles GET /posts/{postId}/is-public
func (h *Handler) PublicStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "postId")

	p, err := h.service.PublicStatus(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "failed to get post")
		return
	}

	response.JSON(w, http.StatusOK, &PublicStatusResponse{ID: p.ID, IsPublic: p.IsPublic})
}

// parseOptionalBool parses an optional boolean query parameter. The second
// return value is false when the input is present but not a boolean.
func parseOptionalBool(raw string) (*bool, bool) {
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, false
	}
	return &v, true
}
