package group

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"zogakzip/pkg/pagination"
	"zogakzip/pkg/response"
)

// Handler handles HTTP requests for group operations
type Handler struct {
	service *Service
}

// NewHandler creates a new group handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for group endpoints. The posts router is mounted
// under /{groupId}/posts so post creation and listing stay scoped to a group.
func (h *Handler) Routes(posts chi.Router) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)

	r.Route("/{groupId}", func(r chi.Router) {
		r.Get("/", h.GetDetail)
		r.Put("/", h.Update)
		r.Delete("/", h.Delete)
		r.Post("/verify-password", h.VerifyPassword)
		r.Post("/like", h.Like)
		r.Get("/is-public", h.PublicStatus)
		r.Mount("/posts", posts)
	})

	return r
}

// Create handles POST /groups
// @Summary      Create a new group
// @Description  Create a memory group with an optional owner password
// @Tags         groups
// @Accept       json
// @Produce      json
// @Param        request body CreateGroupRequest true "Group creation request"
// @Success      201 {object} GroupResponse
// @Failure      400 {object} response.APIError
// @Router       /groups [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	g, err := h.service.Create(r.Context(), &req)
	if err != nil {
		response.InternalError(w, "failed to create group")
		return
	}

	response.JSON(w, http.StatusCreated, g.ToResponse())
}

// List handles GET /groups
// @Summary      List groups
// @Description  Paginated group listing with keyword search, public filter and sorting
// @Tags         groups
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        pageSize query int false "Items per page" default(10)
// @Param        sortBy query string false "latest | mostPosted | mostLiked | mostBadge"
// @Param        keyword query string false "Substring match on group name"
// @Param        isPublic query bool false "Filter by public flag"
// @Success      200 {object} GroupListResponse
// @Failure      400 {object} response.APIError
// @Router       /groups [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
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
		Keyword:  query.Get("keyword"),
		IsPublic: isPublic,
		SortBy:   query.Get("sortBy"),
		Skip:     page.Skip(),
		Limit:    page.Limit(),
	}

	groups, total, err := h.service.List(r.Context(), params)
	if err != nil {
		if errors.Is(err, ErrInvalidSortKey) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "failed to list groups")
		return
	}

	data := make([]*GroupResponse, len(groups))
	for i, g := range groups {
		data[i] = g.ToResponse()
	}

	response.JSON(w, http.StatusOK, &GroupListResponse{
		CurrentPage:    page.Page,
		TotalPages:     page.TotalPages(total),
		TotalItemCount: total,
		Data:           data,
	})
}

// GetDetail handles GET /groups/{groupId}
// @Summary      Get group detail
// @Description  Full group projection; private groups require the password in the body
// @Tags         groups
// @Accept       json
// @Produce      json
// @Param        groupId path string true "Group ID"
// @Param        request body PasswordRequest false "Password for private groups"
// @Success      200 {object} GroupResponse
// @Failure      403 {object} response.APIError
// @Failure      404 {object} response.APIError
// @Router       /groups/{groupId} [get]
func (h *Handler) GetDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "groupId")

	var req PasswordRequest
	// Body is optional for public groups
	_ = json.NewDecoder(r.Body).Decode(&req)

	g, err := h.service.GetDetail(r.Context(), id, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrGroupNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrWrongPassword):
			response.Forbidden(w, err.Error())
		default:
			response.InternalError(w, "failed to get group")
		}
		return
	}

	response.JSON(w, http.StatusOK, g.ToResponse())
}

// Update handles PUT /groups/{groupId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "groupId")

	var req UpdateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	g, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrGroupNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrWrongPassword):
			response.Forbidden(w, err.Error())
		default:
			response.InternalError(w, "failed to update group")
		}
		return
	}

	response.JSON(w, http.StatusOK, g.ToResponse())
}

// Delete handles DELETE /groups/{groupId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "groupId")

	var req PasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.service.Delete(r.Context(), id, req.Password); err != nil {
		switch {
		case errors.Is(err, ErrGroupNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrWrongPassword):
			response.Forbidden(w, err.Error())
		default:
			response.InternalError(w, "failed to delete group")
		}
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "group deleted"})
}

// VerifyPassword handles POST /groups/{groupId}/verify-password
func (h *Handler) VerifyPassword(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "groupId")

	var req PasswordRequest
	// Empty body counts as an empty password attempt
	_ = json.NewDecoder(r.Body).Decode(&req)

	if err := h.service.VerifyPassword(r.Context(), id, req.Password); err != nil {
		switch {
		case errors.Is(err, ErrGroupNotFound):
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

// Like handles POST /groups/{groupId}/like
// @Summary      Like a group
// @Description  Increment the group's like counter; no password required
// @Tags         groups
// @Produce      json
// @Param        groupId path string true "Group ID"
// @Success      200 {object} LikeResponse
// @Failure      404 {object} response.APIError
// @Router       /groups/{groupId}/like [post]
func (h *Handler) Like(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "groupId")

	likeCount, err := h.service.Like(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrGroupNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "failed to like group")
		return
	}

	response.JSON(w, http.StatusOK, &LikeResponse{LikeCount: likeCount})
}

// PublicStatus handles GET /groups/{groupId}/is-public
func (h *Handler) PublicStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "groupId")

	g, err := h.service.PublicStatus(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrGroupNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "failed to get group")
		return
	}

	response.JSON(w, http.StatusOK, &PublicStatusResponse{ID: g.ID, IsPublic: g.IsPublic})
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
