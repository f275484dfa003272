package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"library-api/internal/domains/author"
	"library-api/internal/shared/response"
	"library-api/internal/shared/serializer"
	"library-api/internal/shared/utils"
)

const (
	msgListed  = "Author details retrieved successfully"
	msgCreated = "New author details created successfully"
	msgFetched = "success"
	msgUpdated = "Author details updated successfully"
	msgDeleted = "Author details deleted successfully"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(svc author.Service) *AuthorHandler {
	return &AuthorHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// LIST: GET /authors/
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.service.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, msgListed, author.ToResponseList(authors))
}

// ════════════════════════════════════════════════════════════════
// PAGINATED LIST: POST /listing-all-authors/  {page, page_size}
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) ListPage(c *gin.Context) {
	fields, err := serializer.Bind(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	authors, paginator, err := h.service.ListPage(c.Request.Context(), fields)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.SuccessWithPaginator(c, msgListed, author.ToResponseList(authors), paginator)
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /authors/
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Create(c *gin.Context) {
	fields, err := serializer.Bind(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), fields)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusCreated, msgCreated, created.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// READ: GET /authors/:id/
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, ok := utils.ParsePathID(c.Param("id"))
	if !ok {
		response.NotFound(c)
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, msgFetched, a.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// REPLACE: PUT /authors/:id/
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Replace(c *gin.Context) {
	id, ok := utils.ParsePathID(c.Param("id"))
	if !ok {
		response.NotFound(c)
		return
	}

	fields, err := serializer.Bind(c)
	if err != nil {
		// an unknown id still wins over a malformed body
		if _, getErr := h.service.GetByID(c.Request.Context(), id); getErr != nil {
			h.fail(c, getErr)
			return
		}
		h.fail(c, err)
		return
	}

	updated, err := h.service.Replace(c.Request.Context(), id, fields)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, msgUpdated, updated.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /authors/:id/  (hard delete, books are kept)
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := utils.ParsePathID(c.Param("id"))
	if !ok {
		response.NotFound(c)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, msgDeleted, nil)
}

// fail maps a service error onto the envelope.
func (h *AuthorHandler) fail(c *gin.Context, err error) {
	if response.Invalid(c, err) {
		return
	}

	switch author.ToHTTPStatus(err) {
	case http.StatusNotFound:
		response.NotFound(c)
	default:
		log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Str("path", c.Request.URL.Path).
			Msg("author request failed")
		response.InternalServerError(c)
	}
}
