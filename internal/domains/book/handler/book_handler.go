package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"library-api/internal/domains/book"
	"library-api/internal/shared/response"
	"library-api/internal/shared/serializer"
	"library-api/internal/shared/utils"
)

const (
	msgListed  = "Book details retrieved successfully"
	msgCreated = "New Book details created successfully"
	msgFetched = "success"
	msgUpdated = "Book details updated successfully"
	msgDeleted = "Book details deleted successfully"
)

type BookHandler struct {
	service book.Service
}

func NewBookHandler(svc book.Service) *BookHandler {
	return &BookHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// LIST: GET /books/
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) List(c *gin.Context) {
	books, err := h.service.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, msgListed, book.ToResponseList(books))
}

// ════════════════════════════════════════════════════════════════
// PAGINATED LIST: POST /listing-all-books/
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) ListPage(c *gin.Context) {
	fields, err := serializer.Bind(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	books, paginator, err := h.service.ListPage(c.Request.Context(), fields)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.SuccessWithPaginator(c, msgListed, book.ToResponseList(books), paginator)
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /books/
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Create(c *gin.Context) {
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
// READ: GET /books/:id/
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) GetByID(c *gin.Context) {
	id, ok := utils.ParsePathID(c.Param("id"))
	if !ok {
		response.NotFound(c)
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Success(c, http.StatusOK, msgFetched, b.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// REPLACE: PUT /books/:id/
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Replace(c *gin.Context) {
	id, ok := utils.ParsePathID(c.Param("id"))
	if !ok {
		response.NotFound(c)
		return
	}

	fields, err := serializer.Bind(c)
	if err != nil {
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
// DELETE: DELETE /books/:id/
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Delete(c *gin.Context) {
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

func (h *BookHandler) fail(c *gin.Context, err error) {
	if response.Invalid(c, err) {
		return
	}

	switch book.ToHTTPStatus(err) {
	case http.StatusNotFound:
		response.NotFound(c)
	default:
		log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Str("path", c.Request.URL.Path).
			Msg("book request failed")
		response.InternalServerError(c)
	}
}
