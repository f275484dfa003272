package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-api/internal/domains/book"
	"library-api/internal/domains/book/mocks"
	"library-api/internal/domains/book/service"
)

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockRepository, *mocks.MockAuthorChecker) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	authors := mocks.NewMockAuthorChecker(ctrl)
	h := NewBookHandler(service.NewBookService(repo, authors))

	r := gin.New()
	r.GET("/books/", h.List)
	r.POST("/books/", h.Create)
	r.GET("/books/:id/", h.GetByID)
	r.PUT("/books/:id/", h.Replace)
	r.DELETE("/books/:id/", h.Delete)
	r.POST("/listing-all-books/", h.ListPage)
	return r, repo, authors
}

func dune(t *testing.T) *book.Book {
	t.Helper()
	published, err := book.ParseDate("1965-08-01")
	require.NoError(t, err)
	return &book.Book{ID: 3, Title: "Dune", AuthorID: 1, PublishedDate: published, Price: decimal.RequireFromString("9.9")}
}

func TestBookHandler_List(t *testing.T) {
	r, repo, _ := newTestRouter(t)

	t.Run("empty list is an array", func(t *testing.T) {
		repo.EXPECT().List(gomock.Any()).Return(nil, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":1,"message":"Book details retrieved successfully","data":[]}`, w.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		repo.EXPECT().List(gomock.Any()).Return(nil, context.DeadlineExceeded)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books/", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"status":0,"message":"Internal server error"}`, w.Body.String())
	})
}

func TestBookHandler_GetByID(t *testing.T) {
	r, repo, _ := newTestRouter(t)

	repo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(dune(t), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books/3/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":1,"message":"success","data":{"id":3,"title":"Dune","author":1,"published_date":"1965-08-01","price":"9.90"}}`, w.Body.String())
}

func TestBookHandler_Create_FormWithEmptyAuthor(t *testing.T) {
	r, _, _ := newTestRouter(t)

	form := url.Values{"title": {"Dune"}, "author": {""}, "published_date": {"1965-8-1"}, "price": {"9.90"}}
	req := httptest.NewRequest(http.MethodPost, "/books/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"status":0,"message":{"author":["This field may not be null."]}}`, w.Body.String())
}

func TestBookHandler_Create_UnknownAuthor(t *testing.T) {
	r, _, authors := newTestRouter(t)

	authors.EXPECT().ExistsByID(gomock.Any(), int64(99)).Return(false, nil)

	req := httptest.NewRequest(http.MethodPost, "/books/",
		strings.NewReader(`{"title":"Dune","author":99,"published_date":"1965-08-01","price":"9.90"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"status":0,"message":{"author":["Invalid pk \"99\" - object does not exist."]}}`, w.Body.String())
}

func TestBookHandler_Replace_MalformedBody(t *testing.T) {
	r, repo, _ := newTestRouter(t)

	t.Run("known id", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(dune(t), nil)

		req := httptest.NewRequest(http.MethodPut, "/books/3/", strings.NewReader(`{"title":`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "JSON parse error - ")
	})

	t.Run("unknown id", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), int64(4)).Return(nil, book.ErrBookNotFound)

		req := httptest.NewRequest(http.MethodPut, "/books/4/", strings.NewReader(`{"title":`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"status":0,"message":"Not found."}`, w.Body.String())
	})
}

func TestBookHandler_Delete(t *testing.T) {
	r, repo, _ := newTestRouter(t)

	t.Run("non-digit id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/books/abc/", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		repo.EXPECT().Delete(gomock.Any(), int64(3)).Return(errors.New("boom"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/books/3/", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"status":0,"message":"Internal server error"}`, w.Body.String())
	})
}

func TestBookHandler_ListPage_CountFails(t *testing.T) {
	r, repo, _ := newTestRouter(t)

	repo.EXPECT().Count(gomock.Any()).Return(int64(0), errors.New("boom"))

	req := httptest.NewRequest(http.MethodPost, "/listing-all-books/", strings.NewReader(`{"page":1,"page_size":2}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
