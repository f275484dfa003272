// Package pagination implements offset (page number / page size) pagination.
package pagination

import (
	"math"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-api/internal/shared/serializer"
)

// Request is a validated page request. Page and PageSize are both >= 1.
type Request struct {
	Page     int64 `json:"page"`
	PageSize int64 `json:"page_size"`
}

// Paginator is the block attached to paginated listing responses.
type Paginator struct {
	TotalRecords    int64  `json:"total_records"`
	TotalPages      int64  `json:"total_pages"`
	CurrentPage     int64  `json:"current_page"`
	CurrentPageSize int64  `json:"current_page_size"`
	NextPage        *int64 `json:"next_page"`
	PreviousPage    int64  `json:"previous_page"`
}

// Validate requires both values to be at least 1. Min skips zero values,
// so Required catches 0.
func (r Request) Validate() error {
	atLeastOne := []validation.Rule{
		validation.Required.Error(serializer.MsgMinValue1),
		validation.Min(int64(1)).Error(serializer.MsgMinValue1),
	}
	return validation.ValidateStruct(&r,
		validation.Field(&r.Page, atLeastOne...),
		validation.Field(&r.PageSize, atLeastOne...),
	)
}

// ParseRequest reads page and page_size out of a request body.
func ParseRequest(fields serializer.Fields) (Request, error) {
	rd := serializer.NewReader(fields)
	req := Request{
		Page:     rd.Integer("page"),
		PageSize: rd.Integer("page_size"),
	}
	if err := rd.Validate(req); err != nil {
		return Request{}, err
	}
	return req, nil
}

// Skip is the zero-based offset of the first record on the page. ok is false
// when the offset does not fit in an int64; such a page lies past any table.
func (r Request) Skip() (skip int64, ok bool) {
	if r.Page < 1 || r.PageSize < 1 {
		return 0, false
	}
	if r.Page-1 > math.MaxInt64/r.PageSize {
		return 0, false
	}
	return (r.Page - 1) * r.PageSize, true
}

// TotalPages is ceil(totalRecords / pageSize); a partial last page counts as a page.
func TotalPages(totalRecords, pageSize int64) int64 {
	if totalRecords <= 0 || pageSize <= 0 {
		return 0
	}
	pages := totalRecords / pageSize
	if totalRecords%pageSize != 0 {
		pages++
	}
	return pages
}

// New builds the paginator for page req given the total record count and
// the number of records actually returned for that page.
//
// PreviousPage is page-1 and is not clamped, so the first page reports 0.
// A page of math.MaxInt64 has no representable next page.
func New(req Request, totalRecords int64, currentPageSize int) Paginator {
	totalPages := TotalPages(totalRecords, req.PageSize)

	p := Paginator{
		TotalRecords:    totalRecords,
		TotalPages:      totalPages,
		CurrentPage:     req.Page,
		CurrentPageSize: int64(currentPageSize),
		PreviousPage:    req.Page - 1,
	}
	if totalPages != req.Page && totalRecords != 0 && req.Page < math.MaxInt64 {
		next := req.Page + 1
		p.NextPage = &next
	}
	return p
}
