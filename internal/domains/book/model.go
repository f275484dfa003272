package book

import (
	"github.com/shopspring/decimal"
)

// Book is a persisted book record. AuthorID may point at an author that
// has since been deleted.
type Book struct {
	ID            int64           `json:"id" db:"id"`
	Title         string          `json:"title" db:"title"`
	AuthorID      int64           `json:"author" db:"author_id"`
	PublishedDate Date            `json:"published_date" db:"published_date"`
	Price         decimal.Decimal `json:"price" db:"price"`
}
