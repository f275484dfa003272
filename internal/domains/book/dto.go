package book

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"

	"library-api/internal/shared/serializer"
)

// Constants for validation
const (
	MaxTitleLength    = 200
	PriceMaxDigits    = 10
	PriceDecimalPlace = 2
)

// BookRequest - body of POST /books/ and PUT /books/:id/
type BookRequest struct {
	Title         string          `json:"title"`
	AuthorID      int64           `json:"author"`
	PublishedDate Date            `json:"published_date"`
	Price         decimal.Decimal `json:"price"`
}

func (r BookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error(serializer.MsgBlank),
			validation.RuneLength(0, MaxTitleLength).Error(serializer.MsgMaxLength(MaxTitleLength)),
		),
		validation.Field(&r.Price, validation.By(priceRule)),
	)
}

// priceRule enforces NUMERIC(10, 2): at most 2 decimal places and 8 digits before the point.
func priceRule(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok {
		return validation.NewError("validation_invalid_number", serializer.MsgInvalidNumber)
	}
	return checkDigits(d, PriceMaxDigits, PriceDecimalPlace)
}

func checkDigits(d decimal.Decimal, maxDigits, decimalPlaces int) error {
	coef := d.Coefficient().String()
	if coef[0] == '-' {
		coef = coef[1:]
	}

	// trailing zeros count: "12.500" has three decimal places
	exp := int(d.Exponent())
	var digits, decimals, whole int
	switch {
	case exp >= 0:
		digits = len(coef) + exp
		whole = digits
	case len(coef) > -exp:
		digits = len(coef)
		decimals = -exp
		whole = digits - decimals
	default:
		digits = -exp
		decimals = digits
	}

	switch {
	case digits > maxDigits:
		return validation.NewError("validation_max_digits", serializer.MsgMaxDigits(maxDigits))
	case decimals > decimalPlaces:
		return validation.NewError("validation_max_decimal_places", serializer.MsgMaxDecimalPlaces(decimalPlaces))
	case whole > maxDigits-decimalPlaces:
		return validation.NewError("validation_max_whole_digits", serializer.MsgMaxWholeDigits(maxDigits-decimalPlaces))
	}
	return nil
}

// ReadBookRequest pulls the book fields out of rd without validating them.
func ReadBookRequest(rd *serializer.Reader) BookRequest {
	return BookRequest{
		Title:         rd.String("title"),
		AuthorID:      rd.PrimaryKey("author"),
		PublishedDate: NewDate(rd.Date("published_date")),
		Price:         rd.Decimal("price"),
	}
}

// ToEntity converts the request into a Book carrying id.
func (r BookRequest) ToEntity(id int64) *Book {
	return &Book{
		ID:            id,
		Title:         r.Title,
		AuthorID:      r.AuthorID,
		PublishedDate: r.PublishedDate,
		Price:         r.Price,
	}
}

// BookResponse - wire form of a book. Price keeps its two decimal places ("12.50").
type BookResponse struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Author        int64  `json:"author"`
	PublishedDate Date   `json:"published_date"`
	Price         string `json:"price"`
}

func (b Book) ToResponse() BookResponse {
	return BookResponse{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.AuthorID,
		PublishedDate: b.PublishedDate,
		Price:         b.Price.StringFixed(PriceDecimalPlace),
	}
}

// ToResponseList never returns nil so an empty listing encodes as [].
func ToResponseList(books []Book) []BookResponse {
	out := make([]BookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, b.ToResponse())
	}
	return out
}
