package author

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"library-api/internal/shared/serializer"
)

// Constants for validation
const (
	MaxNameLength  = 100
	MaxEmailLength = 254
)

// AuthorRequest - body of POST /authors/ and PUT /authors/:id/
// Every field is required; PUT replaces the whole record.
type AuthorRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Bio   string `json:"bio"`
}

func (r AuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error(serializer.MsgBlank),
			validation.RuneLength(0, MaxNameLength).Error(serializer.MsgMaxLength(MaxNameLength)),
		),
		validation.Field(&r.Email,
			validation.Required.Error(serializer.MsgBlank),
			validation.RuneLength(0, MaxEmailLength).Error(serializer.MsgMaxLength(MaxEmailLength)),
			is.EmailFormat.Error(serializer.MsgInvalidEmail),
		),
		validation.Field(&r.Bio,
			validation.Required.Error(serializer.MsgBlank),
		),
	)
}

// ReadAuthorRequest pulls the author fields out of rd without validating them.
func ReadAuthorRequest(rd *serializer.Reader) AuthorRequest {
	return AuthorRequest{
		Name:  rd.String("name"),
		Email: rd.String("email"),
		Bio:   rd.String("bio"),
	}
}

// ParseAuthorRequest reads and validates an author body.
func ParseAuthorRequest(fields serializer.Fields) (AuthorRequest, error) {
	rd := serializer.NewReader(fields)
	req := ReadAuthorRequest(rd)
	if err := rd.Validate(req); err != nil {
		return AuthorRequest{}, err
	}
	return req, nil
}

// ToEntity converts the request into an Author carrying id.
func (r AuthorRequest) ToEntity(id int64) *Author {
	return &Author{
		ID:    id,
		Name:  r.Name,
		Email: r.Email,
		Bio:   r.Bio,
	}
}

// AuthorResponse - wire form of an author, every persisted field as is
type AuthorResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Bio   string `json:"bio"`
}

func (a Author) ToResponse() AuthorResponse {
	return AuthorResponse{
		ID:    a.ID,
		Name:  a.Name,
		Email: a.Email,
		Bio:   a.Bio,
	}
}

// ToResponseList never returns nil so an empty listing encodes as [].
func ToResponseList(authors []Author) []AuthorResponse {
	out := make([]AuthorResponse, 0, len(authors))
	for _, a := range authors {
		out = append(out, a.ToResponse())
	}
	return out
}
