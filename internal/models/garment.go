package models

// Multipart field names expected by the recommendation backend.
const (
	FieldTop    = "top"
	FieldBottom = "bottom"
	FieldShoes  = "shoes"
)

// Garment is one user-selected image. The bytes are opaque.
type Garment struct {
	Field       string
	Filename    string
	ContentType string
	Data        []byte
}

// Selection holds the garments of a single recommendation request.
// Shoes keep the order in which they were selected.
type Selection struct {
	Top    *Garment
	Bottom *Garment
	Shoes  []Garment
}

// Complete reports whether every garment category is present.
func (s *Selection) Complete() bool {
	return s != nil && s.Top != nil && s.Bottom != nil && len(s.Shoes) > 0
}
