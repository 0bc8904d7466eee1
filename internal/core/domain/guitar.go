package domain

import "errors"

// GuitarStyle is the catalog style classification.
type GuitarStyle string

const (
	StyleElectric GuitarStyle = "Electric"
	StyleAcoustic GuitarStyle = "Acoustic"
	// StyleAll is a listing filter value only; no guitar is stored with it.
	StyleAll GuitarStyle = "All"
)

var ErrGuitarNotFound = errors.New("guitar not found")
var ErrInvalidStyle = errors.New("invalid guitar style")
var ErrInvalidPage = errors.New("invalid page number")

// Valid reports whether the style is one of the two storable values.
func (s GuitarStyle) Valid() bool {
	return s == StyleElectric || s == StyleAcoustic
}

// ValidFilter reports whether the style is usable as a listing filter.
func (s GuitarStyle) ValidFilter() bool {
	return s.Valid() || s == StyleAll
}

// Guitar is a catalog item. All fields are required at creation time.
type Guitar struct {
	ID          string      `json:"id" bson:"_id,omitempty"`
	Brand       string      `json:"brand" bson:"brand"`
	Model       string      `json:"model" bson:"model"`
	Picture     string      `json:"picture" bson:"picture"`
	Style       GuitarStyle `json:"style" bson:"style"`
	Material    string      `json:"material" bson:"material"`
	Price       float64     `json:"price" bson:"price"`
	Description string      `json:"description" bson:"description"`
}
