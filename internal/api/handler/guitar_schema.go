package handler

import "github.com/guitarworld/guitar-store/internal/core/domain"

type guitarRequest struct {
	Brand       string  `json:"brand"       validate:"required"`
	Model       string  `json:"model"       validate:"required"`
	Picture     string  `json:"picture"     validate:"required,url"`
	Style       string  `json:"style"       validate:"required,oneof=Electric Acoustic"`
	Material    string  `json:"material"    validate:"required"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Description string  `json:"description" validate:"required"`
}

// editGuitarRequest allows partial payloads; present fields replace the
// stored ones via the repository's replace-by-id update.
type editGuitarRequest struct {
	Brand       string  `json:"brand"`
	Model       string  `json:"model"`
	Picture     string  `json:"picture"`
	Style       string  `json:"style" validate:"omitempty,oneof=Electric Acoustic"`
	Material    string  `json:"material"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

func (r guitarRequest) toDomain() *domain.Guitar {
	return &domain.Guitar{
		Brand:       r.Brand,
		Model:       r.Model,
		Picture:     r.Picture,
		Style:       domain.GuitarStyle(r.Style),
		Material:    r.Material,
		Price:       r.Price,
		Description: r.Description,
	}
}
