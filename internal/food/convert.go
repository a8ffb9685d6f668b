package food

import (
	"github.com/fstore/backoffice/internal/convert"
)

// FoodRecord is the wire shape of a food as the storefront API returns it.
type FoodRecord struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Category    *CategoryRecord  `json:"category"`
	FoodSizes   []FoodSizeRecord `json:"foodSizes"`
	Images      []string         `json:"images"`
	Tags        []string         `json:"tags"`
	Status      string           `json:"status"`
	Rating      float64          `json:"rating"`
}

type FoodSizeRecord struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Weight float64 `json:"weight"`
	Note   string  `json:"note"`
}

type CategoryRecord struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// ToReceive maps a wire food record into the domain model. An unrecognized
// status or a missing category is a payload defect, not something to coerce.
func ToReceive(rec FoodRecord) (Food, error) {
	status := Status(rec.Status)
	if status != StatusActive && status != StatusDisable {
		return Food{}, convert.NewError("food", "status", "unrecognized value "+rec.Status)
	}

	if rec.Category == nil {
		return Food{}, convert.NewError("food", "category", "missing")
	}

	if len(rec.FoodSizes) == 0 {
		return Food{}, convert.NewError("food", "foodSizes", "at least one size is required")
	}

	sizes := make([]FoodSize, 0, len(rec.FoodSizes))
	for _, s := range rec.FoodSizes {
		sizes = append(sizes, FoodSize(s))
	}

	return Food{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		Category:    CategoryToReceive(*rec.Category),
		FoodSizes:   sizes,
		Images:      rec.Images,
		Tags:        rec.Tags,
		Status:      status,
		Rating:      rec.Rating,
	}, nil
}

func CategoryToReceive(rec CategoryRecord) Category {
	return Category(rec)
}

// ToSend maps a domain food back into the wire shape. Rating is dropped: the
// server derives it from feedback.
func ToSend(f Food) FoodRecord {
	sizes := make([]FoodSizeRecord, 0, len(f.FoodSizes))
	for _, s := range f.FoodSizes {
		sizes = append(sizes, FoodSizeRecord(s))
	}

	category := CategoryRecord(f.Category)

	return FoodRecord{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		Category:    &category,
		FoodSizes:   sizes,
		Images:      f.Images,
		Tags:        f.Tags,
		Status:      string(f.Status),
	}
}
