package food

import (
	"fmt"
	"strings"

	"github.com/fstore/backoffice/internal/convert"
	"github.com/go-playground/validator/v10"
)

// FormData is the flat shape the food form collects before it is mapped into
// the nested Food model. The constraints mirror the storefront form schema.
type FormData struct {
	Name        string         `validate:"required,max=100"`
	Status      string         `validate:"required"`
	Category    string         `validate:"required"`
	Images      []string       `validate:"min=1,max=5,dive,required"`
	Sizes       []SizeFormData `validate:"min=1,dive"`
	Description string
	Tags        []string
}

type SizeFormData struct {
	ID       int
	SizeName string  `validate:"required,max=100"`
	Price    float64 `validate:"min=1"`
	Weight   float64 `validate:"min=1"`
	Note     string
}

// ValidationError carries per-field messages for user input that fails the
// form schema. It is fully handled before submission.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return "invalid food form: " + strings.Join(parts, "; ")
}

var formValidate = validator.New()

// ValidateForm checks the form against the schema and returns a
// ValidationError listing every violated field.
func ValidateForm(form FormData) error {
	err := formValidate.Struct(form)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("food: unexpected validation failure: %w", err)
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fields[fieldErr.Namespace()] = fmt.Sprintf("failed %q constraint", fieldErr.Tag())
	}
	return &ValidationError{Fields: fields}
}

// FormDataToFood maps the flat form shape into the nested Food model. The
// category is resolved by name against the known category list; size price
// and weight are already numeric at this stage (validated upstream).
func FormDataToFood(form FormData, categories []Category) (Food, error) {
	var category *Category
	for i := range categories {
		if categories[i].Name == form.Category {
			category = &categories[i]
			break
		}
	}
	if category == nil {
		return Food{}, convert.NewError("food", "category", "no category named "+form.Category)
	}

	status := StatusDisable
	if form.Status == "true" || form.Status == string(StatusActive) {
		status = StatusActive
	}

	sizes := make([]FoodSize, 0, len(form.Sizes))
	for _, s := range form.Sizes {
		sizes = append(sizes, FoodSize{
			ID:     s.ID,
			Name:   s.SizeName,
			Price:  s.Price,
			Weight: s.Weight,
			Note:   s.Note,
		})
	}

	return Food{
		Name:        form.Name,
		Description: form.Description,
		Category:    *category,
		FoodSizes:   sizes,
		Images:      form.Images,
		Tags:        form.Tags,
		Status:      status,
	}, nil
}
