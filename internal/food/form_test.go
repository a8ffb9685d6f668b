package food_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fstore/backoffice/internal/convert"
	"github.com/fstore/backoffice/internal/food"
)

func validForm() food.FormData {
	return food.FormData{
		Name:     "Margherita",
		Status:   "true",
		Category: "Pizza",
		Images:   []string{"https://img.example/m.png"},
		Sizes: []food.SizeFormData{
			{SizeName: "M", Price: 10, Weight: 350},
		},
		Tags: []string{"vegetarian"},
	}
}

func TestValidateForm(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*food.FormData)
		wantErr bool
	}{
		{"valid", func(f *food.FormData) {}, false},
		{"missing_name", func(f *food.FormData) { f.Name = "" }, true},
		{"no_images", func(f *food.FormData) { f.Images = nil }, true},
		{"too_many_images", func(f *food.FormData) {
			f.Images = []string{"1", "2", "3", "4", "5", "6"}
		}, true},
		{"no_sizes", func(f *food.FormData) { f.Sizes = nil }, true},
		{"zero_price_size", func(f *food.FormData) { f.Sizes[0].Price = 0 }, true},
		{"missing_size_name", func(f *food.FormData) { f.Sizes[0].SizeName = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			err := food.ValidateForm(form)
			if tt.wantErr {
				var vErr *food.ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.NotEmpty(t, vErr.Fields)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormDataToFood(t *testing.T) {
	categories := []food.Category{
		{ID: 1, Name: "Drinks"},
		{ID: 2, Name: "Pizza"},
	}

	t.Run("maps_flat_form_into_nested_food", func(t *testing.T) {
		got, err := food.FormDataToFood(validForm(), categories)
		require.NoError(t, err)

		assert.Equal(t, 2, got.Category.ID)
		assert.Equal(t, food.StatusActive, got.Status)
		require.Len(t, got.FoodSizes, 1)
		assert.Equal(t, "M", got.FoodSizes[0].Name)
		assert.Equal(t, 350.0, got.FoodSizes[0].Weight)
	})

	t.Run("disable_status", func(t *testing.T) {
		form := validForm()
		form.Status = "false"

		got, err := food.FormDataToFood(form, categories)
		require.NoError(t, err)
		assert.Equal(t, food.StatusDisable, got.Status)
	})

	t.Run("unknown_category", func(t *testing.T) {
		form := validForm()
		form.Category = "Sushi"

		_, err := food.FormDataToFood(form, categories)
		var convErr *convert.Error
		require.ErrorAs(t, err, &convErr)
		assert.Equal(t, "category", convErr.Field)
	})
}
