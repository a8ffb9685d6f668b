package order_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fstore/backoffice/internal/filter"
	"github.com/fstore/backoffice/internal/order"
)

func TestColumns_SpecialResolutions(t *testing.T) {
	reg := order.Columns()

	o := order.Order{
		ID: 42,
		User: order.Customer{
			Name:        "Alice Nguyen",
			PhoneNumber: "0987654321",
			Email:       "alice@shop.com",
			Address:     "12 Main St",
		},
		Status:        order.StatusAccepted,
		PaymentMethod: order.PaymentCash,
		CreatedAt:     time.Date(2024, 1, 5, 10, 30, 0, 0, time.UTC),
	}
	rows := []order.Order{o}

	tests := []struct {
		name  string
		col   filter.Key
		input string
		match bool
	}{
		{"customer_name_via_user_snapshot", order.ColCustomer, "Nguyen", true},
		{"contact_via_phone_number", order.ColContact, "0987", true},
		{"email", order.ColEmail, "@shop.com", true},
		{"address", order.ColAddress, "Main", true},
		{"created_at_matches_display_format", order.ColCreatedAt, "2024-01-05", true},
		{"created_at_does_not_match_raw_timestamp", order.ColCreatedAt, "10:30", false},
		{"status_generic_lookup", order.ColStatus, "ACCEPTED", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := filter.ByColumn(reg, tt.input, tt.col, rows)
			require.NoError(t, err)
			if tt.match {
				assert.Len(t, got, 1)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestColumns_ImagesIsNotFilterable(t *testing.T) {
	reg := order.Columns()

	_, err := filter.ByColumn(reg, "x", order.ColImages, nil)
	assert.Error(t, err)

	for _, key := range reg.Keys() {
		assert.NotEqual(t, order.ColImages, key)
	}

	// The table still knows the column for display purposes.
	_, shown := order.ColumnTitles[order.ColImages]
	assert.True(t, shown)
}
