package order

import (
	"strconv"

	"github.com/fstore/backoffice/internal/filter"
	"github.com/fstore/backoffice/internal/format"
)

// Column keys of the order-management table.
const (
	ColID            filter.Key = "id"
	ColCustomer      filter.Key = "user"
	ColContact       filter.Key = "contact"
	ColEmail         filter.Key = "email"
	ColAddress       filter.Key = "address"
	ColTotal         filter.Key = "total"
	ColStatus        filter.Key = "status"
	ColPaymentMethod filter.Key = "paymentMethod"
	ColNote          filter.Key = "note"
	ColCreatedAt     filter.Key = "createdAt"
	ColImages        filter.Key = "images"
)

// ColumnTitles maps every table column to its header, including the
// non-filterable images column.
var ColumnTitles = map[filter.Key]string{
	ColID:            "Order ID",
	ColCustomer:      "Customer",
	ColContact:       "Contact",
	ColEmail:         "Email",
	ColAddress:       "Address",
	ColTotal:         "Total",
	ColStatus:        "Status",
	ColPaymentMethod: "Payment method",
	ColNote:          "Note",
	ColCreatedAt:     "Order date",
	ColImages:        "Images",
}

// Columns is the filterable column registry for orders. The customer fields
// resolve through the nested user snapshot and createdAt matches against its
// display formatting; images is not registered (not filterable).
func Columns() *filter.Registry[Order] {
	reg := filter.NewRegistry[Order]()
	reg.Register(ColID, func(o Order) string { return strconv.Itoa(o.ID) })
	reg.Register(ColCustomer, func(o Order) string { return o.User.Name })
	reg.Register(ColContact, func(o Order) string { return o.User.PhoneNumber })
	reg.Register(ColEmail, func(o Order) string { return o.User.Email })
	reg.Register(ColAddress, func(o Order) string { return o.User.Address })
	reg.Register(ColTotal, func(o Order) string { return strconv.FormatFloat(o.Total, 'f', -1, 64) })
	reg.Register(ColStatus, func(o Order) string { return string(o.Status) })
	reg.Register(ColPaymentMethod, func(o Order) string { return string(o.PaymentMethod) })
	reg.Register(ColNote, func(o Order) string { return o.Note })
	reg.Register(ColCreatedAt, func(o Order) string { return format.Date(o.CreatedAt) })
	return reg
}

// Identity keys AcrossAll deduplication for orders.
func Identity(o Order) int {
	return o.ID
}
