// Package report fetches and filters the pre-aggregated back-office reports.
// Rows are produced entirely server-side; the client only applies numeric
// range filters and renders them.
package report

// Metric names one of the range-filterable numeric columns of the customer
// report.
type Metric string

const (
	MetricSubTotal      Metric = "subTotal"
	MetricDiscountValue Metric = "discountValue"
	MetricRevenue       Metric = "revenue"
	MetricReturnRevenue Metric = "returnRevenue"
	MetricNetRevenue    Metric = "netRevenue"
)

// CustomerRow is one per-customer aggregate row.
type CustomerRow struct {
	CustomerID    int     `json:"customerId"`
	CustomerName  string  `json:"customerName"`
	SubTotal      float64 `json:"subTotal"`
	DiscountValue float64 `json:"discountValue"`
	Revenue       float64 `json:"revenue"`
	ReturnRevenue float64 `json:"returnRevenue"`
	NetRevenue    float64 `json:"netRevenue"`
}

// metricAccessors is the exhaustive metric projection table. A metric absent
// here is unknown to the filter stage and its condition is ignored.
var metricAccessors = map[Metric]func(CustomerRow) float64{
	MetricSubTotal:      func(r CustomerRow) float64 { return r.SubTotal },
	MetricDiscountValue: func(r CustomerRow) float64 { return r.DiscountValue },
	MetricRevenue:       func(r CustomerRow) float64 { return r.Revenue },
	MetricReturnRevenue: func(r CustomerRow) float64 { return r.ReturnRevenue },
	MetricNetRevenue:    func(r CustomerRow) float64 { return r.NetRevenue },
}

// Metrics returns the filterable metrics in report column order.
func Metrics() []Metric {
	return []Metric{
		MetricSubTotal,
		MetricDiscountValue,
		MetricRevenue,
		MetricReturnRevenue,
		MetricNetRevenue,
	}
}
