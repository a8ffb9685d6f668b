package food

type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusDisable Status = "DISABLE"
)

func (s Status) String() string {
	return string(s)
}

type Category struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// FoodSize is a purchasable variant of a food (size name, price, weight).
type FoodSize struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Weight float64 `json:"weight"`
	Note   string  `json:"note"`
}

type Food struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Category    Category   `json:"category"`
	FoodSizes   []FoodSize `json:"foodSizes"`
	Images      []string   `json:"images"`
	Tags        []string   `json:"tags"`
	Status      Status     `json:"status"`
	Rating      float64    `json:"rating"`
}
