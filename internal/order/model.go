package order

import (
	"time"

	"github.com/fstore/backoffice/internal/food"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusAccepted  Status = "ACCEPTED"
	StatusDelivered Status = "DELIVERED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

type PaymentMethod string

const (
	PaymentCash    PaymentMethod = "CASH"
	PaymentBanking PaymentMethod = "BANKING"
)

func (p PaymentMethod) String() string {
	return string(p)
}

// Customer is the denormalized buyer snapshot carried on every order. It does
// not track later changes to the account.
type Customer struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
	Address     string `json:"address"`
}

// Cart is one order line item. Food, FoodSize and Price are snapshots taken
// at order time, decoupled from the live product.
type Cart struct {
	ID       int           `json:"id"`
	Quantity int           `json:"quantity"`
	Price    float64       `json:"price"`
	Note     string        `json:"note"`
	Food     food.Food     `json:"food"`
	FoodSize food.FoodSize `json:"foodSize"`
}

type Order struct {
	ID            int           `json:"id"`
	Total         float64       `json:"total"`
	Status        Status        `json:"status"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Note          string        `json:"note"`
	Items         []Cart        `json:"items"`
	User          Customer      `json:"user"`
	CreatedAt     time.Time     `json:"createdAt"`
}

type Feedback struct {
	Rating  int    `json:"rating"`
	Content string `json:"content"`
}
