package order

import (
	"fmt"
	"time"

	"github.com/fstore/backoffice/internal/convert"
	"github.com/fstore/backoffice/internal/food"
)

// OrderRecord is the wire shape of an order as the storefront API returns it.
type OrderRecord struct {
	ID            int          `json:"id"`
	Total         float64      `json:"total"`
	Status        string       `json:"status"`
	PaymentMethod string       `json:"paymentMethod"`
	Note          string       `json:"note"`
	Items         []CartRecord `json:"items"`
	User          Customer     `json:"user"`
	CreatedAt     string       `json:"createdAt"`
}

type CartRecord struct {
	ID         int             `json:"id"`
	Quantity   int             `json:"quantity"`
	Price      float64         `json:"price"`
	Note       string          `json:"note"`
	Food       food.FoodRecord `json:"food"`
	FoodSizeID int             `json:"foodSizeId"`
}

// OrderDraft is what the client sends to create an order. The server computes
// total and createdAt and re-attaches the denormalized snapshots itself, so
// they are stripped here.
type OrderDraft struct {
	Items         []CartDraft `json:"items"`
	Status        string      `json:"status"`
	PaymentMethod string      `json:"paymentMethod"`
	Note          string      `json:"note"`
}

type CartDraft struct {
	ID         int    `json:"id"`
	Quantity   int    `json:"quantity"`
	FoodID     int    `json:"foodId"`
	FoodSizeID int    `json:"foodSizeId"`
	Note       string `json:"note"`
}

// ToReceive maps a wire order into the domain model. Status and payment
// method values must already match the enum domain: an unrecognized value is
// a payload defect to surface, never something to coerce silently.
func ToReceive(rec OrderRecord) (Order, error) {
	status := Status(rec.Status)
	switch status {
	case StatusPending, StatusAccepted, StatusDelivered, StatusCancelled:
	default:
		return Order{}, convert.NewError("order", "status", "unrecognized value "+rec.Status)
	}

	payment := PaymentMethod(rec.PaymentMethod)
	switch payment {
	case PaymentCash, PaymentBanking:
	default:
		return Order{}, convert.NewError("order", "paymentMethod", "unrecognized value "+rec.PaymentMethod)
	}

	createdAt, err := convert.ParseTime("order", "createdAt", rec.CreatedAt)
	if err != nil {
		return Order{}, err
	}

	items := make([]Cart, 0, len(rec.Items))
	for _, item := range rec.Items {
		cart, err := CartToReceive(item)
		if err != nil {
			return Order{}, err
		}
		items = append(items, cart)
	}

	return Order{
		ID:            rec.ID,
		Total:         rec.Total,
		Status:        status,
		PaymentMethod: payment,
		Note:          rec.Note,
		Items:         items,
		User:          rec.User,
		CreatedAt:     createdAt,
	}, nil
}

// CartToReceive maps a wire cart line into the domain model. The selected
// size is resolved against the food's size list by id; a missing size means
// the payload is incomplete and the whole conversion fails.
func CartToReceive(rec CartRecord) (Cart, error) {
	f, err := food.ToReceive(rec.Food)
	if err != nil {
		return Cart{}, err
	}

	var size *food.FoodSize
	for i := range f.FoodSizes {
		if f.FoodSizes[i].ID == rec.FoodSizeID {
			size = &f.FoodSizes[i]
			break
		}
	}
	if size == nil {
		return Cart{}, convert.NewError("cart", "foodSize", fmt.Sprintf("food %d has no size %d", f.ID, rec.FoodSizeID))
	}

	return Cart{
		ID:       rec.ID,
		Quantity: rec.Quantity,
		Price:    rec.Price,
		Note:     rec.Note,
		Food:     f,
		FoodSize: *size,
	}, nil
}

// ToSend builds the create-order payload from a domain order.
func ToSend(o Order) OrderDraft {
	items := make([]CartDraft, 0, len(o.Items))
	for _, cart := range o.Items {
		items = append(items, CartToSend(cart))
	}
	return OrderDraft{
		Items:         items,
		Status:        string(o.Status),
		PaymentMethod: string(o.PaymentMethod),
		Note:          o.Note,
	}
}

func CartToSend(c Cart) CartDraft {
	return CartDraft{
		ID:         c.ID,
		Quantity:   c.Quantity,
		FoodID:     c.Food.ID,
		FoodSizeID: c.FoodSize.ID,
		Note:       c.Note,
	}
}

// CartsToOrder builds a new order draft from an in-progress cart. Total is
// the sum of price*quantity in insertion order; the values are already
// rounded currency, so the sum must not be reordered.
func CartsToOrder(carts []Cart, payment PaymentMethod, note string, user Customer) Order {
	total := 0.0
	for _, cart := range carts {
		total += cart.Price * float64(cart.Quantity)
	}

	return Order{
		Total:         total,
		Status:        StatusPending,
		PaymentMethod: payment,
		Note:          note,
		Items:         carts,
		User:          user,
		CreatedAt:     time.Now(),
	}
}
