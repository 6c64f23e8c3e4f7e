package entities

import "time"

// InvestmentType distinguishes recurring from one-off purchases
type InvestmentType string

const (
	InvestmentTypeSIP     InvestmentType = "SIP"
	InvestmentTypeLumpsum InvestmentType = "Lumpsum"
)

// Cart defaults applied when the request omits a field
const (
	DefaultCartUserID         = "guest"
	DefaultCartAmount         = 5000
	DefaultCartFrequency      = "Monthly"
	DefaultCartInvestmentType = InvestmentTypeSIP
)

// CartItem is a basket the user intends to invest in
type CartItem struct {
	ID             string         `json:"id"`
	BasketID       EntityID       `json:"basketId"`
	InvestmentType InvestmentType `json:"investmentType"`
	Amount         float64        `json:"amount"`
	Frequency      string         `json:"frequency"`
	AddedAt        time.Time      `json:"addedAt"`
}

// AddCartItemRequest is the body of POST /cart
type AddCartItemRequest struct {
	UserID         string          `json:"userId"`
	BasketID       *EntityID       `json:"basketId" binding:"required,min=1"`
	InvestmentType *InvestmentType `json:"investmentType"`
	Amount         *Number         `json:"amount" binding:"omitempty,gt=0"`
	Frequency      *string         `json:"frequency"`
}

// CartItemPatch carries the fields of PUT /cart/:id. Nil fields keep their current value.
type CartItemPatch struct {
	UserID         string          `json:"userId"`
	InvestmentType *InvestmentType `json:"investmentType"`
	Amount         *Number         `json:"amount" binding:"omitempty,gt=0"`
	Frequency      *string         `json:"frequency"`
}

// Apply merges the present fields into item
func (p CartItemPatch) Apply(item *CartItem) {
	if p.Amount != nil {
		item.Amount = float64(*p.Amount)
	}
	if p.InvestmentType != nil {
		item.InvestmentType = *p.InvestmentType
	}
	if p.Frequency != nil {
		item.Frequency = *p.Frequency
	}
}

// ClearCartRequest is the body of POST /cart/clear
type ClearCartRequest struct {
	UserID string `json:"userId"`
}
