package entities

// PortfolioHolding is a basket position in the portfolio summary
type PortfolioHolding struct {
	BasketID       EntityID `json:"basketId"`
	BasketName     string   `json:"basketName"`
	Invested       float64  `json:"invested"`
	Current        float64  `json:"current"`
	Returns        float64  `json:"returns"`
	ReturnsPercent float64  `json:"returnsPercent"`
}

// SIPStatus is the state of a running SIP
type SIPStatus string

const (
	SIPStatusActive SIPStatus = "Active"
	SIPStatusPaused SIPStatus = "Paused"
)

// PortfolioSIP is an active systematic investment plan
type PortfolioSIP struct {
	BasketID   EntityID  `json:"basketId"`
	BasketName string    `json:"basketName"`
	Amount     float64   `json:"amount"`
	Frequency  string    `json:"frequency"`
	NextDate   string    `json:"nextDate"`
	Status     SIPStatus `json:"status"`
}

// PortfolioTransaction is an entry of the recent transactions list
type PortfolioTransaction struct {
	Date       string  `json:"date"`
	Type       string  `json:"type"`
	BasketName string  `json:"basketName"`
	Amount     float64 `json:"amount"`
	Status     string  `json:"status"`
}

// PortfolioPerformance is the value series of the portfolio chart
type PortfolioPerformance struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// Portfolio is the summary returned by GET /portfolio
type Portfolio struct {
	TotalValue     float64                `json:"totalValue"`
	Invested       float64                `json:"invested"`
	Returns        float64                `json:"returns"`
	ReturnsPercent float64                `json:"returnsPercent"`
	Holdings       []PortfolioHolding     `json:"holdings"`
	SIPs           []PortfolioSIP         `json:"sips"`
	Transactions   []PortfolioTransaction `json:"transactions"`
	Performance    PortfolioPerformance   `json:"performance"`
}
