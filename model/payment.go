package model

import "time"

type Payment struct {
	DTO
	BookingID             uint      `gorm:"index;not null" json:"bookingId"`
	Booking               *Booking  `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
	PaymentCode           string    `gorm:"size:40;uniqueIndex" json:"paymentCode"`
	PaymentMethod         string    `gorm:"size:30;not null" json:"paymentMethod"`
	PaymentType           string    `gorm:"size:20;not null" json:"paymentType"`
	Status                string    `gorm:"size:20;not null;index" json:"status"`
	Date                  time.Time `json:"date"`
	Amount                float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	CardLast4             string    `gorm:"size:4" json:"cardLast4,omitempty"`
	ExpiryDate            string    `gorm:"size:5" json:"expiryDate,omitempty"`
	Bank                  string    `gorm:"size:50" json:"bank,omitempty"`
	WalletProvider        string    `gorm:"size:50" json:"walletProvider,omitempty"`
	WalletID              string    `gorm:"size:50" json:"walletId,omitempty"`
	StripeSessionID       *string   `gorm:"size:255;index" json:"stripeSessionId,omitempty"`
	StripePaymentIntentID *string   `gorm:"size:255;uniqueIndex" json:"stripePaymentIntentId,omitempty"`
	VoucherID             *uint     `json:"voucherId,omitempty"`
	Settled               bool      `gorm:"not null" json:"settled"`
}

// SimulatedPaymentInput carries the fields of all three simulated methods; only the chosen
// method's fields are kept.
type SimulatedPaymentInput struct {
	BookingID      uint   `json:"bookingId" validate:"required"`
	PaymentType    string `json:"paymentType" validate:"required"`
	PaymentMethod  string `json:"paymentMethod" validate:"required"`
	CardNumber     string `json:"cardNumber"`
	ExpiryDate     string `json:"expiryDate"`
	CVV            string `json:"cvv"`
	Bank           string `json:"bank"`
	WalletProvider string `json:"walletProvider"`
	WalletID       string `json:"walletId"`
	WalletName     string `json:"walletName"`
}

type PaymentTarget struct {
	BookingID   uint   `json:"bookingId" query:"bookingId" validate:"required"`
	PaymentType string `json:"paymentType" query:"paymentType" validate:"required"`
}

type ConfirmIntentInput struct {
	PaymentIntentID string `json:"paymentIntentId" validate:"required"`
	BookingID       uint   `json:"bookingId" validate:"required"`
	PaymentType     string `json:"paymentType" validate:"required"`
}

type Quote struct {
	BookingID   uint    `json:"bookingId"`
	PaymentType string  `json:"paymentType"`
	Base        float64 `json:"base"`
	Discount    float64 `json:"discount"`
	Payable     float64 `json:"payable"`
	VoucherCode string  `json:"voucherCode,omitempty"`
}

type IntentResult struct {
	PaymentIntentID string  `json:"paymentIntentId"`
	ClientSecret    string  `json:"clientSecret"`
	Amount          float64 `json:"amount"`
	PublishableKey  string  `json:"publishableKey"`
}

type Receipt struct {
	PaymentCode   string    `json:"paymentCode"`
	PaymentMethod string    `json:"paymentMethod"`
	PaymentType   string    `json:"paymentType"`
	Status        string    `json:"status"`
	Date          time.Time `json:"date"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	PetName       string    `json:"petName"`
	ItemName      string    `json:"itemName"`
	BookingDate   string    `json:"bookingDate"`
	BookingTime   string    `json:"bookingTime"`
	BasePrice     float64   `json:"basePrice"`
	Discount      float64   `json:"discount"`
	ShowDiscount  bool      `json:"showDiscount"`
	TotalLabel    string    `json:"totalLabel"`
	Charged       float64   `json:"charged"`
}
