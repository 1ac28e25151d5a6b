package model

import "time"

type Voucher struct {
	DTO
	Code           string     `gorm:"size:32;uniqueIndex;not null" json:"code"`
	UserID         uint       `gorm:"index;not null" json:"userId"`
	DiscountAmount float64    `gorm:"type:decimal(10,2);not null" json:"discountAmount"`
	ExpiryDate     time.Time  `gorm:"not null" json:"expiryDate"`
	IsUsed         bool       `gorm:"not null" json:"isUsed"`
	UsedAt         *time.Time `json:"usedAt,omitempty"`
	BookingID      *uint      `json:"bookingId,omitempty"`
}

// VoucherReservation binds one voucher to one booking for the duration of a checkout.
type VoucherReservation struct {
	VoucherID uint    `json:"voucherId"`
	Code      string  `json:"code"`
	Amount    float64 `json:"amount"`
	BookingID uint    `json:"bookingId"`
}

type ApplyVoucherInput struct {
	BookingID   uint   `json:"bookingId" validate:"required"`
	Code        string `json:"code" validate:"required"`
	PaymentType string `json:"paymentType" validate:"required"`
}

type RemoveVoucherInput struct {
	BookingID uint `json:"bookingId" validate:"required"`
}

type VoucherWallet struct {
	Points    int       `json:"points"`
	Available []Voucher `json:"available"`
	Used      []Voucher `json:"used"`
	Expired   []Voucher `json:"expired"`
}
