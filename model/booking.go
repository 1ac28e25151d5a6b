package model

import (
	"time"

	"pawfect_grooming/utils"
)

type Booking struct {
	DTO
	UserID     uint             `gorm:"index;not null" json:"userId"`
	User       *User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	PetID      uint             `gorm:"index;not null" json:"petId"`
	Pet        *Pet             `gorm:"foreignKey:PetID" json:"pet,omitempty"`
	ServiceID  *uint            `gorm:"index" json:"serviceId"`
	Service    *ServiceOption   `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	PackageID  *uint            `gorm:"index" json:"packageId"`
	Package    *Package         `gorm:"foreignKey:PackageID" json:"package,omitempty"`
	Date       utils.CustomDate `gorm:"type:date;not null;index" json:"date"`
	Time       string           `gorm:"size:10;not null" json:"time"`
	Price      float64          `gorm:"type:decimal(10,2)" json:"price"`
	Count      int              `gorm:"not null" json:"count"`
	IsActive   bool             `gorm:"not null;index" json:"isActive"`
	Status     string           `gorm:"size:20;not null;index" json:"status"`
	PublicCode string           `gorm:"size:36;uniqueIndex" json:"publicCode"`
}

// ItemName returns the name of the booked service or package.
func (b Booking) ItemName() string {
	switch {
	case b.Service != nil:
		return b.Service.Name
	case b.Package != nil:
		return b.Package.Name
	}
	return ""
}

// BasePrice is the current price of the linked service or package.
func (b Booking) BasePrice() float64 {
	switch {
	case b.Service != nil:
		return b.Service.Price
	case b.Package != nil:
		return b.Package.Price
	}
	return b.Price
}

// BookingDraft is the in-progress booking kept in the session store between steps.
type BookingDraft struct {
	ServiceID *uint   `json:"serviceId,omitempty"`
	PackageID *uint   `json:"packageId,omitempty"`
	ItemName  string  `json:"itemName"`
	PetType   string  `json:"petType"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Price     float64 `json:"price"`
	PetID     *uint   `json:"petId,omitempty"`
	PetName   string  `json:"petName,omitempty"`
}

type ScheduleInput struct {
	ServiceID *uint  `json:"serviceId"`
	PackageID *uint  `json:"packageId"`
	Date      string `json:"date" validate:"required"`
	Time      string `json:"time" validate:"required"`
}

type SelectPetInput struct {
	PetID uint `json:"petId" validate:"required"`
}

type RescheduleInput struct {
	Date string `json:"date" validate:"required"`
	Time string `json:"time" validate:"required"`
}

type BookingFilter struct {
	Pagination
	Sorting
}

type AdminBookingFilter struct {
	Pagination
	Sorting
	Email     string `query:"email"`
	Status    string `query:"status"`
	ServiceID *uint  `query:"serviceId"`
	PackageID *uint  `query:"packageId"`
	ShowAll   bool   `query:"showAll"`
}

type AdminBookingUpdateInput struct {
	PetID     *uint    `json:"petId"`
	ServiceID *uint    `json:"serviceId"`
	PackageID *uint    `json:"packageId"`
	UserEmail *string  `json:"userEmail" validate:"omitempty,email"`
	Date      *string  `json:"date"`
	Time      *string  `json:"time"`
	Price     *float64 `json:"price" validate:"omitempty,min=0"`
	IsActive  *bool    `json:"isActive"`
}

type BookingStatusInput struct {
	Status string `json:"status" validate:"required"`
}

type SlotAvailability struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

type CalendarQuery struct {
	Year  int `query:"year" validate:"required,min=2000,max=2100"`
	Month int `query:"month" validate:"required,min=1,max=12"`
}

// StatusEvent is published on the appointment feed when an admin changes a booking status.
type StatusEvent struct {
	BookingID uint      `json:"bookingId"`
	Status    string    `json:"status"`
	UserEmail string    `json:"userEmail"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	ChangedAt time.Time `json:"changedAt"`
}
