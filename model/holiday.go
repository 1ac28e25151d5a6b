package model

import "pawfect_grooming/utils"

// Holiday closes the salon for a whole day. A recurring holiday repeats every year on the same
// month and day.
type Holiday struct {
	DTO
	Name        string           `gorm:"size:100;not null" json:"name"`
	Date        utils.CustomDate `gorm:"type:date;not null;index" json:"date"`
	IsRecurring bool             `gorm:"not null;default:false" json:"isRecurring"`
}

type HolidayInput struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	IsRecurring bool   `json:"isRecurring"`
}

type HolidayFilter struct {
	Pagination
	Year *int `query:"year" validate:"omitempty,min=2000,max=2100"`
}
