package helper

import (
	"errors"
	"time"

	"pawfect_grooming/model"
	"pawfect_grooming/utils"

	"gorm.io/gorm"
)

// HolidayOn returns the holiday that closes the salon on date, or nil when it is open.
func HolidayOn(db *gorm.DB, date utils.CustomDate) (*model.Holiday, error) {
	var holidays []model.Holiday
	if err := db.Where("date = ? OR is_recurring = ?", date, true).Order("id").Find(&holidays).Error; err != nil {
		return nil, err
	}
	for i := range holidays {
		h := &holidays[i]
		if h.Date.String() == date.String() {
			return h, nil
		}
		if h.IsRecurring && h.Date.Month() == date.Month() && h.Date.Day() == date.Day() {
			return h, nil
		}
	}
	return nil, nil
}

// HolidaysInMonth maps each closed day of the month to the holiday's name.
func HolidaysInMonth(db *gorm.DB, year int, month time.Month) (map[string]string, error) {
	var holidays []model.Holiday
	first := utils.NewDate(year, month, 1)
	next := utils.NewDate(year, month+1, 1)
	if err := db.Where("(date >= ? AND date < ?) OR is_recurring = ?", first, next, true).
		Order("id").Find(&holidays).Error; err != nil {
		return nil, err
	}

	days := map[string]string{}
	for _, h := range holidays {
		if h.Date.Month() != month {
			continue
		}
		if !h.IsRecurring && h.Date.Year() != year {
			continue
		}
		day := utils.NewDate(year, month, h.Date.Day())
		if _, ok := days[day.String()]; !ok {
			days[day.String()] = h.Name
		}
	}
	return days, nil
}

func CreateHoliday(db *gorm.DB, input *model.HolidayInput) (*model.Holiday, error) {
	date, err := utils.ParseDate(input.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	holiday := model.Holiday{Name: input.Name, Date: date, IsRecurring: input.IsRecurring}
	if err := db.Create(&holiday).Error; err != nil {
		return nil, err
	}
	return &holiday, nil
}

func UpdateHoliday(db *gorm.DB, id uint, input *model.HolidayInput) (*model.Holiday, error) {
	var holiday model.Holiday
	err := db.First(&holiday, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrHolidayNotFound
	}
	if err != nil {
		return nil, err
	}

	date, err := utils.ParseDate(input.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	holiday.Name = input.Name
	holiday.Date = date
	holiday.IsRecurring = input.IsRecurring
	if err := db.Save(&holiday).Error; err != nil {
		return nil, err
	}
	return &holiday, nil
}

func DeleteHoliday(db *gorm.DB, id uint) error {
	result := db.Delete(&model.Holiday{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrHolidayNotFound
	}
	return nil
}
