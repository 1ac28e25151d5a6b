package helper

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pawfect_grooming/config"
	"pawfect_grooming/constants"
	"pawfect_grooming/model"
	"pawfect_grooming/session"
	"pawfect_grooming/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Now is the clock used by booking rules.
var Now = time.Now

// ParseSlot parses a YYYY-MM-DD date and an h:mm AM time, returning the date, the canonical
// time label and the appointment start in the salon's location.
func ParseSlot(dateStr, timeStr string) (utils.CustomDate, string, time.Time, error) {
	date, err := utils.ParseDate(dateStr)
	if err != nil {
		return utils.CustomDate{}, "", time.Time{}, ErrInvalidDate
	}
	t, err := time.Parse(constants.TIME_LAYOUT, strings.ToUpper(strings.TrimSpace(timeStr)))
	if err != nil {
		return utils.CustomDate{}, "", time.Time{}, ErrInvalidTime
	}

	label := ""
	for _, slot := range config.App.Booking.Slots {
		st, err := time.Parse(constants.TIME_LAYOUT, slot)
		if err == nil && st.Hour() == t.Hour() && st.Minute() == t.Minute() {
			label = st.Format(constants.TIME_LAYOUT)
			break
		}
	}
	if label == "" {
		return utils.CustomDate{}, "", time.Time{}, ErrUnknownSlot
	}

	start := time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, config.App.Location())
	return date, label, start, nil
}

// CheckSchedule applies the opening-day and lead-time rules to an appointment start.
func CheckSchedule(start, now time.Time) error {
	if config.App.IsClosed(start.Weekday()) {
		return ErrSalonClosed
	}
	now = now.In(start.Location())
	if !start.After(now) {
		return ErrPastSlot
	}
	y1, m1, d1 := start.Date()
	y2, m2, d2 := now.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 && start.Sub(now) < config.App.Booking.MinLeadTime {
		return ErrTooSoon
	}
	return nil
}

// IsSlotTaken reports whether an active booking other than excludeID holds the slot.
func IsSlotTaken(db *gorm.DB, date utils.CustomDate, timeLabel string, excludeID uint) (bool, error) {
	var count int64
	query := db.Model(&model.Booking{}).
		Where("date = ? AND time = ? AND is_active = ?", date, timeLabel, true)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ValidateSlot runs every date/time rule, holidays included, and returns the parsed slot.
func ValidateSlot(db *gorm.DB, dateStr, timeStr string, excludeID uint) (utils.CustomDate, string, error) {
	date, label, start, err := ParseSlot(dateStr, timeStr)
	if err != nil {
		return date, label, err
	}
	if err := CheckSchedule(start, Now()); err != nil {
		return date, label, err
	}
	holiday, err := HolidayOn(db, date)
	if err != nil {
		return date, label, err
	}
	if holiday != nil {
		return date, label, ErrHolidayClosed
	}
	taken, err := IsSlotTaken(db, date, label, excludeID)
	if err != nil {
		return date, label, err
	}
	if taken {
		return date, label, ErrSlotTaken
	}
	return date, label, nil
}

// SlotsForDate lists the configured slots of a day with their availability.
func SlotsForDate(db *gorm.DB, dateStr string) ([]model.SlotAvailability, error) {
	date, err := utils.ParseDate(dateStr)
	if err != nil {
		return nil, ErrInvalidDate
	}

	var taken []string
	if err := db.Model(&model.Booking{}).
		Where("date = ? AND is_active = ?", date, true).
		Pluck("time", &taken).Error; err != nil {
		return nil, err
	}
	busy := make(map[string]bool, len(taken))
	for _, t := range taken {
		busy[t] = true
	}
	holiday, err := HolidayOn(db, date)
	if err != nil {
		return nil, err
	}

	now := Now()
	slots := make([]model.SlotAvailability, 0, len(config.App.Booking.Slots))
	for _, slot := range config.App.Booking.Slots {
		_, label, start, err := ParseSlot(dateStr, slot)
		if err != nil {
			continue
		}
		slots = append(slots, model.SlotAvailability{
			Time:      label,
			Available: holiday == nil && !busy[label] && CheckSchedule(start, now) == nil,
		})
	}
	return slots, nil
}

// PetMatchesType reports whether a pet of petType can take a service offered for catalogType.
func PetMatchesType(catalogType, petType string) bool {
	switch {
	case strings.EqualFold(catalogType, constants.PET_TYPE_DOG):
		return strings.EqualFold(petType, constants.PET_TYPE_DOG)
	case strings.EqualFold(catalogType, constants.PET_TYPE_CAT):
		return strings.EqualFold(petType, constants.PET_TYPE_CAT)
	case strings.EqualFold(catalogType, constants.PET_TYPE_CAT_DOG):
		return strings.EqualFold(petType, constants.PET_TYPE_DOG) || strings.EqualFold(petType, constants.PET_TYPE_CAT)
	}
	return true
}

// PetsForType returns the user's pets eligible for a catalog pet type.
func PetsForType(db *gorm.DB, userID uint, catalogType string) ([]model.Pet, error) {
	var pets []model.Pet
	if err := db.Where("user_id = ?", userID).Order("name").Find(&pets).Error; err != nil {
		return nil, err
	}
	eligible := make([]model.Pet, 0, len(pets))
	for _, p := range pets {
		if PetMatchesType(catalogType, p.PetType) {
			eligible = append(eligible, p)
		}
	}
	return eligible, nil
}

// loadItem resolves exactly one of serviceID and packageID.
func loadItem(db *gorm.DB, serviceID, packageID *uint) (name, petType string, price float64, err error) {
	hasService := serviceID != nil && *serviceID != 0
	hasPackage := packageID != nil && *packageID != 0
	if hasService == hasPackage {
		return "", "", 0, ErrChooseOneItem
	}

	var item model.CatalogItem
	if hasService {
		var s model.ServiceOption
		err = db.First(&s, *serviceID).Error
		item = s.CatalogItem
	} else {
		var p model.Package
		err = db.First(&p, *packageID).Error
		item = p.CatalogItem
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", "", 0, ErrServiceNotFound
	}
	if err != nil {
		return "", "", 0, err
	}
	return item.Name, item.PetType, item.Price, nil
}

// StartDraft is the schedule step: it validates the slot and item and stores a new draft.
func StartDraft(ctx context.Context, db *gorm.DB, store session.Store, userID uint, input *model.ScheduleInput) (*model.BookingDraft, error) {
	date, label, err := ValidateSlot(db, input.Date, input.Time, 0)
	if err != nil {
		return nil, err
	}
	name, petType, price, err := loadItem(db, input.ServiceID, input.PackageID)
	if err != nil {
		return nil, err
	}

	draft := &model.BookingDraft{
		ItemName: name,
		PetType:  petType,
		Date:     date.String(),
		Time:     label,
		Price:    price,
	}
	if input.ServiceID != nil && *input.ServiceID != 0 {
		draft.ServiceID = input.ServiceID
	} else {
		draft.PackageID = input.PackageID
	}

	if err := store.SetDraft(ctx, userID, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// SelectDraftPet is the pet step.
func SelectDraftPet(ctx context.Context, db *gorm.DB, store session.Store, user *model.User, petID uint) (*model.BookingDraft, error) {
	if !user.IsActive {
		return nil, ErrUserInactive
	}
	draft, err := store.GetDraft(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, ErrNoDraft
	}

	var pet model.Pet
	if err := db.Where("id = ? AND user_id = ?", petID, user.ID).First(&pet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPetNotFound
		}
		return nil, err
	}
	if !PetMatchesType(draft.PetType, pet.PetType) {
		return nil, ErrPetTypeMismatch
	}

	draft.PetID = &pet.ID
	draft.PetName = pet.Name
	if err := store.SetDraft(ctx, user.ID, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// ConfirmDraft turns the stored draft into a PendingPayment booking.
func ConfirmDraft(ctx context.Context, db *gorm.DB, store session.Store, user *model.User) (*model.Booking, error) {
	if !user.IsActive {
		return nil, ErrUserInactive
	}
	draft, err := store.GetDraft(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, ErrNoDraft
	}
	if draft.PetID == nil || draft.Date == "" || draft.Time == "" {
		return nil, ErrDraftIncomplete
	}

	var booking model.Booking
	err = db.Transaction(func(tx *gorm.DB) error {
		date, label, _, err := ParseSlot(draft.Date, draft.Time)
		if err != nil {
			return err
		}

		var dup int64
		if err := tx.Model(&model.Booking{}).
			Where("user_id = ? AND pet_id = ? AND date = ? AND time = ? AND is_active = ?", user.ID, *draft.PetID, date, label, true).
			Count(&dup).Error; err != nil {
			return err
		}
		if dup > 0 {
			return ErrDuplicateBooking
		}

		if _, _, err := ValidateSlot(tx, draft.Date, draft.Time, 0); err != nil {
			return err
		}
		_, _, price, err := loadItem(tx, draft.ServiceID, draft.PackageID)
		if err != nil {
			return err
		}

		booking = model.Booking{
			UserID:     user.ID,
			PetID:      *draft.PetID,
			ServiceID:  draft.ServiceID,
			PackageID:  draft.PackageID,
			Date:       date,
			Time:       label,
			Price:      price,
			Count:      1,
			IsActive:   true,
			Status:     constants.BOOKING_PENDING_PAYMENT,
			PublicCode: uuid.NewString(),
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}
		return SyncTopSellers(tx)
	})
	if err != nil {
		return nil, err
	}

	if err := store.ClearDraft(ctx, user.ID); err != nil {
		log.Warn().Err(err).Uint("userId", user.ID).Msg("clear booking draft")
	}

	loaded, err := LoadBooking(db, booking.ID)
	if err != nil {
		return &booking, nil
	}
	QueueBookingConfirmation(db, loaded)
	return loaded, nil
}

// LoadBooking fetches a booking with its owner, pet and item.
func LoadBooking(db *gorm.DB, id uint) (*model.Booking, error) {
	var booking model.Booking
	err := db.Preload("User").Preload("Pet").Preload("Service").Preload("Package").First(&booking, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// LoadOwnBooking is LoadBooking restricted to the owner.
func LoadOwnBooking(db *gorm.DB, userID, id uint) (*model.Booking, error) {
	booking, err := LoadBooking(db, id)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

func Reschedule(db *gorm.DB, userID, bookingID uint, input *model.RescheduleInput) (*model.Booking, error) {
	booking, err := LoadOwnBooking(db, userID, bookingID)
	if err != nil {
		return nil, err
	}
	if !booking.IsActive {
		return nil, ErrBookingInactive
	}

	date, label, err := ValidateSlot(db, input.Date, input.Time, booking.ID)
	if err != nil {
		return nil, err
	}
	if err := db.Model(booking).Updates(map[string]any{"date": date, "time": label}).Error; err != nil {
		return nil, err
	}
	booking.Date, booking.Time = date, label
	return booking, nil
}

// CancelBooking cancels an owner's booking, fails its pending payments and releases a voucher
// reserved for it.
func CancelBooking(ctx context.Context, db *gorm.DB, store session.Store, userID, bookingID uint) (*model.Booking, error) {
	booking, err := LoadOwnBooking(db, userID, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status == constants.BOOKING_COMPLETED {
		return nil, ErrBookingCompleted
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(booking).Updates(map[string]any{
			"status":    constants.BOOKING_CANCELLED,
			"is_active": false,
		}).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Payment{}).
			Where("booking_id = ? AND status = ?", booking.ID, constants.PAYMENT_PENDING).
			Update("status", constants.PAYMENT_FAILED).Error; err != nil {
			return err
		}
		return SyncTopSellers(tx)
	})
	if err != nil {
		return nil, err
	}
	booking.Status, booking.IsActive = constants.BOOKING_CANCELLED, false

	releaseReservation(ctx, store, userID, booking.ID)
	return booking, nil
}

func releaseReservation(ctx context.Context, store session.Store, userID, bookingID uint) {
	res, err := store.GetVoucher(ctx, userID)
	if err != nil {
		log.Warn().Err(err).Uint("userId", userID).Msg("read voucher reservation")
		return
	}
	if res != nil && res.BookingID == bookingID {
		if err := store.ClearVoucher(ctx, userID); err != nil {
			log.Warn().Err(err).Uint("userId", userID).Msg("clear voucher reservation")
		}
	}
}

// MonthCalendar maps each day of the month to its active slots, "<time> (<owner name>)".
func MonthCalendar(db *gorm.DB, year, month int) (map[string][]string, error) {
	first := utils.NewDate(year, time.Month(month), 1)
	next := utils.NewDate(year, time.Month(month)+1, 1)

	var bookings []model.Booking
	if err := db.Preload("User").
		Where("is_active = ? AND date >= ? AND date < ?", true, first, next).
		Order("date").Find(&bookings).Error; err != nil {
		return nil, err
	}

	calendar := map[string][]string{}
	for _, b := range bookings {
		owner := ""
		if b.User != nil {
			owner = b.User.Name
		}
		day := b.Date.String()
		calendar[day] = append(calendar[day], fmt.Sprintf("%s (%s)", b.Time, owner))
	}
	for day, slots := range calendar {
		sortSlots(slots)
		calendar[day] = slots
	}
	return calendar, nil
}

func sortSlots(slots []string) {
	minutes := func(s string) int {
		label, _, _ := strings.Cut(s, " (")
		t, err := time.Parse(constants.TIME_LAYOUT, label)
		if err != nil {
			return 0
		}
		return t.Hour()*60 + t.Minute()
	}
	for i := 1; i < len(slots); i++ {
		for j := i; j > 0 && minutes(slots[j]) < minutes(slots[j-1]); j-- {
			slots[j], slots[j-1] = slots[j-1], slots[j]
		}
	}
}

type itemCount struct {
	ItemID uint
	N      int
}

// SyncTopSellers recomputes ServiceOption.Count and Package.Count from active bookings.
func SyncTopSellers(tx *gorm.DB) error {
	recount := func(column string, row any) error {
		var counts []itemCount
		if err := tx.Model(&model.Booking{}).
			Select(column+" AS item_id, COUNT(*) AS n").
			Where(column+" IS NOT NULL AND is_active = ?", true).
			Group(column).
			Scan(&counts).Error; err != nil {
			return err
		}
		if err := tx.Model(row).Where("count <> ?", 0).Update("count", 0).Error; err != nil {
			return err
		}
		for _, c := range counts {
			if err := tx.Model(row).Where("id = ?", c.ItemID).Update("count", c.N).Error; err != nil {
				return err
			}
		}
		return nil
	}

	if err := recount("service_id", &model.ServiceOption{}); err != nil {
		return fmt.Errorf("sync service counts: %w", err)
	}
	if err := recount("package_id", &model.Package{}); err != nil {
		return fmt.Errorf("sync package counts: %w", err)
	}
	return nil
}

// AdminUpdateBooking applies the non-nil fields of input. changed is false when nothing differs.
func AdminUpdateBooking(db *gorm.DB, bookingID uint, input *model.AdminBookingUpdateInput) (*model.Booking, bool, error) {
	booking, err := LoadBooking(db, bookingID)
	if err != nil {
		return nil, false, err
	}

	updates := map[string]any{}

	if input.PetID != nil && *input.PetID != booking.PetID {
		var pet model.Pet
		if err := db.First(&pet, *input.PetID).Error; err != nil {
			return nil, false, ErrPetNotFound
		}
		updates["pet_id"] = pet.ID
	}

	if (input.ServiceID != nil && *input.ServiceID != 0) || (input.PackageID != nil && *input.PackageID != 0) {
		_, _, _, err := loadItem(db, input.ServiceID, input.PackageID)
		if err != nil {
			return nil, false, err
		}
		if input.ServiceID != nil && *input.ServiceID != 0 {
			if booking.ServiceID == nil || *booking.ServiceID != *input.ServiceID {
				updates["service_id"] = *input.ServiceID
				updates["package_id"] = nil
			}
		} else if booking.PackageID == nil || *booking.PackageID != *input.PackageID {
			updates["package_id"] = *input.PackageID
			updates["service_id"] = nil
		}
	}

	if input.UserEmail != nil && !strings.EqualFold(*input.UserEmail, emailOf(booking.User)) {
		owner, err := GetUserByEmail(db, strings.ToLower(strings.TrimSpace(*input.UserEmail)))
		if err != nil {
			return nil, false, err
		}
		if owner == nil {
			return nil, false, ErrUserNotFound
		}
		if owner.ID != booking.UserID {
			updates["user_id"] = owner.ID
		}
	}

	if input.Date != nil || input.Time != nil {
		dateStr, timeStr := booking.Date.String(), booking.Time
		if input.Date != nil {
			dateStr = *input.Date
		}
		if input.Time != nil {
			timeStr = *input.Time
		}
		date, label, _, err := ParseSlot(dateStr, timeStr)
		if err != nil {
			return nil, false, err
		}
		if date.String() != booking.Date.String() || label != booking.Time {
			taken, err := IsSlotTaken(db, date, label, booking.ID)
			if err != nil {
				return nil, false, err
			}
			if taken {
				return nil, false, ErrSlotTaken
			}
			updates["date"] = date
			updates["time"] = label
		}
	}

	if input.Price != nil && utils.Money(*input.Price) != utils.Money(booking.Price) {
		updates["price"] = utils.Money(*input.Price)
	}

	if input.IsActive != nil && *input.IsActive != booking.IsActive {
		updates["is_active"] = *input.IsActive
		if *input.IsActive && booking.Status == constants.BOOKING_CANCELLED {
			updates["status"] = constants.BOOKING_PENDING_PAYMENT
		}
	}

	if len(updates) == 0 {
		return booking, false, nil
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Booking{}).Where("id = ?", booking.ID).Updates(updates).Error; err != nil {
			return err
		}
		return SyncTopSellers(tx)
	})
	if err != nil {
		return nil, false, err
	}

	updated, err := LoadBooking(db, booking.ID)
	return updated, true, err
}

func emailOf(user *model.User) string {
	if user == nil {
		return ""
	}
	return user.Email
}

// SetBookingStatus is the admin status change. Cancelled bookings become inactive, any other
// status reactivates the booking.
func SetBookingStatus(db *gorm.DB, bookingID uint, status string) (*model.Booking, error) {
	status, ok := utils.CanonicalValue(status, constants.BOOKING_STATUS)
	if !ok {
		return nil, ErrInvalidStatus
	}
	booking, err := LoadBooking(db, bookingID)
	if err != nil {
		return nil, err
	}

	active := status != constants.BOOKING_CANCELLED
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Booking{}).Where("id = ?", booking.ID).
			Updates(map[string]any{"status": status, "is_active": active}).Error; err != nil {
			return err
		}
		return SyncTopSellers(tx)
	})
	if err != nil {
		return nil, err
	}
	booking.Status, booking.IsActive = status, active
	return booking, nil
}

// DeleteBooking removes a booking and its payments.
func DeleteBooking(db *gorm.DB, bookingID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.Booking{}, bookingID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrBookingNotFound
		}
		if err := tx.Where("booking_id = ?", bookingID).Delete(&model.Payment{}).Error; err != nil {
			return err
		}
		return SyncTopSellers(tx)
	})
}

// HasActiveBookings reports whether an active booking references column = id.
func HasActiveBookings(db *gorm.DB, column string, id uint) (bool, error) {
	var count int64
	err := db.Model(&model.Booking{}).Where(column+" = ? AND is_active = ?", id, true).Count(&count).Error
	return count > 0, err
}
