package helper

import (
	"testing"
	"time"

	"pawfect_grooming/constants"
	"pawfect_grooming/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlot(t *testing.T) {
	setup(t)

	date, label, start, err := ParseSlot("2026-10-20", " 9:00 am")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-20", date.String())
	assert.Equal(t, "9:00 AM", label)
	assert.Equal(t, 9, start.Hour())

	_, _, _, err = ParseSlot("20-10-2026", "9:00 AM")
	assert.ErrorIs(t, err, ErrInvalidDate)
	_, _, _, err = ParseSlot("2026-10-20", "nine")
	assert.ErrorIs(t, err, ErrInvalidTime)
	_, _, _, err = ParseSlot("2026-10-20", "9:30 AM")
	assert.ErrorIs(t, err, ErrUnknownSlot)
}

func TestCheckSchedule(t *testing.T) {
	setup(t)
	at := func(date, slot string) time.Time {
		_, _, start, err := ParseSlot(date, slot)
		require.NoError(t, err)
		return start
	}

	assert.ErrorIs(t, CheckSchedule(at("2026-10-25", "10:00 AM"), monday), ErrSalonClosed)
	assert.ErrorIs(t, CheckSchedule(at("2026-10-17", "10:00 AM"), monday), ErrPastSlot)
	assert.ErrorIs(t, CheckSchedule(at("2026-10-19", "9:00 AM"), monday.Add(30*time.Minute)), ErrTooSoon)
	assert.NoError(t, CheckSchedule(at("2026-10-19", "9:00 AM"), monday))
	assert.NoError(t, CheckSchedule(at("2026-10-20", "9:00 AM"), monday.Add(12*time.Hour)))
}

func TestSlotsForDate(t *testing.T) {
	e := setup(t)
	user := e.user(t, 0)
	pet := e.pet(t, user, constants.PET_TYPE_DOG)
	svc := e.service(t, "Bath", 45, constants.PET_TYPE_DOG)
	e.booking(t, user, pet, svc, "2026-10-19", "11:00 AM", constants.BOOKING_PENDING_PAYMENT)
	e.booking(t, user, pet, svc, "2026-10-19", "1:00 PM", constants.BOOKING_CANCELLED)

	Now = func() time.Time { return monday.Add(30 * time.Minute) }
	slots, err := SlotsForDate(e.db, "2026-10-19")
	require.NoError(t, err)
	require.Len(t, slots, 9)

	available := map[string]bool{}
	for _, s := range slots {
		available[s.Time] = s.Available
	}
	assert.False(t, available["9:00 AM"], "less than an hour away")
	assert.True(t, available["10:00 AM"])
	assert.False(t, available["11:00 AM"], "booked")
	assert.True(t, available["1:00 PM"], "cancelled bookings free the slot")

	_, err = SlotsForDate(e.db, "someday")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestPetMatchesType(t *testing.T) {
	assert.True(t, PetMatchesType(constants.PET_TYPE_DOG, "dog"))
	assert.False(t, PetMatchesType(constants.PET_TYPE_DOG, constants.PET_TYPE_CAT))
	assert.True(t, PetMatchesType(constants.PET_TYPE_CAT_DOG, constants.PET_TYPE_CAT))
	assert.False(t, PetMatchesType(constants.PET_TYPE_CAT_DOG, "Rabbit"))
}

func TestBookingDraftFlow(t *testing.T) {
	e := setup(t)
	user := e.user(t, 0)
	dog := e.pet(t, user, constants.PET_TYPE_DOG)
	cat := e.pet(t, user, constants.PET_TYPE_CAT)
	svc := e.service(t, "Full Dog Groom", 90, constants.PET_TYPE_DOG)

	_, err := ConfirmDraft(e.ctx, e.db, e.store, user)
	assert.ErrorIs(t, err, ErrNoDraft)

	_, err = StartDraft(e.ctx, e.db, e.store, user.ID, &model.ScheduleInput{Date: "2026-10-20", Time: "10:00 AM"})
	assert.ErrorIs(t, err, ErrChooseOneItem)

	draft, err := StartDraft(e.ctx, e.db, e.store, user.ID, &model.ScheduleInput{ServiceID: &svc.ID, Date: "2026-10-20", Time: "10:00 am"})
	require.NoError(t, err)
	assert.Equal(t, "Full Dog Groom", draft.ItemName)
	assert.Equal(t, "10:00 AM", draft.Time)
	assert.Equal(t, 90.0, draft.Price)

	_, err = ConfirmDraft(e.ctx, e.db, e.store, user)
	assert.ErrorIs(t, err, ErrDraftIncomplete)

	_, err = SelectDraftPet(e.ctx, e.db, e.store, user, cat.ID)
	assert.ErrorIs(t, err, ErrPetTypeMismatch)

	draft, err = SelectDraftPet(e.ctx, e.db, e.store, user, dog.ID)
	require.NoError(t, err)
	assert.Equal(t, dog.Name, draft.PetName)

	booking, err := ConfirmDraft(e.ctx, e.db, e.store, user)
	require.NoError(t, err)
	assert.Equal(t, constants.BOOKING_PENDING_PAYMENT, booking.Status)
	assert.True(t, booking.IsActive)
	assert.Equal(t, 90.0, booking.Price)
	assert.NotEmpty(t, booking.PublicCode)
	assert.Equal(t, "Full Dog Groom", booking.ItemName())

	left, err := e.store.GetDraft(e.ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, left)

	var fresh model.ServiceOption
	e.reload(t, &fresh, svc.ID)
	assert.Equal(t, 1, fresh.Count)
	assert.Equal(t, int64(1), e.count(t, &model.MailOutbox{}, "kind = ?", constants.MAIL_BOOKING_CONFIRM))

	other := e.user(t, 0)
	_, err = StartDraft(e.ctx, e.db, e.store, other.ID, &model.ScheduleInput{ServiceID: &svc.ID, Date: "2026-10-20", Time: "10:00 AM"})
	assert.ErrorIs(t, err, ErrSlotTaken)

	_, err = StartDraft(e.ctx, e.db, e.store, other.ID, &model.ScheduleInput{ServiceID: &svc.ID, Date: "2026-10-25", Time: "10:00 AM"})
	assert.ErrorIs(t, err, ErrSalonClosed)
}

func TestSelectDraftPetInactive(t *testing.T) {
	e := setup(t)
	user := e.user(t, 0)
	user.IsActive = false

	_, err := SelectDraftPet(e.ctx, e.db, e.store, user, 1)
	assert.ErrorIs(t, err, ErrUserInactive)
}

func TestRescheduleAndCancel(t *testing.T) {
	e := setup(t)
	user := e.user(t, 0)
	pet := e.pet(t, user, constants.PET_TYPE_DOG)
	svc := e.service(t, "Bath", 45, constants.PET_TYPE_DOG)
	booking := e.booking(t, user, pet, svc, "2026-10-20", "9:00 AM", constants.BOOKING_PENDING_PAYMENT)
	e.booking(t, user, pet, svc, "2026-10-20", "10:00 AM", constants.BOOKING_PENDING_PAYMENT)
	require.NoError(t, SyncTopSellers(e.db))

	_, err := Reschedule(e.db, user.ID, booking.ID, &model.RescheduleInput{Date: "2026-10-20", Time: "10:00 AM"})
	assert.ErrorIs(t, err, ErrSlotTaken)

	moved, err := Reschedule(e.db, user.ID, booking.ID, &model.RescheduleInput{Date: "2026-10-21", Time: "3:00 pm"})
	require.NoError(t, err)
	assert.Equal(t, "2026-10-21", moved.Date.String())
	assert.Equal(t, "3:00 PM", moved.Time)

	stranger := e.user(t, 0)
	_, err = CancelBooking(e.ctx, e.db, e.store, stranger.ID, booking.ID)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	require.NoError(t, e.db.Create(&model.Payment{BookingID: booking.ID, PaymentCode: "PAY-C", PaymentMethod: constants.METHOD_STRIPE,
		PaymentType: constants.PAYMENT_TYPE_FULL, Status: constants.PAYMENT_PENDING, Date: monday, Amount: 45}).Error)
	require.NoError(t, e.store.SetVoucher(e.ctx, user.ID, &model.VoucherReservation{VoucherID: 1, Code: "ABCDEF", Amount: 5, BookingID: booking.ID}))

	cancelled, err := CancelBooking(e.ctx, e.db, e.store, user.ID, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.BOOKING_CANCELLED, cancelled.Status)
	assert.False(t, cancelled.IsActive)
	assert.Equal(t, int64(1), e.count(t, &model.Payment{}, "booking_id = ? AND status = ?", booking.ID, constants.PAYMENT_FAILED))

	res, err := e.store.GetVoucher(e.ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, res)

	var fresh model.ServiceOption
	e.reload(t, &fresh, svc.ID)
	assert.Equal(t, 1, fresh.Count)

	_, err = Reschedule(e.db, user.ID, booking.ID, &model.RescheduleInput{Date: "2026-10-22", Time: "9:00 AM"})
	assert.ErrorIs(t, err, ErrBookingInactive)

	done := e.booking(t, user, pet, svc, "2026-10-02", "9:00 AM", constants.BOOKING_COMPLETED)
	_, err = CancelBooking(e.ctx, e.db, e.store, user.ID, done.ID)
	assert.ErrorIs(t, err, ErrBookingCompleted)
}

func TestMonthCalendar(t *testing.T) {
	e := setup(t)
	user := e.user(t, 0)
	pet := e.pet(t, user, constants.PET_TYPE_DOG)
	svc := e.service(t, "Bath", 45, constants.PET_TYPE_DOG)
	e.booking(t, user, pet, svc, "2026-10-20", "2:00 PM", constants.BOOKING_DEPOSIT)
	e.booking(t, user, pet, svc, "2026-10-20", "9:00 AM", constants.BOOKING_PENDING_PAYMENT)
	e.booking(t, user, pet, svc, "2026-10-21", "9:00 AM", constants.BOOKING_CANCELLED)
	e.booking(t, user, pet, svc, "2026-11-02", "9:00 AM", constants.BOOKING_PENDING_PAYMENT)

	calendar, err := MonthCalendar(e.db, 2026, 10)
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{
		"2026-10-20": {"9:00 AM (" + user.Name + ")", "2:00 PM (" + user.Name + ")"},
	}, calendar)
}

func TestAdminUpdateBooking(t *testing.T) {
	e := setup(t)
	user := e.user(t, 0)
	pet := e.pet(t, user, constants.PET_TYPE_DOG)
	bath := e.service(t, "Bath", 45, constants.PET_TYPE_DOG)
	spa := e.pkg(t, "Spa Day", 120, constants.PET_TYPE_CAT_DOG)
	booking := e.booking(t, user, pet, bath, "2026-10-20", "9:00 AM", constants.BOOKING_CANCELLED)
	e.booking(t, user, pet, bath, "2026-10-20", "11:00 AM", constants.BOOKING_PENDING_PAYMENT)

	_, changed, err := AdminUpdateBooking(e.db, booking.ID, &model.AdminBookingUpdateInput{})
	require.NoError(t, err)
	assert.False(t, changed)

	taken := "11:00 AM"
	_, _, err = AdminUpdateBooking(e.db, booking.ID, &model.AdminBookingUpdateInput{Time: &taken})
	assert.ErrorIs(t, err, ErrSlotTaken)

	active := true
	price := 99.5
	updated, changed, err := AdminUpdateBooking(e.db, booking.ID, &model.AdminBookingUpdateInput{
		PackageID: &spa.ID,
		Price:     &price,
		IsActive:  &active,
	})
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Nil(t, updated.ServiceID)
	require.NotNil(t, updated.PackageID)
	assert.Equal(t, spa.ID, *updated.PackageID)
	assert.Equal(t, 99.5, updated.Price)
	assert.True(t, updated.IsActive)
	assert.Equal(t, constants.BOOKING_PENDING_PAYMENT, updated.Status)

	var fresh model.Package
	e.reload(t, &fresh, spa.ID)
	assert.Equal(t, 1, fresh.Count)

	nobody := "nobody@example.com"
	_, _, err = AdminUpdateBooking(e.db, booking.ID, &model.AdminBookingUpdateInput{UserEmail: &nobody})
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, _, err = AdminUpdateBooking(e.db, 9999, &model.AdminBookingUpdateInput{})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestSetBookingStatus(t *testing.T) {
	e := setup(t)
	user := e.user(t, 0)
	pet := e.pet(t, user, constants.PET_TYPE_DOG)
	svc := e.service(t, "Bath", 45, constants.PET_TYPE_DOG)
	booking := e.booking(t, user, pet, svc, "2026-10-20", "9:00 AM", constants.BOOKING_PENDING_PAYMENT)

	_, err := SetBookingStatus(e.db, booking.ID, "Lost")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	updated, err := SetBookingStatus(e.db, booking.ID, "cancelled")
	require.NoError(t, err)
	assert.Equal(t, constants.BOOKING_CANCELLED, updated.Status)
	assert.False(t, updated.IsActive)

	busy, err := HasActiveBookings(e.db, "service_id", svc.ID)
	require.NoError(t, err)
	assert.False(t, busy)

	updated, err = SetBookingStatus(e.db, booking.ID, constants.BOOKING_COMPLETED)
	require.NoError(t, err)
	assert.True(t, updated.IsActive)

	busy, err = HasActiveBookings(e.db, "service_id", svc.ID)
	require.NoError(t, err)
	assert.True(t, busy)

	require.NoError(t, DeleteBooking(e.db, booking.ID))
	assert.ErrorIs(t, DeleteBooking(e.db, booking.ID), ErrBookingNotFound)
}
