package helper

import (
	"bytes"
	"testing"
	"time"

	"pawfect_grooming/constants"
	"pawfect_grooming/model"
	"pawfect_grooming/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestSalesReport(t *testing.T) {
	e := setup(t)
	user := e.user(t, 0)
	pet := e.pet(t, user, constants.PET_TYPE_DOG)
	bath := e.service(t, "Bath", 45, constants.PET_TYPE_DOG)
	spa := e.pkg(t, "Spa Day", 120, constants.PET_TYPE_CAT_DOG)

	e.booking(t, user, pet, bath, "2026-10-05", "9:00 AM", constants.BOOKING_COMPLETED)
	e.booking(t, user, pet, bath, "2025-01-10", "9:00 AM", constants.BOOKING_COMPLETED)
	e.booking(t, user, pet, bath, "2026-10-20", "9:00 AM", constants.BOOKING_PENDING_PAYMENT)

	// zero price falls back to the package price
	september, err := utils.ParseDate("2026-09-10")
	require.NoError(t, err)
	require.NoError(t, e.db.Create(&model.Booking{
		UserID: user.ID, PetID: pet.ID, PackageID: &spa.ID, Date: september, Time: "9:00 AM",
		Count: 1, IsActive: true, Status: constants.BOOKING_COMPLETED, PublicCode: uuid.NewString(),
	}).Error)

	pay := func(status string, amount float64, date time.Time) {
		require.NoError(t, e.db.Create(&model.Payment{BookingID: 1, PaymentCode: newPaymentCode(), PaymentMethod: constants.METHOD_FPX,
			PaymentType: constants.PAYMENT_TYPE_FULL, Status: status, Date: date, Amount: amount}).Error)
	}
	pay(constants.PAYMENT_COMPLETED, 45, monday)
	pay(constants.PAYMENT_DEPOSIT, 20, monday)
	pay(constants.PAYMENT_FAILED, 90, monday)
	pay(constants.PAYMENT_COMPLETED, 50, monday.AddDate(-1, 0, 0))

	report, err := SalesReport(e.db, monday)
	require.NoError(t, err)

	assert.Equal(t, 165.0, report.RevenueLast6Months)
	assert.Equal(t, 210.0, report.RevenueAllTime)
	assert.Equal(t, int64(2), report.BookingsLast6)
	assert.Equal(t, int64(3), report.BookingsAllTime)
	assert.Equal(t, 45.0, report.ServiceRevenue)
	assert.Equal(t, int64(1), report.ServiceCount)
	assert.Equal(t, 120.0, report.PackageRevenue)
	assert.Equal(t, int64(1), report.PackageCount)
	assert.Equal(t, int64(2), report.PaidPayments)
	assert.Equal(t, 65.0, report.PaidRevenue)

	require.Len(t, report.Monthly, 6)
	assert.Equal(t, "2026-05", report.Monthly[0].Month)
	assert.Equal(t, model.MonthlyRevenue{Month: "2026-09", Revenue: 120}, report.Monthly[4])
	assert.Equal(t, model.MonthlyRevenue{Month: "2026-10", Revenue: 45}, report.Monthly[5])

	assert.Equal(t, []model.ItemRevenue{{Name: "Bath", Revenue: 45, Count: 1}}, report.TopServices)
	assert.Equal(t, []model.ItemRevenue{{Name: "Spa Day", Revenue: 120, Count: 1}}, report.TopPackages)

	statuses := map[string]int64{}
	for _, s := range report.StatusDistribution {
		statuses[s.Status] = s.Count
	}
	assert.Equal(t, map[string]int64{
		constants.BOOKING_PENDING_PAYMENT: 1,
		constants.BOOKING_DEPOSIT:         0,
		constants.BOOKING_COMPLETED:       3,
		constants.BOOKING_CANCELLED:       0,
	}, statuses)
}

func TestTopItems(t *testing.T) {
	items := map[string]*model.ItemRevenue{}
	for i, name := range []string{"a", "b", "c", "d", "e", "f"} {
		addItemRevenue(items, name, float64(i*10))
	}
	addItemRevenue(items, "a", 100)

	top := topItems(items, 5)
	require.Len(t, top, 5)
	assert.Equal(t, "a", top[0].Name)
	assert.Equal(t, int64(2), top[0].Count)
	assert.Equal(t, "f", top[1].Name)
	assert.Equal(t, "c", top[4].Name)
}

func TestSalesWorkbook(t *testing.T) {
	e := setup(t)
	report, err := SalesReport(e.db, monday)
	require.NoError(t, err)

	data, err := SalesWorkbook(report)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Summary", "Monthly", "Top sellers", "Status"}, f.GetSheetList())
	title, err := f.GetCellValue("Summary", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Pawfect Grooming sales summary", title)
	month, err := f.GetCellValue("Monthly", "A4")
	require.NoError(t, err)
	assert.Equal(t, "2026-05", month)
}
