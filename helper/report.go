package helper

import (
	"fmt"
	"sort"
	"time"

	"pawfect_grooming/constants"
	"pawfect_grooming/model"
	"pawfect_grooming/utils"

	"github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

type bookingRevenueRow struct {
	ID           uint
	Date         utils.CustomDate
	Price        float64
	Count        int
	Status       string
	ServiceID    *uint
	PackageID    *uint
	ServiceName  *string
	ServicePrice *float64
	PackageName  *string
	PackagePrice *float64
}

// amount is the booking price, falling back to the item price when zero, times count.
func (r bookingRevenueRow) amount() float64 {
	price := r.Price
	if price == 0 {
		switch {
		case r.ServicePrice != nil:
			price = *r.ServicePrice
		case r.PackagePrice != nil:
			price = *r.PackagePrice
		}
	}
	count := r.Count
	if count == 0 {
		count = 1
	}
	return price * float64(count)
}

type paidPaymentRow struct {
	Amount float64
	Date   time.Time
}

func scanQuery(db *gorm.DB, builder squirrel.SelectBuilder, dst any) error {
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("build report query: %w", err)
	}
	return db.Raw(query, args...).Scan(dst).Error
}

// SalesReport aggregates completed bookings and paid payments. The period is the current month
// and the five before it.
func SalesReport(db *gorm.DB, now time.Time) (*model.SalesReport, error) {
	var bookings []bookingRevenueRow
	err := scanQuery(db, squirrel.
		Select(
			"b.id", "b.date", "b.price", "b.count", "b.status", "b.service_id", "b.package_id",
			"s.name AS service_name", "s.price AS service_price",
			"p.name AS package_name", "p.price AS package_price",
		).
		From("bookings b").
		LeftJoin("service_options s ON s.id = b.service_id").
		LeftJoin("packages p ON p.id = b.package_id").
		OrderBy("b.date"), &bookings)
	if err != nil {
		return nil, err
	}

	var payments []paidPaymentRow
	err = scanQuery(db, squirrel.
		Select("amount", "date").
		From("payments").
		Where(squirrel.Eq{"status": []string{constants.PAYMENT_COMPLETED, constants.PAYMENT_DEPOSIT}}), &payments)
	if err != nil {
		return nil, err
	}

	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -5, 0)
	report := &model.SalesReport{
		Monthly:            make([]model.MonthlyRevenue, 6),
		TopServices:        []model.ItemRevenue{},
		TopPackages:        []model.ItemRevenue{},
		StatusDistribution: []model.StatusCount{},
	}
	monthIndex := map[string]int{}
	for i := range report.Monthly {
		month := start.AddDate(0, i, 0).Format("2006-01")
		report.Monthly[i].Month = month
		monthIndex[month] = i
	}

	statusCounts := map[string]int64{}
	services := map[string]*model.ItemRevenue{}
	packages := map[string]*model.ItemRevenue{}

	for _, b := range bookings {
		statusCounts[b.Status]++
		if b.Status != constants.BOOKING_COMPLETED {
			continue
		}

		amount := b.amount()
		report.RevenueAllTime += amount
		report.BookingsAllTime++

		i, recent := monthIndex[b.Date.Format("2006-01")]
		if !recent {
			continue
		}
		report.RevenueLast6Months += amount
		report.BookingsLast6++
		report.Monthly[i].Revenue += amount

		switch {
		case b.ServiceID != nil:
			report.ServiceRevenue += amount
			report.ServiceCount++
			addItemRevenue(services, deref(b.ServiceName), amount)
		case b.PackageID != nil:
			report.PackageRevenue += amount
			report.PackageCount++
			addItemRevenue(packages, deref(b.PackageName), amount)
		}
	}

	for _, p := range payments {
		if !p.Date.Before(start) {
			report.PaidPayments++
			report.PaidRevenue += p.Amount
		}
	}

	report.TopServices = topItems(services, 5)
	report.TopPackages = topItems(packages, 5)
	for _, status := range constants.BOOKING_STATUS {
		report.StatusDistribution = append(report.StatusDistribution, model.StatusCount{Status: status, Count: statusCounts[status]})
	}

	report.RevenueAllTime = utils.Money(report.RevenueAllTime)
	report.RevenueLast6Months = utils.Money(report.RevenueLast6Months)
	report.ServiceRevenue = utils.Money(report.ServiceRevenue)
	report.PackageRevenue = utils.Money(report.PackageRevenue)
	report.PaidRevenue = utils.Money(report.PaidRevenue)
	for i := range report.Monthly {
		report.Monthly[i].Revenue = utils.Money(report.Monthly[i].Revenue)
	}
	return report, nil
}

func deref(s *string) string {
	if s == nil {
		return "(deleted)"
	}
	return *s
}

func addItemRevenue(items map[string]*model.ItemRevenue, name string, amount float64) {
	item, ok := items[name]
	if !ok {
		item = &model.ItemRevenue{Name: name}
		items[name] = item
	}
	item.Revenue += amount
	item.Count++
}

func topItems(items map[string]*model.ItemRevenue, n int) []model.ItemRevenue {
	out := make([]model.ItemRevenue, 0, len(items))
	for _, item := range items {
		item.Revenue = utils.Money(item.Revenue)
		out = append(out, *item)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Revenue != out[j].Revenue {
			return out[i].Revenue > out[j].Revenue
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// SalesWorkbook lays the report out as an xlsx workbook.
func SalesWorkbook(report *model.SalesReport) ([]byte, error) {
	summary := utils.Sheet{
		Name:    "Summary",
		Title:   "Pawfect Grooming sales summary",
		Headers: []string{"Metric", "Value"},
		Rows: [][]any{
			{"Revenue (last 6 months)", report.RevenueLast6Months},
			{"Revenue (all time)", report.RevenueAllTime},
			{"Completed bookings (last 6 months)", report.BookingsLast6},
			{"Completed bookings (all time)", report.BookingsAllTime},
			{"Service revenue", report.ServiceRevenue},
			{"Service bookings", report.ServiceCount},
			{"Package revenue", report.PackageRevenue},
			{"Package bookings", report.PackageCount},
			{"Paid payments (last 6 months)", report.PaidPayments},
			{"Paid amount (last 6 months)", report.PaidRevenue},
		},
	}

	monthly := utils.Sheet{Name: "Monthly", Title: "Completed revenue per month", Headers: []string{"Month", "Revenue"}}
	for _, m := range report.Monthly {
		monthly.Rows = append(monthly.Rows, []any{m.Month, m.Revenue})
	}

	top := utils.Sheet{Name: "Top sellers", Title: "Top services and packages", Headers: []string{"Kind", "Name", "Bookings", "Revenue"}}
	for _, s := range report.TopServices {
		top.Rows = append(top.Rows, []any{"Service", s.Name, s.Count, s.Revenue})
	}
	for _, p := range report.TopPackages {
		top.Rows = append(top.Rows, []any{"Package", p.Name, p.Count, p.Revenue})
	}

	status := utils.Sheet{Name: "Status", Title: "Bookings by status", Headers: []string{"Status", "Bookings"}}
	for _, s := range report.StatusDistribution {
		status.Rows = append(status.Rows, []any{s.Status, s.Count})
	}

	return utils.BuildWorkbook([]utils.Sheet{summary, monthly, top, status})
}
