package model

type MonthlyRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

type ItemRevenue struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
	Count   int64   `json:"count"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type SalesReport struct {
	RevenueLast6Months float64          `json:"revenueLast6Months"`
	RevenueAllTime     float64          `json:"revenueAllTime"`
	BookingsLast6      int64            `json:"bookingsLast6Months"`
	BookingsAllTime    int64            `json:"bookingsAllTime"`
	Monthly            []MonthlyRevenue `json:"monthly"`
	ServiceRevenue     float64          `json:"serviceRevenue"`
	ServiceCount       int64            `json:"serviceCount"`
	PackageRevenue     float64          `json:"packageRevenue"`
	PackageCount       int64            `json:"packageCount"`
	TopServices        []ItemRevenue    `json:"topServices"`
	TopPackages        []ItemRevenue    `json:"topPackages"`
	StatusDistribution []StatusCount    `json:"statusDistribution"`
	PaidPayments       int64            `json:"paidPayments"`
	PaidRevenue        float64          `json:"paidRevenue"`
}
