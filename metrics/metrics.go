package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "pawfect"

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route.",
		},
		[]string{"route"},
	)

	payments = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payments_total",
			Help:      "Recorded payments by method and status.",
		},
		[]string{"method", "status"},
	)

	vouchers = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "vouchers_total",
			Help:      "Voucher lifecycle events (redeemed, applied, removed, consumed).",
		},
		[]string{"event"},
	)

	tempSwept = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "temp_accounts_swept_total",
			Help:      "Expired temporary accounts deleted by the sweep.",
		},
	)
)

// Register registers the collectors with the default registry. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, payments, vouchers, tempSwept)
	})
}

func IncHTTP(route string) {
	httpRequests.WithLabelValues(route).Inc()
}

func IncPayment(method, status string) {
	payments.WithLabelValues(method, status).Inc()
}

func IncVoucher(event string) {
	vouchers.WithLabelValues(event).Inc()
}

func AddTempSwept(n int) {
	if n > 0 {
		tempSwept.Add(float64(n))
	}
}
