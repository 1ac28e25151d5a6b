package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRegisterTwice(t *testing.T) {
	assert.NotPanics(t, func() {
		Register()
		Register()
	})
}

func TestCounters(t *testing.T) {
	IncPayment("Credit Card", "Completed")
	IncPayment("Credit Card", "Completed")
	assert.Equal(t, 2.0, testutil.ToFloat64(payments.WithLabelValues("Credit Card", "Completed")))

	IncVoucher("applied")
	assert.Equal(t, 1.0, testutil.ToFloat64(vouchers.WithLabelValues("applied")))

	before := testutil.ToFloat64(tempSwept)
	AddTempSwept(0)
	AddTempSwept(3)
	assert.Equal(t, before+3, testutil.ToFloat64(tempSwept))
}
