package utils

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestCustomDate(t *testing.T) {
	t.Run("JSONRoundTrip", func(t *testing.T) {
		var payload struct {
			Date CustomDate `json:"date"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"date":"2026-10-20"}`), &payload))
		assert.Equal(t, 2026, payload.Date.Year())
		assert.Equal(t, time.October, payload.Date.Month())

		out, err := json.Marshal(payload)
		require.NoError(t, err)
		assert.JSONEq(t, `{"date":"2026-10-20"}`, string(out))
	})

	t.Run("RejectsOtherLayouts", func(t *testing.T) {
		_, err := ParseDate("20/10/2026")
		assert.Error(t, err)
	})

	t.Run("Scan", func(t *testing.T) {
		var d CustomDate
		require.NoError(t, d.Scan("2026-01-05 00:00:00+00:00"))
		assert.Equal(t, "2026-01-05", d.String())

		require.NoError(t, d.Scan(time.Date(2026, 2, 3, 15, 0, 0, 0, time.Local)))
		assert.Equal(t, "2026-02-03", d.String())

		require.NoError(t, d.Scan(nil))
		assert.True(t, d.IsZero())
	})
}

func TestPasswordAndPhone(t *testing.T) {
	cases := []struct {
		password string
		ok       bool
	}{
		{"Secret1!", true},
		{"secret1!", false},
		{"SECRET1!", false},
		{"Secret!!", false},
		{"Secret12", false},
		{"Ab1.x", true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, IsStrongPassword(tc.password), tc.password)
	}

	assert.True(t, IsValidPhone("+60123456789"))
	assert.True(t, IsValidPhone("+601234567890"))
	assert.False(t, IsValidPhone("0123456789"))
	assert.False(t, IsValidPhone("+6012345678"))
}

func TestNormalizeVoucherCode(t *testing.T) {
	code, ok := NormalizeVoucherCode("  abcd2345ef ")
	assert.True(t, ok)
	assert.Equal(t, "ABCD2345EF", code)

	_, ok = NormalizeVoucherCode("ab1")
	assert.False(t, ok)

	_, ok = NormalizeVoucherCode("ABC 12345")
	assert.False(t, ok)
}

func TestCanonicalValue(t *testing.T) {
	v, ok := CanonicalValue(" full payment ", []string{"Deposit", "Full Payment"})
	assert.True(t, ok)
	assert.Equal(t, "Full Payment", v)

	_, ok = CanonicalValue("partial", []string{"Deposit", "Full Payment"})
	assert.False(t, ok)
}

func TestMoney(t *testing.T) {
	assert.Equal(t, 45.1, Money(45.099999))
	assert.Equal(t, 0.0, Money(0.004))
}

func TestGenerateQRCode(t *testing.T) {
	png, err := GenerateQRCode(CheckInContent("http://localhost:8002/", "abc"), 128)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}

func TestCompose(t *testing.T) {
	t.Run("Text", func(t *testing.T) {
		raw, err := ComposeText("salon@pawfect.local", "amy@example.com", "Verify your email", "click here")
		require.NoError(t, err)
		assert.Contains(t, string(raw), "Subject: Verify your email")
		assert.Contains(t, string(raw), "click here")
	})

	t.Run("BookingConfirmationEmbedsQR", func(t *testing.T) {
		qr, err := GenerateQRCode("code", 64)
		require.NoError(t, err)

		raw, err := ComposeBookingConfirmation("salon@pawfect.local", "amy@example.com", BookingConfirmationData{
			CustomerName: "Amy",
			ItemName:     "Full Groom",
			PetName:      "Rex",
			Date:         "2026-10-20",
			Time:         "10:00 AM",
			Price:        80,
		}, qr)
		require.NoError(t, err)
		assert.Contains(t, string(raw), "Booking confirmed: Full Groom")
		assert.Contains(t, string(raw), qrImageName)
	})
}

func TestBuildWorkbook(t *testing.T) {
	data, err := BuildWorkbook([]Sheet{{
		Name:    "Summary",
		Title:   "Sales",
		Headers: []string{"Metric", "Value"},
		Rows:    [][]any{{"Revenue", 120.5}},
	}})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue("Summary", "A4")
	require.NoError(t, err)
	assert.Equal(t, "Revenue", v)
	assert.Equal(t, []string{"Summary"}, f.GetSheetList())

	_, err = BuildWorkbook(nil)
	assert.Error(t, err)
}
