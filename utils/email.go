package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/jordan-wright/email"
	"gopkg.in/gomail.v2"
)

const qrImageName = "booking-qr.png"

var (
	bookingConfirmationTmpl = template.Must(template.New("booking").Parse(`
<h2>Your appointment is booked, {{.CustomerName}}!</h2>
<p>{{.ItemName}} for <b>{{.PetName}}</b> on {{.Date}} at {{.Time}}.</p>
<p>Amount due: RM {{printf "%.2f" .Price}}. Please complete payment to secure the slot.</p>
<p>Show this code at the counter:</p>
<img src="cid:` + qrImageName + `" alt="check-in code"/>
<p><a href="{{.DetailLink}}">View booking</a></p>`))

	paymentReceiptTmpl = template.Must(template.New("receipt").Parse(`
<h2>Payment received</h2>
<p>Reference {{.PaymentCode}} ({{.PaymentMethod}}, {{.PaymentType}})</p>
<p>{{.ItemName}} for {{.PetName}} on {{.BookingDate}} at {{.BookingTime}}</p>
{{if .ShowDiscount}}<p>Voucher discount: RM {{printf "%.2f" .Discount}}</p>{{end}}
<p><b>{{.TotalLabel}}: RM {{printf "%.2f" .Charged}}</b></p>`))
)

type BookingConfirmationData struct {
	CustomerName string
	ItemName     string
	PetName      string
	Date         string
	Time         string
	Price        float64
	DetailLink   string
}

type ReceiptMailData struct {
	PaymentCode   string
	PaymentMethod string
	PaymentType   string
	ItemName      string
	PetName       string
	BookingDate   string
	BookingTime   string
	Discount      float64
	ShowDiscount  bool
	TotalLabel    string
	Charged       float64
}

// ComposeBookingConfirmation renders the HTML confirmation with the check-in QR code embedded.
func ComposeBookingConfirmation(from, to string, data BookingConfirmationData, qrPNG []byte) ([]byte, error) {
	var body bytes.Buffer
	if err := bookingConfirmationTmpl.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("render booking confirmation: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Booking confirmed: "+data.ItemName)
	m.SetBody("text/html", body.String())
	if len(qrPNG) > 0 {
		m.Embed(qrImageName,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(qrPNG)
				return err
			}),
			gomail.SetHeader(map[string][]string{"Content-Type": {"image/png"}}),
		)
	}

	var raw bytes.Buffer
	if _, err := m.WriteTo(&raw); err != nil {
		return nil, fmt.Errorf("write booking confirmation: %w", err)
	}
	return raw.Bytes(), nil
}

func ComposeReceipt(from, to string, data ReceiptMailData) ([]byte, error) {
	var body bytes.Buffer
	if err := paymentReceiptTmpl.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("render receipt: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Payment receipt "+data.PaymentCode)
	m.SetBody("text/html", body.String())

	var raw bytes.Buffer
	if _, err := m.WriteTo(&raw); err != nil {
		return nil, fmt.Errorf("write receipt: %w", err)
	}
	return raw.Bytes(), nil
}

// ComposeText builds a plain text message (verification links, reset links, status notices).
func ComposeText(from, to, subject, body string) ([]byte, error) {
	e := email.NewEmail()
	e.From = from
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	raw, err := e.Bytes()
	if err != nil {
		return nil, fmt.Errorf("compose %q: %w", subject, err)
	}
	return raw, nil
}
