package utils

import (
	"bytes"
	"image/png"
	"strings"

	"github.com/skip2/go-qrcode"
)

// GenerateQRCode encodes content as a PNG QR code of size x size pixels.
func GenerateQRCode(content string, size int) ([]byte, error) {
	qr, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, qr.Image(size)); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// CheckInContent is the text encoded in a booking's check-in QR code.
func CheckInContent(baseURL, publicCode string) string {
	return strings.TrimRight(baseURL, "/") + "/checkin/" + publicCode
}
