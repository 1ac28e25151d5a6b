package helper

import (
	"fmt"
	"net/url"

	"pawfect_grooming/config"
	"pawfect_grooming/constants"
	"pawfect_grooming/model"
	"pawfect_grooming/utils"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// QueueMail stores a composed message in the outbox. Failures are logged, never returned:
// notifications must not fail the request that triggered them.
func QueueMail(db *gorm.DB, recipient, subject, kind string, message []byte, composeErr error) {
	if composeErr != nil {
		log.Error().Err(composeErr).Str("kind", kind).Str("to", recipient).Msg("compose mail")
		return
	}
	row := model.MailOutbox{Recipient: recipient, Subject: subject, Kind: kind, Message: message}
	if err := db.Create(&row).Error; err != nil {
		log.Error().Err(err).Str("kind", kind).Str("to", recipient).Msg("queue mail")
	}
}

func QueueVerificationMail(db *gorm.DB, user *model.User) {
	if user.Token == nil {
		return
	}
	link := fmt.Sprintf("%s/api/v1/auth/verify?email=%s&token=%s",
		config.App.App.BaseURL, url.QueryEscape(user.Email), url.QueryEscape(*user.Token))
	subject := "Verify your Pawfect Grooming account"
	body := fmt.Sprintf("Hi %s,\n\nConfirm your email within %s: %s\n",
		user.Name, config.App.Auth.TokenTTL, link)

	msg, err := utils.ComposeText(config.App.Mail.From, user.Email, subject, body)
	QueueMail(db, user.Email, subject, constants.MAIL_VERIFY_EMAIL, msg, err)
}

func QueueResetMail(db *gorm.DB, user *model.User) {
	if user.Token == nil {
		return
	}
	subject := "Reset your Pawfect Grooming password"
	body := fmt.Sprintf("Hi %s,\n\nUse this code to reset your password within %s: %s\n",
		user.Name, config.App.Auth.TokenTTL, *user.Token)

	msg, err := utils.ComposeText(config.App.Mail.From, user.Email, subject, body)
	QueueMail(db, user.Email, subject, constants.MAIL_RESET_PASSWORD, msg, err)
}

// QueueBookingConfirmation expects booking with User, Pet, Service and Package preloaded.
func QueueBookingConfirmation(db *gorm.DB, booking *model.Booking) {
	if booking.User == nil {
		return
	}
	qr, err := utils.GenerateQRCode(utils.CheckInContent(config.App.App.BaseURL, booking.PublicCode), 256)
	if err != nil {
		log.Warn().Err(err).Uint("bookingId", booking.ID).Msg("booking qr")
		qr = nil
	}

	data := utils.BookingConfirmationData{
		CustomerName: booking.User.Name,
		ItemName:     booking.ItemName(),
		Date:         booking.Date.String(),
		Time:         booking.Time,
		Price:        booking.Price,
		DetailLink:   fmt.Sprintf("%s/api/v1/bookings/%d", config.App.App.BaseURL, booking.ID),
	}
	if booking.Pet != nil {
		data.PetName = booking.Pet.Name
	}

	msg, err := utils.ComposeBookingConfirmation(config.App.Mail.From, booking.User.Email, data, qr)
	QueueMail(db, booking.User.Email, "Booking confirmed: "+data.ItemName, constants.MAIL_BOOKING_CONFIRM, msg, err)
}

func QueueStatusMail(db *gorm.DB, booking *model.Booking) {
	if booking.User == nil {
		return
	}
	subject := "Your appointment is now " + booking.Status
	body := fmt.Sprintf("Hi %s,\n\nYour %s appointment on %s at %s is now %s.\n",
		booking.User.Name, booking.ItemName(), booking.Date.String(), booking.Time, booking.Status)

	msg, err := utils.ComposeText(config.App.Mail.From, booking.User.Email, subject, body)
	QueueMail(db, booking.User.Email, subject, constants.MAIL_BOOKING_STATUS, msg, err)
}

func QueueReceiptMail(db *gorm.DB, email string, receipt *model.Receipt) {
	data := utils.ReceiptMailData{
		PaymentCode:   receipt.PaymentCode,
		PaymentMethod: receipt.PaymentMethod,
		PaymentType:   receipt.PaymentType,
		ItemName:      receipt.ItemName,
		PetName:       receipt.PetName,
		BookingDate:   receipt.BookingDate,
		BookingTime:   receipt.BookingTime,
		Discount:      receipt.Discount,
		ShowDiscount:  receipt.ShowDiscount,
		TotalLabel:    receipt.TotalLabel,
		Charged:       receipt.Charged,
	}
	msg, err := utils.ComposeReceipt(config.App.Mail.From, email, data)
	QueueMail(db, email, "Payment receipt "+receipt.PaymentCode, constants.MAIL_PAYMENT_RECEIPT, msg, err)
}
