package helper

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"pawfect_grooming/config"
	"pawfect_grooming/constants"
	"pawfect_grooming/gateway"
	"pawfect_grooming/metrics"
	"pawfect_grooming/model"
	"pawfect_grooming/session"
	"pawfect_grooming/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	cardExpiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/(\d{2})$`)
	digitsPattern     = regexp.MustCompile(`^\d+$`)
)

func NormalizePaymentType(paymentType string) (string, error) {
	canonical, ok := utils.CanonicalValue(paymentType, constants.PAYMENT_TYPE)
	if !ok {
		return "", ErrInvalidPaymentType
	}
	return canonical, nil
}

func newPaymentCode() string {
	return "PAY-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
}

// PayableAmount is the deposit for deposits, otherwise base minus the discount clamped to [0, base].
func PayableAmount(paymentType string, base, discount float64) float64 {
	if paymentType == constants.PAYMENT_TYPE_DEPOSIT {
		return utils.Money(config.App.Booking.DepositAmount)
	}
	discount = math.Min(math.Max(discount, 0), math.Max(base, 0))
	return utils.Money(math.Max(0, base-discount))
}

// LoadPayableBooking returns the owner's booking if it is active and can take a payment of
// paymentType. A booking awaiting payment takes either type; a deposited booking only takes its
// full payment.
func LoadPayableBooking(db *gorm.DB, userID, bookingID uint, paymentType string) (*model.Booking, error) {
	booking, err := LoadOwnBooking(db, userID, bookingID)
	if err != nil {
		return nil, err
	}
	if !booking.IsActive {
		return nil, ErrBookingInactive
	}
	switch booking.Status {
	case constants.BOOKING_PENDING_PAYMENT:
	case constants.BOOKING_DEPOSIT:
		if paymentType != constants.PAYMENT_TYPE_FULL {
			return nil, ErrBookingNotPayable
		}
	default:
		return nil, ErrBookingNotPayable
	}
	return booking, nil
}

type checkout struct {
	booking     *model.Booking
	paymentType string
	reservation *model.VoucherReservation
	quote       model.Quote
}

func (c *checkout) voucherID() *uint {
	if c.reservation == nil {
		return nil
	}
	id := c.reservation.VoucherID
	return &id
}

func prepareCheckout(ctx context.Context, db *gorm.DB, store session.Store, userID, bookingID uint, paymentType string) (*checkout, error) {
	paymentType, err := NormalizePaymentType(paymentType)
	if err != nil {
		return nil, err
	}
	booking, err := LoadPayableBooking(db, userID, bookingID, paymentType)
	if err != nil {
		return nil, err
	}

	c := &checkout{booking: booking, paymentType: paymentType}
	c.quote = model.Quote{BookingID: booking.ID, PaymentType: paymentType, Base: utils.Money(booking.BasePrice())}

	if paymentType == constants.PAYMENT_TYPE_FULL {
		c.reservation, err = ReservedDiscount(ctx, db, store, userID, booking.ID)
		if err != nil {
			return nil, err
		}
		if c.reservation != nil {
			c.quote.Discount = utils.Money(math.Min(c.reservation.Amount, c.quote.Base))
			c.quote.VoucherCode = c.reservation.Code
		}
	}
	c.quote.Payable = PayableAmount(paymentType, c.quote.Base, c.quote.Discount)
	return c, nil
}

// QuotePayment returns the base, discount and payable amount of a booking.
func QuotePayment(ctx context.Context, db *gorm.DB, store session.Store, userID, bookingID uint, paymentType string) (*model.Quote, error) {
	c, err := prepareCheckout(ctx, db, store, userID, bookingID, paymentType)
	if err != nil {
		return nil, err
	}
	return &c.quote, nil
}

func successStatus(paymentType string) string {
	if paymentType == constants.PAYMENT_TYPE_DEPOSIT {
		return constants.PAYMENT_DEPOSIT
	}
	return constants.PAYMENT_COMPLETED
}

func bookingStatusFor(paymentType string) string {
	if paymentType == constants.PAYMENT_TYPE_DEPOSIT {
		return constants.BOOKING_DEPOSIT
	}
	return constants.BOOKING_COMPLETED
}

func failPendingPayments(tx *gorm.DB, bookingID uint) error {
	return tx.Model(&model.Payment{}).
		Where("booking_id = ? AND status = ?", bookingID, constants.PAYMENT_PENDING).
		Update("status", constants.PAYMENT_FAILED).Error
}

// SettlePayment applies the effects of a successful payment exactly once: the booking status,
// and for full payments the voucher consumption and loyalty points. A cancelled booking keeps
// its status.
func SettlePayment(ctx context.Context, db *gorm.DB, store session.Store, paymentID uint) error {
	var payment model.Payment
	settled := false

	err := db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Payment{}).
			Where("id = ? AND settled = ?", paymentID, false).
			Update("settled", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		settled = true

		if err := tx.Preload("Booking").First(&payment, paymentID).Error; err != nil {
			return err
		}
		if payment.Booking == nil {
			return ErrBookingNotFound
		}

		if payment.Booking.Status == constants.BOOKING_CANCELLED {
			log.Warn().Uint("paymentId", payment.ID).Uint("bookingId", payment.BookingID).
				Msg("payment settled for a cancelled booking, status kept")
		} else if err := tx.Model(&model.Booking{}).Where("id = ?", payment.BookingID).
			Update("status", bookingStatusFor(payment.PaymentType)).Error; err != nil {
			return err
		}
		if payment.PaymentType != constants.PAYMENT_TYPE_FULL {
			return nil
		}

		if payment.VoucherID != nil {
			now := Now()
			used := tx.Model(&model.Voucher{}).
				Where("id = ? AND is_used = ?", *payment.VoucherID, false).
				Updates(map[string]any{"is_used": true, "used_at": now, "booking_id": payment.BookingID})
			if used.Error != nil {
				return used.Error
			}
			if used.RowsAffected > 0 {
				metrics.IncVoucher("consumed")
			}
		}

		if points := int(math.Floor(payment.Amount)); points > 0 {
			if err := tx.Model(&model.User{}).Where("id = ?", payment.Booking.UserID).
				Update("points", gorm.Expr("points + ?", points)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("settle payment %d: %w", paymentID, err)
	}
	if !settled {
		return nil
	}

	if payment.PaymentType == constants.PAYMENT_TYPE_FULL {
		releaseReservation(ctx, store, payment.Booking.UserID, payment.BookingID)
	}
	if receipt, owner, err := BuildReceipt(db, paymentID); err == nil && owner != nil {
		QueueReceiptMail(db, owner.Email, receipt)
	}
	return nil
}

func validateCardExpiry(expiry string, now time.Time) bool {
	m := cardExpiryPattern.FindStringSubmatch(expiry)
	if m == nil {
		return false
	}
	month, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[2])
	year += 2000
	return year > now.Year() || (year == now.Year() && month >= int(now.Month()))
}

// fillSimulatedMethod validates the fields of the chosen method and copies only those.
func fillSimulatedMethod(payment *model.Payment, input *model.SimulatedPaymentInput) error {
	switch payment.PaymentMethod {
	case constants.METHOD_CREDIT_CARD:
		card := strings.NewReplacer(" ", "", "-", "").Replace(input.CardNumber)
		if len(card) != 16 || !digitsPattern.MatchString(card) {
			return ErrInvalidCard
		}
		if !validateCardExpiry(strings.TrimSpace(input.ExpiryDate), Now()) {
			return ErrInvalidExpiry
		}
		if len(input.CVV) != 3 || !digitsPattern.MatchString(input.CVV) {
			return ErrInvalidCVV
		}
		payment.CardLast4 = card[12:]
		payment.ExpiryDate = strings.TrimSpace(input.ExpiryDate)
	case constants.METHOD_FPX:
		if strings.TrimSpace(input.Bank) == "" {
			return ErrBankRequired
		}
		payment.Bank = strings.TrimSpace(input.Bank)
	case constants.METHOD_E_WALLET:
		walletID := strings.TrimSpace(input.WalletID)
		if strings.TrimSpace(input.WalletProvider) == "" || len(walletID) < 8 || len(walletID) > 50 ||
			len(strings.TrimSpace(input.WalletName)) < 2 {
			return ErrInvalidWallet
		}
		payment.WalletProvider = strings.TrimSpace(input.WalletProvider)
		payment.WalletID = walletID
	default:
		return ErrInvalidPaymentMethod
	}
	return nil
}

// SimulatedPayment records a card, FPX or e-wallet payment that always succeeds once its
// fields are valid.
func SimulatedPayment(ctx context.Context, db *gorm.DB, store session.Store, userID uint, input *model.SimulatedPaymentInput) (*model.Payment, error) {
	method, ok := utils.CanonicalValue(input.PaymentMethod, constants.SIMULATED_METHOD)
	if !ok {
		return nil, ErrInvalidPaymentMethod
	}
	c, err := prepareCheckout(ctx, db, store, userID, input.BookingID, input.PaymentType)
	if err != nil {
		return nil, err
	}

	payment := model.Payment{
		BookingID:     c.booking.ID,
		PaymentCode:   newPaymentCode(),
		PaymentMethod: method,
		PaymentType:   c.paymentType,
		Status:        successStatus(c.paymentType),
		Date:          Now(),
		Amount:        c.quote.Payable,
		VoucherID:     c.voucherID(),
	}
	if err := fillSimulatedMethod(&payment, input); err != nil {
		return nil, err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := failPendingPayments(tx, c.booking.ID); err != nil {
			return err
		}
		return tx.Create(&payment).Error
	})
	if err != nil {
		return nil, err
	}
	metrics.IncPayment(payment.PaymentMethod, payment.Status)

	if err := SettlePayment(ctx, db, store, payment.ID); err != nil {
		return nil, err
	}
	return &payment, nil
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func intentMetadata(c *checkout, userID uint) map[string]string {
	meta := map[string]string{
		"bookingId":   strconv.FormatUint(uint64(c.booking.ID), 10),
		"paymentType": c.paymentType,
		"userId":      strconv.FormatUint(uint64(userID), 10),
	}
	if id := c.voucherID(); id != nil {
		meta["voucherId"] = strconv.FormatUint(uint64(*id), 10)
	}
	return meta
}

// CreateStripeIntent starts a card payment for the payable amount of a booking.
func CreateStripeIntent(ctx context.Context, db *gorm.DB, store session.Store, gw gateway.Gateway, userID uint, target *model.PaymentTarget) (*model.IntentResult, error) {
	if gw == nil {
		return nil, ErrGatewayUnavailable
	}
	c, err := prepareCheckout(ctx, db, store, userID, target.BookingID, target.PaymentType)
	if err != nil {
		return nil, err
	}
	cents := toCents(c.quote.Payable)
	if cents <= 0 {
		return nil, ErrNothingToCharge
	}

	intent, err := gw.CreateIntent(ctx, gateway.IntentRequest{
		AmountCents: cents,
		Description: fmt.Sprintf("%s for booking %d", c.booking.ItemName(), c.booking.ID),
		Metadata:    intentMetadata(c, userID),
	})
	if err != nil {
		return nil, err
	}

	return &model.IntentResult{
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		Amount:          c.quote.Payable,
		PublishableKey:  config.App.Stripe.PublishableKey,
	}, nil
}

func paymentByIntent(db *gorm.DB, intentID string) (*model.Payment, error) {
	var payment model.Payment
	err := db.Where("stripe_payment_intent_id = ?", intentID).First(&payment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

type intentPayment struct {
	bookingID   uint
	intentID    string
	method      string
	paymentType string
	amount      float64
	voucherID   *uint
}

// recordIntentPayment stores the successful payment of an intent once and settles it. A payment
// already holding the intent is reused, a failed one is promoted.
func recordIntentPayment(ctx context.Context, db *gorm.DB, store session.Store, in intentPayment) (*model.Payment, error) {
	existing, err := paymentByIntent(db, in.intentID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		payment := model.Payment{
			BookingID:             in.bookingID,
			PaymentCode:           newPaymentCode(),
			PaymentMethod:         in.method,
			PaymentType:           in.paymentType,
			Status:                successStatus(in.paymentType),
			Date:                  Now(),
			Amount:                utils.Money(in.amount),
			StripePaymentIntentID: &in.intentID,
			VoucherID:             in.voucherID,
		}
		err = db.Transaction(func(tx *gorm.DB) error {
			if err := failPendingPayments(tx, in.bookingID); err != nil {
				return err
			}
			return tx.Create(&payment).Error
		})
		if err != nil {
			// a concurrent confirmation or webhook may have inserted the same intent
			dup, lookupErr := paymentByIntent(db, in.intentID)
			if lookupErr != nil || dup == nil {
				return nil, err
			}
			payment = *dup
		} else {
			metrics.IncPayment(payment.PaymentMethod, payment.Status)
		}
		existing = &payment
	} else if existing.Status == constants.PAYMENT_FAILED {
		status := successStatus(existing.PaymentType)
		if err := db.Model(existing).Updates(map[string]any{
			"status": status,
			"amount": utils.Money(in.amount),
			"date":   Now(),
		}).Error; err != nil {
			return nil, err
		}
		existing.Status = status
		metrics.IncPayment(existing.PaymentMethod, status)
	}

	if err := SettlePayment(ctx, db, store, existing.ID); err != nil {
		return nil, err
	}
	return existing, nil
}

// ConfirmStripePayment records the payment of a confirmed intent, or of a fallback id when
// fallbacks are enabled.
func ConfirmStripePayment(ctx context.Context, db *gorm.DB, store session.Store, gw gateway.Gateway, userID uint, input *model.ConfirmIntentInput) (*model.Payment, error) {
	paymentType, err := NormalizePaymentType(input.PaymentType)
	if err != nil {
		return nil, err
	}

	if strings.HasPrefix(input.PaymentIntentID, constants.STRIPE_FALLBACK_PREFIX) {
		if !config.App.Stripe.AllowFallback {
			return nil, ErrFallbackDisabled
		}
		if paymentType == constants.PAYMENT_TYPE_DEPOSIT {
			return nil, ErrFallbackDeposit
		}
		existing, err := paymentByIntent(db, input.PaymentIntentID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			if _, err := LoadOwnBooking(db, userID, existing.BookingID); err != nil {
				return nil, err
			}
			return existing, SettlePayment(ctx, db, store, existing.ID)
		}
		c, err := prepareCheckout(ctx, db, store, userID, input.BookingID, paymentType)
		if err != nil {
			return nil, err
		}
		return recordIntentPayment(ctx, db, store, intentPayment{
			bookingID:   c.booking.ID,
			intentID:    input.PaymentIntentID,
			method:      constants.METHOD_FPX_FALLBACK,
			paymentType: paymentType,
			amount:      c.quote.Payable,
			voucherID:   c.voucherID(),
		})
	}

	if gw == nil {
		return nil, ErrGatewayUnavailable
	}
	intent, err := gw.GetIntent(ctx, input.PaymentIntentID)
	if err != nil {
		return nil, err
	}
	if intent.Status != gateway.IntentSucceeded {
		return nil, ErrIntentNotSucceeded
	}
	if intent.Metadata["bookingId"] != strconv.FormatUint(uint64(input.BookingID), 10) {
		return nil, ErrIntentMismatch
	}
	booking, err := LoadOwnBooking(db, userID, input.BookingID)
	if err != nil {
		return nil, err
	}
	if t := intent.Metadata["paymentType"]; t != "" {
		if canonical, err := NormalizePaymentType(t); err == nil {
			paymentType = canonical
		}
	}

	return recordIntentPayment(ctx, db, store, intentPayment{
		bookingID:   booking.ID,
		intentID:    intent.ID,
		method:      constants.METHOD_STRIPE,
		paymentType: paymentType,
		amount:      float64(intent.AmountCents) / 100,
		voucherID:   parseUintPtr(intent.Metadata["voucherId"]),
	})
}

func parseUintPtr(s string) *uint {
	if s == "" {
		return nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || n == 0 {
		return nil
	}
	id := uint(n)
	return &id
}

// HandleStripeEvent applies a verified webhook event. Events it cannot attribute to a booking are
// acknowledged without changes.
func HandleStripeEvent(ctx context.Context, db *gorm.DB, store session.Store, event *gateway.Event) error {
	if event.Intent == nil {
		return nil
	}
	intent := event.Intent
	bookingID := parseUintPtr(intent.Metadata["bookingId"])
	if bookingID == nil {
		log.Info().Str("event", event.ID).Str("intent", intent.ID).Msg("stripe event without booking, ignored")
		return nil
	}
	if _, err := LoadBooking(db, *bookingID); err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			log.Warn().Str("event", event.ID).Uint("bookingId", *bookingID).Msg("stripe event for unknown booking")
			return nil
		}
		return err
	}

	paymentType := constants.PAYMENT_TYPE_FULL
	if canonical, err := NormalizePaymentType(intent.Metadata["paymentType"]); err == nil {
		paymentType = canonical
	}

	switch event.Type {
	case gateway.EventIntentSucceeded:
		_, err := recordIntentPayment(ctx, db, store, intentPayment{
			bookingID:   *bookingID,
			intentID:    intent.ID,
			method:      constants.METHOD_STRIPE,
			paymentType: paymentType,
			amount:      float64(intent.AmountCents) / 100,
			voucherID:   parseUintPtr(intent.Metadata["voucherId"]),
		})
		return err
	case gateway.EventIntentFailed:
		existing, err := paymentByIntent(db, intent.ID)
		if err != nil || existing != nil {
			return err
		}
		intentID := intent.ID
		payment := model.Payment{
			BookingID:             *bookingID,
			PaymentCode:           newPaymentCode(),
			PaymentMethod:         constants.METHOD_STRIPE,
			PaymentType:           paymentType,
			Status:                constants.PAYMENT_FAILED,
			Date:                  Now(),
			Amount:                utils.Money(float64(intent.AmountCents) / 100),
			StripePaymentIntentID: &intentID,
			Settled:               false,
		}
		if err := db.Create(&payment).Error; err != nil {
			if again, lookupErr := paymentByIntent(db, intent.ID); lookupErr == nil && again != nil {
				return nil
			}
			return err
		}
		metrics.IncPayment(payment.PaymentMethod, payment.Status)
	}
	return nil
}

// CreateCheckout opens a hosted FPX checkout and records a pending payment for it.
func CreateCheckout(ctx context.Context, db *gorm.DB, store session.Store, gw gateway.Gateway, user *model.User, target *model.PaymentTarget) (*gateway.CheckoutSession, error) {
	if gw == nil {
		return nil, ErrGatewayUnavailable
	}
	c, err := prepareCheckout(ctx, db, store, user.ID, target.BookingID, target.PaymentType)
	if err != nil {
		return nil, err
	}
	cents := toCents(c.quote.Payable)
	if cents <= 0 {
		return nil, ErrNothingToCharge
	}

	cs, err := gw.CreateCheckout(ctx, gateway.CheckoutRequest{
		AmountCents: cents,
		ItemName:    c.booking.ItemName(),
		Email:       user.Email,
		Metadata:    intentMetadata(c, user.ID),
	})
	if err != nil {
		return nil, err
	}

	sessionID := cs.ID
	payment := model.Payment{
		BookingID:       c.booking.ID,
		PaymentCode:     newPaymentCode(),
		PaymentMethod:   constants.METHOD_FPX,
		PaymentType:     c.paymentType,
		Status:          constants.PAYMENT_PENDING,
		Date:            Now(),
		Amount:          c.quote.Payable,
		StripeSessionID: &sessionID,
		VoucherID:       c.voucherID(),
	}
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := failPendingPayments(tx, c.booking.ID); err != nil {
			return err
		}
		return tx.Create(&payment).Error
	})
	if err != nil {
		return nil, err
	}
	metrics.IncPayment(payment.PaymentMethod, payment.Status)
	return cs, nil
}

func paymentBySession(db *gorm.DB, sessionID string) (*model.Payment, error) {
	var payment model.Payment
	err := db.Where("stripe_session_id = ?", sessionID).Order("id desc").First(&payment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// CompleteCheckout handles the return from a hosted checkout.
func CompleteCheckout(ctx context.Context, db *gorm.DB, store session.Store, gw gateway.Gateway, sessionID string) (*model.Payment, error) {
	if gw == nil {
		return nil, ErrGatewayUnavailable
	}
	payment, err := paymentBySession(db, sessionID)
	if err != nil {
		return nil, err
	}
	cs, err := gw.GetCheckout(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if cs.PaymentStatus != gateway.SessionPaid {
		return nil, ErrCheckoutNotPaid
	}

	status := successStatus(payment.PaymentType)
	updates := map[string]any{"status": status, "date": Now()}
	if cs.PaymentIntentID != "" {
		if holder, err := paymentByIntent(db, cs.PaymentIntentID); err == nil && holder == nil {
			updates["stripe_payment_intent_id"] = cs.PaymentIntentID
		}
	}
	result := db.Model(&model.Payment{}).
		Where("id = ? AND status IN ?", payment.ID, []string{constants.PAYMENT_PENDING, constants.PAYMENT_FAILED}).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected > 0 {
		metrics.IncPayment(payment.PaymentMethod, status)
	}

	if err := SettlePayment(ctx, db, store, payment.ID); err != nil {
		return nil, err
	}
	if err := db.First(payment, payment.ID).Error; err != nil {
		return nil, err
	}
	return payment, nil
}

// CancelCheckout marks the pending payment of an abandoned checkout as failed.
func CancelCheckout(db *gorm.DB, sessionID string) (*model.Payment, error) {
	payment, err := paymentBySession(db, sessionID)
	if err != nil {
		return nil, err
	}
	result := db.Model(&model.Payment{}).
		Where("id = ? AND status = ?", payment.ID, constants.PAYMENT_PENDING).
		Update("status", constants.PAYMENT_FAILED)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected > 0 {
		payment.Status = constants.PAYMENT_FAILED
		metrics.IncPayment(payment.PaymentMethod, payment.Status)
	}
	return payment, nil
}

// FailStalePayments marks pending payments created before cutoff as failed.
func FailStalePayments(db *gorm.DB, cutoff time.Time) (int, error) {
	var pending []model.Payment
	if err := db.Where("status = ?", constants.PAYMENT_PENDING).Find(&pending).Error; err != nil {
		return 0, err
	}
	var ids []uint
	for _, p := range pending {
		if p.CreatedAt.Before(cutoff) {
			ids = append(ids, p.ID)
		}
	}
	if len(ids) == 0 {
		return 0, nil
	}
	result := db.Model(&model.Payment{}).
		Where("id IN ? AND status = ?", ids, constants.PAYMENT_PENDING).
		Update("status", constants.PAYMENT_FAILED)
	return int(result.RowsAffected), result.Error
}

// BuildReceipt assembles the receipt of a payment and returns the booking owner.
func BuildReceipt(db *gorm.DB, paymentID uint) (*model.Receipt, *model.User, error) {
	var payment model.Payment
	err := db.Preload("Booking").Preload("Booking.User").Preload("Booking.Pet").
		Preload("Booking.Service").Preload("Booking.Package").
		First(&payment, paymentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, nil, err
	}
	if payment.Booking == nil {
		return nil, nil, ErrBookingNotFound
	}
	booking := payment.Booking

	receipt := &model.Receipt{
		PaymentCode:   payment.PaymentCode,
		PaymentMethod: payment.PaymentMethod,
		PaymentType:   payment.PaymentType,
		Status:        payment.Status,
		Date:          payment.Date,
		ItemName:      booking.ItemName(),
		BookingDate:   booking.Date.String(),
		BookingTime:   booking.Time,
		BasePrice:     utils.Money(booking.BasePrice()),
		TotalLabel:    "Total Payment",
		Charged:       utils.Money(payment.Amount),
	}
	if booking.User != nil {
		receipt.CustomerName = booking.User.Name
		receipt.CustomerEmail = booking.User.Email
	}
	if booking.Pet != nil {
		receipt.PetName = booking.Pet.Name
	}

	base, amount := receipt.BasePrice, receipt.Charged
	switch {
	case payment.PaymentType == constants.PAYMENT_TYPE_DEPOSIT:
		receipt.TotalLabel = "Total Deposited"
	case payment.PaymentMethod == constants.METHOD_FPX || payment.PaymentMethod == constants.METHOD_FPX_FALLBACK:
		receipt.Discount = utils.Money(math.Max(0, base-amount))
		receipt.ShowDiscount = receipt.Discount > 0
	case amount > 0 && amount < base && base-amount >= 1:
		receipt.Discount = utils.Money(base - amount)
		receipt.ShowDiscount = true
	}
	return receipt, booking.User, nil
}
