package helper

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"strings"

	"pawfect_grooming/config"
	"pawfect_grooming/constants"
	"pawfect_grooming/metrics"
	"pawfect_grooming/model"
	"pawfect_grooming/session"
	"pawfect_grooming/utils"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func randomCode() (string, error) {
	alphabet := constants.VOUCHER_ALPHABET
	limit := big.NewInt(int64(len(alphabet)))

	var sb strings.Builder
	for i := 0; i < constants.VOUCHER_CODE_LENGTH; i++ {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		sb.WriteByte(alphabet[n.Int64()])
	}
	return sb.String(), nil
}

// GenerateVoucherCode draws codes until one is unused, giving up after the configured attempts.
func GenerateVoucherCode(tx *gorm.DB) (string, error) {
	for i := 0; i < config.App.Vouchers.CodeAttempts; i++ {
		code, err := randomCode()
		if err != nil {
			return "", err
		}

		var count int64
		if err := tx.Model(&model.Voucher{}).Where("code = ?", code).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return code, nil
		}
	}
	return "", ErrVoucherCodeExhausted
}

// RedeemVoucher trades the configured number of points for a new voucher.
func RedeemVoucher(db *gorm.DB, userID uint) (*model.Voucher, error) {
	cfg := config.App.Vouchers
	var voucher model.Voucher

	err := db.Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		if !user.IsActive {
			return ErrUserInactive
		}
		if user.Points < cfg.RedeemCost {
			return ErrNotEnoughPoints
		}

		result := tx.Model(&model.User{}).
			Where("id = ? AND points >= ?", userID, cfg.RedeemCost).
			Update("points", gorm.Expr("points - ?", cfg.RedeemCost))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotEnoughPoints
		}

		code, err := GenerateVoucherCode(tx)
		if err != nil {
			return err
		}
		voucher = model.Voucher{
			Code:           code,
			UserID:         userID,
			DiscountAmount: cfg.DiscountAmount,
			ExpiryDate:     Now().AddDate(0, cfg.ValidityMonths, 0),
		}
		return tx.Create(&voucher).Error
	})
	if err != nil {
		return nil, err
	}

	metrics.IncVoucher("redeemed")
	return &voucher, nil
}

// Wallet splits the user's vouchers into available, used and expired.
func Wallet(db *gorm.DB, user *model.User) (*model.VoucherWallet, error) {
	var vouchers []model.Voucher
	if err := db.Where("user_id = ?", user.ID).Order("expiry_date").Find(&vouchers).Error; err != nil {
		return nil, err
	}

	now := Now()
	wallet := &model.VoucherWallet{
		Points:    user.Points,
		Available: []model.Voucher{},
		Used:      []model.Voucher{},
		Expired:   []model.Voucher{},
	}
	for _, v := range vouchers {
		switch {
		case v.IsUsed:
			wallet.Used = append(wallet.Used, v)
		case !v.ExpiryDate.After(now):
			wallet.Expired = append(wallet.Expired, v)
		default:
			wallet.Available = append(wallet.Available, v)
		}
	}
	return wallet, nil
}

// findUsableVoucher loads the user's voucher by code and checks it can still be spent on
// bookingID. A voucher carried by a pending payment of another booking is not spendable.
func findUsableVoucher(db *gorm.DB, userID uint, code string, bookingID uint) (*model.Voucher, error) {
	var voucher model.Voucher
	err := db.Where("code = ? AND user_id = ?", code, userID).First(&voucher).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrVoucherNotFound
	}
	if err != nil {
		return nil, err
	}
	switch {
	case voucher.IsUsed:
		return nil, ErrVoucherAlreadyUsed
	case !voucher.ExpiryDate.After(Now()):
		return nil, ErrVoucherExpired
	case voucher.DiscountAmount <= 0:
		return nil, ErrVoucherWorthless
	}

	var held int64
	if err := db.Model(&model.Payment{}).
		Where("voucher_id = ? AND status = ? AND booking_id <> ?", voucher.ID, constants.PAYMENT_PENDING, bookingID).
		Count(&held).Error; err != nil {
		return nil, err
	}
	if held > 0 {
		return nil, ErrVoucherPending
	}
	return &voucher, nil
}

// ApplyVoucher reserves a voucher for a booking in the user's session.
func ApplyVoucher(ctx context.Context, db *gorm.DB, store session.Store, userID uint, input *model.ApplyVoucherInput) (*model.VoucherReservation, error) {
	paymentType, ok := utils.CanonicalValue(input.PaymentType, constants.PAYMENT_TYPE)
	if !ok || paymentType != constants.PAYMENT_TYPE_FULL {
		return nil, ErrVoucherFullPaymentOnly
	}
	code, ok := utils.NormalizeVoucherCode(input.Code)
	if !ok {
		return nil, ErrVoucherCodeInvalid
	}
	if _, err := LoadPayableBooking(db, userID, input.BookingID, paymentType); err != nil {
		return nil, err
	}

	current, err := store.GetVoucher(ctx, userID)
	if err != nil {
		return nil, err
	}
	if current != nil {
		if current.BookingID != input.BookingID {
			return nil, ErrVoucherAlreadyUsed
		}
		return nil, ErrVoucherAlreadyApplied
	}

	voucher, err := findUsableVoucher(db, userID, code, input.BookingID)
	if err != nil {
		return nil, err
	}

	reservation := &model.VoucherReservation{
		VoucherID: voucher.ID,
		Code:      voucher.Code,
		Amount:    voucher.DiscountAmount,
		BookingID: input.BookingID,
	}
	if err := store.SetVoucher(ctx, userID, reservation); err != nil {
		return nil, err
	}

	metrics.IncVoucher("applied")
	return reservation, nil
}

func RemoveVoucher(ctx context.Context, store session.Store, userID, bookingID uint) error {
	current, err := store.GetVoucher(ctx, userID)
	if err != nil {
		return err
	}
	if current == nil {
		return nil
	}
	if current.BookingID != bookingID {
		return ErrVoucherOtherBooking
	}
	if err := store.ClearVoucher(ctx, userID); err != nil {
		return err
	}
	metrics.IncVoucher("removed")
	return nil
}

// ReservedDiscount returns the reservation bound to bookingID after re-reading the voucher from
// the database. A reservation that is no longer spendable is dropped.
func ReservedDiscount(ctx context.Context, db *gorm.DB, store session.Store, userID, bookingID uint) (*model.VoucherReservation, error) {
	current, err := store.GetVoucher(ctx, userID)
	if err != nil {
		return nil, err
	}
	if current == nil || current.BookingID != bookingID {
		return nil, nil
	}

	voucher, err := findUsableVoucher(db, userID, current.Code, bookingID)
	if err != nil && !isVoucherRejection(err) {
		return nil, err
	}
	if err != nil || voucher.ID != current.VoucherID {
		if clearErr := store.ClearVoucher(ctx, userID); clearErr != nil {
			log.Warn().Err(clearErr).Uint("userId", userID).Msg("drop stale voucher reservation")
		}
		return nil, nil
	}

	current.Amount = voucher.DiscountAmount
	return current, nil
}

func isVoucherRejection(err error) bool {
	return errors.Is(err, ErrVoucherNotFound) || errors.Is(err, ErrVoucherAlreadyUsed) ||
		errors.Is(err, ErrVoucherExpired) || errors.Is(err, ErrVoucherWorthless) || errors.Is(err, ErrVoucherPending)
}
