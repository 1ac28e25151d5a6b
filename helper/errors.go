package helper

import (
	"errors"

	"pawfect_grooming/constants"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserInactive      = errors.New(constants.ACCOUNT_NOT_ACTIVE)
	ErrEmailTaken        = errors.New(constants.EMAIL_EXISTS)
	ErrInvalidAdminKey   = errors.New(constants.INVALID_ADMIN_KEY)
	ErrInvalidToken      = errors.New(constants.INVALID_TOKEN)
	ErrLoginPaused       = errors.New(constants.LOGIN_PAUSED)
	ErrBadCredentials    = errors.New(constants.INVALID_CREDENTIALS)
	ErrEmailNotVerified  = errors.New(constants.EMAIL_NOT_VERIFIED)
	ErrInvalidTempToken  = errors.New("invalid temporary login token")
	ErrWeakPassword      = errors.New(constants.PASSWORD_POLICY)
	ErrPasswordMismatch  = errors.New(constants.PASSWORD_NOT_MATCH)
	ErrWrongPassword     = errors.New(constants.CURRENT_PASSWORD_INCORRECT)
	ErrInvalidPhone      = errors.New("phone number must look like +60123456789")
	ErrPetNotFound       = errors.New("pet not found")
	ErrHasActiveBookings = errors.New(constants.HAS_ACTIVE_BOOKINGS)

	ErrServiceNotFound   = errors.New("service or package not found")
	ErrChooseOneItem     = errors.New("choose exactly one service or package")
	ErrInvalidDate       = errors.New("date must be YYYY-MM-DD")
	ErrInvalidTime       = errors.New("time must look like 9:00 AM")
	ErrUnknownSlot       = errors.New("time is not one of the salon's slots")
	ErrPastSlot          = errors.New("appointment time has already passed")
	ErrTooSoon           = errors.New("same-day appointments need at least one hour notice")
	ErrSalonClosed       = errors.New(constants.SALON_CLOSED)
	ErrHolidayClosed     = errors.New(constants.HOLIDAY_CLOSED)
	ErrHolidayNotFound   = errors.New("holiday not found")
	ErrSlotTaken         = errors.New(constants.SLOT_TAKEN)
	ErrDuplicateBooking  = errors.New("you already have this appointment")
	ErrNoDraft           = errors.New("no booking in progress")
	ErrDraftIncomplete   = errors.New("booking draft is missing a schedule or a pet")
	ErrPetTypeMismatch   = errors.New("this service is not offered for this pet type")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrBookingInactive   = errors.New("booking is not active")
	ErrBookingNotPayable = errors.New("booking is not awaiting payment")
	ErrBookingCompleted  = errors.New("completed bookings cannot be cancelled")
	ErrInvalidStatus     = errors.New("unknown booking status")

	ErrNotEnoughPoints        = errors.New("not enough points to redeem a voucher")
	ErrVoucherCodeExhausted   = errors.New("could not generate a unique voucher code")
	ErrVoucherFullPaymentOnly = errors.New("vouchers can only be applied to full payments")
	ErrVoucherCodeInvalid     = errors.New("voucher code format is invalid")
	ErrVoucherNotFound        = errors.New("voucher not found")
	ErrVoucherAlreadyUsed     = errors.New(constants.VOUCHER_ALREADY_USED)
	ErrVoucherAlreadyApplied  = errors.New(constants.VOUCHER_ALREADY_APPLIED)
	ErrVoucherExpired         = errors.New("voucher has expired")
	ErrVoucherWorthless       = errors.New("voucher has no discount value")
	ErrVoucherOtherBooking    = errors.New("the applied voucher belongs to another booking")
	ErrVoucherPending         = errors.New("voucher is held by an unfinished payment of another booking")

	ErrInvalidPaymentType   = errors.New("payment type must be Deposit or Full Payment")
	ErrInvalidPaymentMethod = errors.New("unsupported payment method")
	ErrInvalidCard          = errors.New("card number must have 16 digits")
	ErrInvalidExpiry        = errors.New("card expiry must be a future MM/YY")
	ErrInvalidCVV           = errors.New("CVV must have 3 digits")
	ErrBankRequired         = errors.New("bank is required for FPX")
	ErrInvalidWallet        = errors.New("wallet provider, a wallet id of 8 to 50 characters and a name are required")
	ErrNothingToCharge      = errors.New("nothing to charge online for this booking")
	ErrFallbackDisabled     = errors.New("fallback payments are disabled")
	ErrFallbackDeposit      = errors.New("fallback payments cannot be used for deposits")
	ErrIntentNotSucceeded   = errors.New("payment has not succeeded")
	ErrIntentMismatch       = errors.New("payment intent does not belong to this booking")
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrCheckoutNotPaid      = errors.New("checkout session is not paid")
	ErrGatewayUnavailable   = errors.New("payment gateway is not configured")
)

// clientErrors are rejections of the request itself rather than failures of the service.
var clientErrors = []error{
	ErrInvalidAdminKey, ErrInvalidToken, ErrWeakPassword, ErrPasswordMismatch, ErrWrongPassword,
	ErrInvalidPhone, ErrChooseOneItem, ErrInvalidDate, ErrInvalidTime, ErrUnknownSlot, ErrPastSlot,
	ErrTooSoon, ErrSalonClosed, ErrHolidayClosed, ErrNoDraft, ErrDraftIncomplete, ErrPetTypeMismatch,
	ErrBookingInactive, ErrBookingNotPayable, ErrBookingCompleted, ErrInvalidStatus,
	ErrNotEnoughPoints, ErrVoucherFullPaymentOnly, ErrVoucherCodeInvalid, ErrVoucherAlreadyUsed,
	ErrVoucherAlreadyApplied, ErrVoucherExpired, ErrVoucherWorthless, ErrVoucherOtherBooking, ErrVoucherPending,
	ErrInvalidPaymentType, ErrInvalidPaymentMethod, ErrInvalidCard, ErrInvalidExpiry, ErrInvalidCVV,
	ErrBankRequired, ErrInvalidWallet, ErrNothingToCharge, ErrFallbackDisabled, ErrFallbackDeposit,
	ErrIntentNotSucceeded, ErrIntentMismatch, ErrCheckoutNotPaid,
}

func IsClientError(err error) bool {
	for _, e := range clientErrors {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
