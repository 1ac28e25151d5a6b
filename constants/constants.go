package constants

const (
	ROLE_ADMIN  = "Admin"
	ROLE_MEMBER = "Member"
)

var ROLE = []string{ROLE_ADMIN, ROLE_MEMBER}

// Booking status
const (
	BOOKING_PENDING_PAYMENT = "PendingPayment"
	BOOKING_DEPOSIT         = "Deposit"
	BOOKING_COMPLETED       = "Completed"
	BOOKING_CANCELLED       = "Cancelled"
)

var BOOKING_STATUS = []string{BOOKING_PENDING_PAYMENT, BOOKING_DEPOSIT, BOOKING_COMPLETED, BOOKING_CANCELLED}

// Payment status
const (
	PAYMENT_PENDING   = "Pending"
	PAYMENT_COMPLETED = "Completed"
	PAYMENT_FAILED    = "Failed"
	PAYMENT_DEPOSIT   = "Deposit"
)

const (
	PAYMENT_TYPE_DEPOSIT = "Deposit"
	PAYMENT_TYPE_FULL    = "Full Payment"
)

var PAYMENT_TYPE = []string{PAYMENT_TYPE_DEPOSIT, PAYMENT_TYPE_FULL}

const (
	METHOD_CREDIT_CARD  = "Credit Card"
	METHOD_FPX          = "FPX"
	METHOD_E_WALLET     = "E-Wallet"
	METHOD_STRIPE       = "Stripe"
	METHOD_FPX_FALLBACK = "FPX (Fallback)"
)

var SIMULATED_METHOD = []string{METHOD_CREDIT_CARD, METHOD_FPX, METHOD_E_WALLET}

const (
	PET_TYPE_DOG     = "Dog"
	PET_TYPE_CAT     = "Cat"
	PET_TYPE_CAT_DOG = "Cat & Dog"
)

var CATALOG_PET_TYPE = []string{PET_TYPE_DOG, PET_TYPE_CAT, PET_TYPE_CAT_DOG}

const (
	TIME_LAYOUT = "3:04 PM"
	DATE_LAYOUT = "2006-01-02"

	DEFAULT_PET_PHOTO  = "noimage.png"
	DEFAULT_USER_PHOTO = "default.png"

	TEMP_EMAIL_DOMAIN      = "@temp.local"
	STRIPE_FALLBACK_PREFIX = "pi_fallback_"

	VOUCHER_ALPHABET    = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	VOUCHER_CODE_LENGTH = 10

	FEED_CHANNEL = "appointments:status"
)

// Mail kinds stored in the outbox
const (
	MAIL_VERIFY_EMAIL    = "verify_email"
	MAIL_RESET_PASSWORD  = "reset_password"
	MAIL_BOOKING_CONFIRM = "booking_confirmation"
	MAIL_BOOKING_STATUS  = "booking_status"
	MAIL_PAYMENT_RECEIPT = "payment_receipt"
)

// Response messages
const (
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_INPUT                = "Invalid input"
	ERROR_PARSE_DATA_TO_LOCALS = "Failed to read request data"
	DATA_INPUT_IS_NOT_NUMBER   = "Parameter must be a number"
	NOT_FOUND_RECORDS          = "Record not found"
	NOT_ADMIN                  = "Admin access required"
	NOT_MEMBER                 = "Member access required"
	ERROR_CREATE               = "Create failed"
	ERROR_UPDATE               = "Update failed"
	ERROR_DELETE               = "Delete failed"
	CAN_NOT_HASH_PASSWORD      = "Could not hash password"
	MISSING_LOGIN_INPUT        = "Email and password are required"
	INVALID_CREDENTIALS        = "Invalid email or password"
	ACCOUNT_NOT_ACTIVE         = "Your account has been deactivated"
	ACCOUNT_NOT_FOUND          = "Account no longer exists, please log in again"
	EMAIL_NOT_VERIFIED         = "Please verify your email before logging in"
	EMAIL_EXISTS               = "Email is already registered"
	LOGIN_PAUSED               = "Login paused"
	INVALID_ADMIN_KEY          = "Invalid admin key"
	INVALID_TOKEN              = "Invalid or expired token"
	PASSWORD_NOT_MATCH         = "Passwords do not match"
	CURRENT_PASSWORD_INCORRECT = "Current password is incorrect"
	PASSWORD_POLICY            = "Password needs lower and upper case letters, a digit and one of @$!%*?.&"
	SALON_CLOSED               = "We are closed on Sundays"
	HOLIDAY_CLOSED             = "We are closed for a public holiday"
	SLOT_TAKEN                 = "This time slot is already booked"
	HAS_ACTIVE_BOOKINGS        = "There are active bookings referencing this record"
	VOUCHER_ALREADY_USED       = "Voucher already used"
	VOUCHER_ALREADY_APPLIED    = "A voucher is already applied."
	FAQ_EMPTY_QUESTION         = "Please provide a question."
	FAQ_FALLBACK_ANSWER        = "Sorry I am not able to answer this, hope you have a Pawfect day!"
	NO_CHANGES                 = "No changes"
)
