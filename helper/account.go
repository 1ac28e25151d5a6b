package helper

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pawfect_grooming/config"
	"pawfect_grooming/constants"
	"pawfect_grooming/metrics"
	"pawfect_grooming/model"
	"pawfect_grooming/session"
	"pawfect_grooming/utils"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func newToken() (*string, *time.Time) {
	token := uuid.NewString()
	expiry := time.Now().Add(config.App.Auth.TokenTTL)
	return &token, &expiry
}

func tokenMatches(user *model.User, token string, now time.Time) bool {
	return user.Token != nil && user.TokenExpiry != nil &&
		*user.Token == token && now.Before(*user.TokenExpiry)
}

func GetUserByID(db *gorm.DB, id uint) (*model.User, error) {
	var user model.User
	if err := db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// RegisterUser creates an unverified account and queues the verification mail. A correct
// admin key makes the account an Admin.
func RegisterUser(db *gorm.DB, input *model.RegisterInput) (*model.User, error) {
	role := constants.ROLE_MEMBER
	if input.AdminKey != "" {
		if config.App.Auth.AdminKey == "" || input.AdminKey != config.App.Auth.AdminKey {
			return nil, ErrInvalidAdminKey
		}
		role = constants.ROLE_ADMIN
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	existing, err := GetUserByEmail(db, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	var user model.User
	if err := copier.Copy(&user, input); err != nil {
		return nil, err
	}
	user.Email = email
	user.PasswordHash = hash
	user.Role = role
	user.IsActive = true
	if user.PhotoURL == "" {
		user.PhotoURL = constants.DEFAULT_USER_PHOTO
	}
	user.Token, user.TokenExpiry = newToken()

	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}

	QueueVerificationMail(db, &user)
	return &user, nil
}

func VerifyEmail(db *gorm.DB, email, token string) error {
	user, err := GetUserByEmail(db, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return err
	}
	if user == nil || !tokenMatches(user, token, time.Now()) {
		return ErrInvalidToken
	}

	return db.Model(user).Updates(map[string]any{
		"is_email_verified": true,
		"token":             nil,
		"token_expiry":      nil,
	}).Error
}

// LoginError reports a failed password check together with the attempt it used up.
type LoginError struct {
	Attempt int
	Max     int
}

func (e *LoginError) Error() string {
	return fmt.Sprintf("%s. Attempt %d/%d", constants.INVALID_CREDENTIALS, e.Attempt, e.Max)
}

func (e *LoginError) Unwrap() error { return ErrBadCredentials }

// Login checks credentials with a per-email failure window kept in the session store.
func Login(ctx context.Context, db *gorm.DB, store session.Store, input *model.LoginInput, device, ip string) (*model.User, error) {
	auth := config.App.Auth
	key := strings.ToLower(strings.TrimSpace(input.Email))

	attempts, err := store.LoginAttempts(ctx, key)
	if err != nil {
		return nil, err
	}
	if attempts >= auth.LoginMaxAttempts {
		return nil, ErrLoginPaused
	}

	user, err := GetUserByEmail(db, key)
	if err != nil {
		return nil, err
	}
	if user != nil && !user.IsActive {
		return nil, ErrUserInactive
	}
	if user == nil || !CheckPasswordHash(input.Password, user.PasswordHash) {
		n, err := store.AddLoginAttempt(ctx, key, auth.LoginWindow)
		if err != nil {
			return nil, err
		}
		return nil, &LoginError{Attempt: n, Max: auth.LoginMaxAttempts}
	}

	if !user.IsEmailVerified {
		user.Token, user.TokenExpiry = newToken()
		if err := db.Model(user).Updates(map[string]any{"token": user.Token, "token_expiry": user.TokenExpiry}).Error; err != nil {
			return nil, err
		}
		QueueVerificationMail(db, user)
		return nil, ErrEmailNotVerified
	}

	if err := store.ResetLoginAttempts(ctx, key); err != nil {
		log.Warn().Err(err).Str("email", key).Msg("reset login attempts")
	}
	if !user.IsTemporary && user.Token != nil {
		if err := db.Model(user).Updates(map[string]any{"token": nil, "token_expiry": nil}).Error; err != nil {
			return nil, err
		}
		user.Token, user.TokenExpiry = nil, nil
	}

	RecordLogin(db, user.ID, device, ip)
	return user, nil
}

func RecordLogin(db *gorm.DB, userID uint, device, ip string) {
	history := model.LoginHistory{UserID: userID, LoginTime: time.Now(), Devices: device, IP: ip}
	if len(history.Devices) > 300 {
		history.Devices = history.Devices[:300]
	}
	if err := db.Create(&history).Error; err != nil {
		log.Error().Err(err).Uint("userId", userID).Msg("record login history")
	}
}

func ForgotPassword(db *gorm.DB, email string) error {
	user, err := GetUserByEmail(db, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return err
	}
	if user == nil || user.IsTemporary {
		return ErrUserNotFound
	}

	user.Token, user.TokenExpiry = newToken()
	if err := db.Model(user).Updates(map[string]any{"token": user.Token, "token_expiry": user.TokenExpiry}).Error; err != nil {
		return err
	}
	QueueResetMail(db, user)
	return nil
}

func ResetPassword(db *gorm.DB, input *model.ResetPasswordInput) error {
	user, err := GetUserByEmail(db, strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		return err
	}
	if user == nil || !tokenMatches(user, input.Token, time.Now()) {
		return ErrInvalidToken
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return db.Model(user).Updates(map[string]any{
		"password_hash": hash,
		"token":         nil,
		"token_expiry":  nil,
	}).Error
}

func ChangePassword(db *gorm.DB, user *model.User, input *model.ChangePasswordInput) error {
	if !CheckPasswordHash(input.CurrentPassword, user.PasswordHash) {
		return ErrWrongPassword
	}
	hash, err := HashPassword(input.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = hash
	return db.Model(user).Update("password_hash", hash).Error
}

// TemporaryLogin creates a short-lived demo account when token matches the configured demo
// token for the requested role.
func TemporaryLogin(db *gorm.DB, token, role string) (*model.TempLoginResult, error) {
	auth := config.App.Auth

	if role == "" {
		role = constants.ROLE_MEMBER
	}
	role, ok := utils.CanonicalValue(role, constants.ROLE)
	if !ok {
		return nil, ErrInvalidTempToken
	}
	expected := auth.TempMemberToken
	prefix := "Guest_"
	if role == constants.ROLE_ADMIN {
		expected = auth.TempAdminToken
		prefix = "Admin_"
	}
	if expected == "" || token != expected {
		return nil, ErrInvalidTempToken
	}

	id := uuid.NewString()
	hash, err := HashPassword(uuid.NewString())
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	loginToken := uuid.NewString()
	expiry := time.Now().Add(auth.TempAccountTTL)

	user := model.User{
		Email:           id + constants.TEMP_EMAIL_DOMAIN,
		PasswordHash:    hash,
		Name:            prefix + strings.ReplaceAll(id, "-", "")[:8],
		PhotoURL:        constants.DEFAULT_USER_PHOTO,
		Role:            role,
		IsEmailVerified: true,
		IsActive:        true,
		IsTemporary:     true,
		Token:           &loginToken,
		TokenExpiry:     &expiry,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}

	return &model.TempLoginResult{Token: loginToken, Expiry: expiry, Role: role, User: user}, nil
}

// TempTokenLogin exchanges an unexpired temporary login token for its account.
func TempTokenLogin(db *gorm.DB, token string) (*model.User, error) {
	var user model.User
	err := db.Where("token = ? AND is_temporary = ?", token, true).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidTempToken
	}
	if err != nil {
		return nil, err
	}
	if !tokenMatches(&user, token, time.Now()) || !user.IsActive {
		return nil, ErrInvalidTempToken
	}
	return &user, nil
}

// SweepTemporaryAccounts deletes temporary accounts whose expiry is not after now, together
// with everything they own.
func SweepTemporaryAccounts(db *gorm.DB, now time.Time) (int, error) {
	var candidates []model.User
	if err := db.Where("is_temporary = ?", true).Find(&candidates).Error; err != nil {
		return 0, err
	}

	var ids []uint
	for _, u := range candidates {
		if u.TokenExpiry != nil && !u.TokenExpiry.After(now) {
			ids = append(ids, u.ID)
		}
	}
	if len(ids) == 0 {
		return 0, nil
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var bookingIDs []uint
		if err := tx.Model(&model.Booking{}).Where("user_id IN ?", ids).Pluck("id", &bookingIDs).Error; err != nil {
			return err
		}
		if len(bookingIDs) > 0 {
			if err := tx.Where("booking_id IN ?", bookingIDs).Delete(&model.Payment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", bookingIDs).Delete(&model.Booking{}).Error; err != nil {
				return err
			}
		}
		for _, row := range []any{&model.Pet{}, &model.Voucher{}, &model.LoginHistory{}} {
			if err := tx.Where("user_id IN ?", ids).Delete(row).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("id IN ?", ids).Delete(&model.User{}).Error; err != nil {
			return err
		}
		if len(bookingIDs) > 0 {
			return SyncTopSellers(tx)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("delete temporary accounts: %w", err)
	}

	metrics.AddTempSwept(len(ids))
	return len(ids), nil
}

// ToggleUserActive flips IsActive. Deactivating also deactivates the user's upcoming bookings.
func ToggleUserActive(db *gorm.DB, userID uint) (*model.User, error) {
	var user model.User
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		user.IsActive = !user.IsActive
		if err := tx.Model(&user).Update("is_active", user.IsActive).Error; err != nil {
			return err
		}
		if user.IsActive {
			return nil
		}

		var bookings []model.Booking
		if err := tx.Where("user_id = ? AND is_active = ?", user.ID, true).Find(&bookings).Error; err != nil {
			return err
		}
		today := utils.NewDate(Now().In(config.App.Location()).Date())
		var upcoming []uint
		for _, b := range bookings {
			if !b.Date.Time.Before(today.Time) {
				upcoming = append(upcoming, b.ID)
			}
		}
		if len(upcoming) == 0 {
			return nil
		}
		if err := tx.Model(&model.Booking{}).Where("id IN ?", upcoming).Update("is_active", false).Error; err != nil {
			return err
		}
		return SyncTopSellers(tx)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}
