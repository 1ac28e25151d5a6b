package model

import "time"

type User struct {
	DTO
	Email           string     `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash    string     `gorm:"not null" json:"-"`
	Name            string     `gorm:"size:100" json:"name"`
	PhotoURL        string     `gorm:"size:300" json:"photoUrl"`
	Gender          string     `gorm:"size:20" json:"gender"`
	PhoneNumber     string     `gorm:"size:20" json:"phoneNumber"`
	Role            string     `gorm:"size:20;not null;index" json:"role"`
	IsEmailVerified bool       `gorm:"not null" json:"isEmailVerified"`
	Token           *string    `gorm:"size:64" json:"-"`
	TokenExpiry     *time.Time `json:"-"`
	IsActive        bool       `gorm:"not null" json:"isActive"`
	IsTemporary     bool       `gorm:"not null;index" json:"isTemporary"`
	Points          int        `gorm:"not null" json:"points"`
}

type RegisterInput struct {
	Email           string `json:"email" validate:"required,email,max=100"`
	Password        string `json:"password" validate:"required,min=5,max=100"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
	Name            string `json:"name" validate:"required,max=100"`
	Gender          string `json:"gender" validate:"required,oneof=Male Female"`
	PhoneNumber     string `json:"phoneNumber" validate:"required"`
	PhotoURL        string `json:"photoUrl" validate:"omitempty,max=300"`
	AdminKey        string `json:"adminKey"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type ForgotPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordInput struct {
	Email           string `json:"email" validate:"required,email"`
	Token           string `json:"token" validate:"required"`
	Password        string `json:"password" validate:"required,min=5,max=100"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

type TempTokenInput struct {
	Token string `json:"token" validate:"required"`
}

type UpdateProfileInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Gender      string `json:"gender" validate:"required,oneof=Male Female"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	PhotoURL    string `json:"photoUrl" validate:"omitempty,max=300"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=5,max=100"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

type UserFilter struct {
	Pagination
	Sorting
	Search string `query:"search"`
}

type TempLoginResult struct {
	Token  string    `json:"token"`
	Expiry time.Time `json:"expiry"`
	Role   string    `json:"role"`
	User   User      `json:"user"`
}

type LoginHistory struct {
	DTO
	UserID    uint      `gorm:"index;not null" json:"userId"`
	LoginTime time.Time `gorm:"not null" json:"loginTime"`
	Devices   string    `gorm:"size:300" json:"devices"`
	IP        string    `gorm:"size:64" json:"ip"`
}
