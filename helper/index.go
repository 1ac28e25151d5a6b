package helper

import (
	"errors"
	"fmt"
	"time"

	"pawfect_grooming/config"
	"pawfect_grooming/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	tokenKindAccess  = "access"
	tokenKindRefresh = "refresh"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func jwtSecret() []byte {
	return []byte(config.App.Auth.JWTSecret)
}

func generateToken(claim model.TokenClaim, kind string, ttl time.Duration) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["userId"] = claim.UserId
	claims["email"] = claim.Email
	claims["role"] = claim.Role
	claims["kind"] = kind
	claims["exp"] = time.Now().Add(ttl).Unix()

	return token.SignedString(jwtSecret())
}

func GenerateAccessToken(claim model.TokenClaim) (string, error) {
	return generateToken(claim, tokenKindAccess, config.App.Auth.AccessTokenTTL)
}

func GenerateRefreshToken(claim model.TokenClaim) (string, error) {
	return generateToken(claim, tokenKindRefresh, config.App.Auth.RefreshTokenTTL)
}

// IssueTokens returns a fresh access/refresh pair for the user.
func IssueTokens(user *model.User) (model.TokenData, error) {
	claim := model.TokenClaim{UserId: user.ID, Email: user.Email, Role: user.Role}

	access, err := GenerateAccessToken(claim)
	if err != nil {
		return model.TokenData{}, err
	}
	refresh, err := GenerateRefreshToken(claim)
	if err != nil {
		return model.TokenData{}, err
	}
	return model.TokenData{AccessToken: access, RefreshToken: refresh}, nil
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	})
}

// ClaimFromToken extracts the claim of a verified token of the given kind.
func ClaimFromToken(token *jwt.Token, kind string) (model.TokenClaim, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return model.TokenClaim{}, errors.New("invalid token claims")
	}
	if k, _ := claims["kind"].(string); k != kind {
		return model.TokenClaim{}, fmt.Errorf("expected %s token", kind)
	}
	userId, ok := claims["userId"].(float64)
	if !ok || userId <= 0 {
		return model.TokenClaim{}, errors.New("invalid userId in payload")
	}
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	return model.TokenClaim{UserId: uint(userId), Email: email, Role: role}, nil
}

func AccessClaim(token *jwt.Token) (model.TokenClaim, error) {
	return ClaimFromToken(token, tokenKindAccess)
}

func RefreshClaim(token *jwt.Token) (model.TokenClaim, error) {
	return ClaimFromToken(token, tokenKindRefresh)
}

// CurrentUser returns the user loaded by the auth middleware.
func CurrentUser(c *fiber.Ctx) *model.User {
	user, _ := c.Locals("currentUser").(*model.User)
	return user
}

func GetUserByEmail(db *gorm.DB, email string) (*model.User, error) {
	var user model.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
