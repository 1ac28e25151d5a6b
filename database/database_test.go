package database

import (
	"testing"

	"pawfect_grooming/config"
	"pawfect_grooming/constants"
	"pawfect_grooming/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func memoryConfig() config.DatabaseConfig {
	return config.DatabaseConfig{
		Driver:     "sqlite",
		SQLitePath: "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	}
}

func TestOpenAndMigrate(t *testing.T) {
	db, err := Open(memoryConfig())
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	for _, table := range []any{&model.User{}, &model.Booking{}, &model.Payment{}, &model.Voucher{}, &model.MailOutbox{}} {
		assert.True(t, db.Migrator().HasTable(table))
	}
	assert.True(t, db.Migrator().HasIndex(&model.Payment{}, "StripePaymentIntentID"))
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestSeedDataIsIdempotent(t *testing.T) {
	db, err := Open(memoryConfig())
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	auth := config.AuthConfig{AdminEmail: "admin@pawfect.local", AdminPassword: "Admin123!"}
	SeedData(db, auth)
	SeedData(db, auth)

	var admins []model.User
	require.NoError(t, db.Where("role = ?", constants.ROLE_ADMIN).Find(&admins).Error)
	require.Len(t, admins, 1)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admins[0].PasswordHash), []byte("Admin123!")))
	assert.True(t, admins[0].IsActive)

	var services, packages, faqs, holidays int64
	db.Model(&model.ServiceOption{}).Count(&services)
	db.Model(&model.Package{}).Count(&packages)
	db.Model(&model.FAQ{}).Count(&faqs)
	db.Model(&model.Holiday{}).Count(&holidays)
	assert.EqualValues(t, 4, services)
	assert.EqualValues(t, 2, packages)
	assert.EqualValues(t, 4, faqs)
	assert.EqualValues(t, 5, holidays)

	var groom model.ServiceOption
	require.NoError(t, db.Where("slug = ?", "full-dog-groom").First(&groom).Error)
	assert.Equal(t, []string{"Bath", "Haircut", "Ear cleaning", "Nail trim"}, groom.Features)
}
