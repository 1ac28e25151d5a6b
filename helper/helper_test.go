package helper

import (
	"context"
	"fmt"
	"testing"
	"time"

	"pawfect_grooming/config"
	"pawfect_grooming/constants"
	"pawfect_grooming/database"
	"pawfect_grooming/gateway"
	"pawfect_grooming/model"
	"pawfect_grooming/session"
	"pawfect_grooming/utils"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testPassword = "Secret1!"

// monday is the fixed clock of the tests: Monday 19 October 2026, 08:00.
var monday time.Time

type env struct {
	db    *gorm.DB
	store *session.MemoryStore
	ctx   context.Context
}

func setup(t *testing.T) *env {
	t.Helper()

	cfg := config.Default()
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.AdminKey = "letmein"
	cfg.Auth.TempMemberToken = "demo-member"
	cfg.Auth.TempAdminToken = "demo-admin"
	config.App = cfg

	db, err := database.Open(config.DatabaseConfig{
		Driver:     "sqlite",
		SQLitePath: "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db

	monday = time.Date(2026, 10, 19, 8, 0, 0, 0, cfg.Location())
	previous := Now
	Now = func() time.Time { return monday }
	t.Cleanup(func() { Now = previous })

	return &env{db: db, store: session.NewMemoryStore(time.Hour), ctx: context.Background()}
}

func (e *env) user(t *testing.T, points int) *model.User {
	t.Helper()
	hash, err := HashPassword(testPassword)
	require.NoError(t, err)

	u := model.User{
		Email:           fmt.Sprintf("%d.%s", gofakeit.Number(1, 1_000_000), gofakeit.Email()),
		PasswordHash:    hash,
		Name:            gofakeit.Name(),
		Role:            constants.ROLE_MEMBER,
		IsEmailVerified: true,
		IsActive:        true,
		Points:          points,
	}
	require.NoError(t, e.db.Create(&u).Error)
	return &u
}

func (e *env) pet(t *testing.T, owner *model.User, petType string) *model.Pet {
	t.Helper()
	p := model.Pet{
		Name:    gofakeit.PetName(),
		PetType: petType,
		Gender:  "Male",
		Age:     gofakeit.Number(1, 12),
		Weight:  8.5,
		UserID:  owner.ID,
	}
	require.NoError(t, e.db.Create(&p).Error)
	return &p
}

func (e *env) service(t *testing.T, name string, price float64, petType string) *model.ServiceOption {
	t.Helper()
	s := model.ServiceOption{CatalogItem: model.CatalogItem{
		Name:    name,
		Slug:    GenerateUniqueSlug(e.db, &model.ServiceOption{}, name, 0),
		Price:   price,
		PetType: petType,
	}}
	require.NoError(t, e.db.Create(&s).Error)
	return &s
}

func (e *env) pkg(t *testing.T, name string, price float64, petType string) *model.Package {
	t.Helper()
	p := model.Package{CatalogItem: model.CatalogItem{
		Name:    name,
		Slug:    GenerateUniqueSlug(e.db, &model.Package{}, name, 0),
		Price:   price,
		PetType: petType,
	}}
	require.NoError(t, e.db.Create(&p).Error)
	return &p
}

// booking inserts a booking directly, bypassing the draft flow.
func (e *env) booking(t *testing.T, owner *model.User, pet *model.Pet, service *model.ServiceOption, date, slot, status string) *model.Booking {
	t.Helper()
	d, err := utils.ParseDate(date)
	require.NoError(t, err)

	b := model.Booking{
		UserID:     owner.ID,
		PetID:      pet.ID,
		ServiceID:  &service.ID,
		Date:       d,
		Time:       slot,
		Price:      service.Price,
		Count:      1,
		IsActive:   status != constants.BOOKING_CANCELLED,
		Status:     status,
		PublicCode: uuid.NewString(),
	}
	require.NoError(t, e.db.Create(&b).Error)
	return &b
}

func (e *env) voucher(t *testing.T, owner *model.User, code string, expiry time.Time) *model.Voucher {
	t.Helper()
	v := model.Voucher{Code: code, UserID: owner.ID, DiscountAmount: 5, ExpiryDate: expiry}
	require.NoError(t, e.db.Create(&v).Error)
	return &v
}

func (e *env) reload(t *testing.T, dst any, id uint) {
	t.Helper()
	require.NoError(t, e.db.First(dst, id).Error)
}

func (e *env) count(t *testing.T, row any, query string, args ...any) int64 {
	t.Helper()
	var n int64
	q := e.db.Model(row)
	if query != "" {
		q = q.Where(query, args...)
	}
	require.NoError(t, q.Count(&n).Error)
	return n
}

type fakeGateway struct {
	intents  map[string]*gateway.Intent
	sessions map[string]*gateway.CheckoutSession
	requests []gateway.IntentRequest
	checkout []gateway.CheckoutRequest
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{intents: map[string]*gateway.Intent{}, sessions: map[string]*gateway.CheckoutSession{}}
}

func (f *fakeGateway) CreateIntent(ctx context.Context, req gateway.IntentRequest) (*gateway.Intent, error) {
	f.requests = append(f.requests, req)
	id := fmt.Sprintf("pi_test_%d", len(f.requests))
	intent := &gateway.Intent{ID: id, Status: "requires_payment_method", AmountCents: req.AmountCents,
		ClientSecret: id + "_secret", Metadata: req.Metadata}
	f.intents[id] = intent
	return intent, nil
}

func (f *fakeGateway) GetIntent(ctx context.Context, id string) (*gateway.Intent, error) {
	intent, ok := f.intents[id]
	if !ok {
		return nil, fmt.Errorf("no such intent %s", id)
	}
	return intent, nil
}

func (f *fakeGateway) CreateCheckout(ctx context.Context, req gateway.CheckoutRequest) (*gateway.CheckoutSession, error) {
	f.checkout = append(f.checkout, req)
	id := fmt.Sprintf("cs_test_%d", len(f.checkout))
	cs := &gateway.CheckoutSession{ID: id, URL: "https://checkout.test/" + id, PaymentStatus: "unpaid", Metadata: req.Metadata}
	f.sessions[id] = cs
	return cs, nil
}

func (f *fakeGateway) GetCheckout(ctx context.Context, id string) (*gateway.CheckoutSession, error) {
	cs, ok := f.sessions[id]
	if !ok {
		return nil, fmt.Errorf("no such session %s", id)
	}
	return cs, nil
}

func (f *fakeGateway) ParseWebhook(payload []byte, signature string) (*gateway.Event, error) {
	return nil, fmt.Errorf("not supported")
}
