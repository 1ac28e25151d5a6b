package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"pawfect_grooming/config"
	"pawfect_grooming/constants"
	"pawfect_grooming/database"
	"pawfect_grooming/gateway"
	"pawfect_grooming/helper"
	"pawfect_grooming/model"
	"pawfect_grooming/router"
	"pawfect_grooming/session"
	"pawfect_grooming/utils"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76/webhook"
	"gorm.io/gorm"
)

const (
	testPassword  = "Secret1!"
	webhookSecret = "whsec_test"
)

type testApp struct {
	app *fiber.App
	db  *gorm.DB
}

type response struct {
	status int
	body   map[string]any
	raw    []byte
	header http.Header
}

func setup(t *testing.T) *testApp {
	t.Helper()

	cfg := config.Default()
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.AdminKey = "letmein"
	cfg.Auth.TempMemberToken = "demo-member"
	cfg.Auth.TempAdminToken = "demo-admin"
	cfg.Stripe.WebhookSecret = webhookSecret
	cfg.RateLimit.RPS = 1000
	cfg.RateLimit.Burst = 1000
	config.App = cfg

	db, err := database.Open(config.DatabaseConfig{
		Driver:     "sqlite",
		SQLitePath: "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db

	session.Default = session.NewMemoryStore(time.Hour)
	gateway.Default = gateway.NewStripeClient(cfg.Stripe)
	helper.FeedClient = nil

	monday := time.Date(2026, 10, 19, 8, 0, 0, 0, cfg.Location())
	previous := helper.Now
	helper.Now = func() time.Time { return monday }
	t.Cleanup(func() {
		helper.Now = previous
		gateway.Default = nil
	})

	app := fiber.New()
	router.SetupRoutes(app)
	return &testApp{app: app, db: db}
}

func (a *testApp) do(t *testing.T, method, path string, body any, token string, headers ...string) response {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		payload, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := response{status: resp.StatusCode, raw: raw, header: resp.Header}
	if strings.HasPrefix(resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(raw, &out.body))
	}
	return out
}

func (r response) data() map[string]any {
	data, _ := r.body["data"].(map[string]any)
	return data
}

func (a *testApp) user(t *testing.T, role string) (*model.User, string) {
	t.Helper()
	hash, err := helper.HashPassword(testPassword)
	require.NoError(t, err)

	u := model.User{
		Email:           fmt.Sprintf("%d.%s", gofakeit.Number(1, 1_000_000), strings.ToLower(gofakeit.Email())),
		PasswordHash:    hash,
		Name:            gofakeit.Name(),
		Gender:          "Female",
		PhoneNumber:     "+60123456789",
		Role:            role,
		IsEmailVerified: true,
		IsActive:        true,
	}
	require.NoError(t, a.db.Create(&u).Error)

	tokens, err := helper.IssueTokens(&u)
	require.NoError(t, err)
	return &u, tokens.AccessToken
}

func (a *testApp) service(t *testing.T, name string, price float64, petType string) *model.ServiceOption {
	t.Helper()
	s := model.ServiceOption{CatalogItem: model.CatalogItem{
		Name:    name,
		Slug:    helper.GenerateUniqueSlug(a.db, &model.ServiceOption{}, name, 0),
		Price:   price,
		PetType: petType,
	}}
	require.NoError(t, a.db.Create(&s).Error)
	return &s
}

func (a *testApp) pet(t *testing.T, owner *model.User, petType string) *model.Pet {
	t.Helper()
	p := model.Pet{Name: gofakeit.PetName(), PetType: petType, Gender: "Male", Age: 3, Weight: 8.5, UserID: owner.ID}
	require.NoError(t, a.db.Create(&p).Error)
	return &p
}

func (a *testApp) booking(t *testing.T, owner *model.User, pet *model.Pet, service *model.ServiceOption, date, slot string) *model.Booking {
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
		IsActive:   true,
		Status:     constants.BOOKING_PENDING_PAYMENT,
		PublicCode: uuid.NewString(),
	}
	require.NoError(t, a.db.Create(&b).Error)
	return &b
}

func TestRegisterVerifyLogin(t *testing.T) {
	a := setup(t)
	register := map[string]any{
		"email":           "Amy@Example.com",
		"password":        "weakpass",
		"confirmPassword": "weakpass",
		"name":            "Amy",
		"gender":          "Female",
		"phoneNumber":     "+60123456789",
	}

	res := a.do(t, http.MethodPost, "/api/v1/auth/register", register, "")
	assert.Equal(t, http.StatusBadRequest, res.status)
	assert.Equal(t, "password", res.body["keyError"])

	register["password"] = testPassword
	register["confirmPassword"] = testPassword
	res = a.do(t, http.MethodPost, "/api/v1/auth/register", register, "")
	require.Equal(t, http.StatusCreated, res.status)
	assert.Equal(t, "amy@example.com", res.data()["email"])

	res = a.do(t, http.MethodPost, "/api/v1/auth/register", register, "")
	assert.Equal(t, http.StatusConflict, res.status)
	assert.Equal(t, "email", res.body["keyError"])

	login := map[string]any{"email": "amy@example.com", "password": testPassword}
	res = a.do(t, http.MethodPost, "/api/v1/auth/login", login, "")
	assert.Equal(t, http.StatusForbidden, res.status)

	var stored model.User
	require.NoError(t, a.db.Where("email = ?", "amy@example.com").First(&stored).Error)
	require.NotNil(t, stored.Token)

	q := url.Values{"email": {stored.Email}, "token": {*stored.Token}}
	res = a.do(t, http.MethodGet, "/api/v1/auth/verify?"+q.Encode(), nil, "")
	require.Equal(t, http.StatusOK, res.status)

	res = a.do(t, http.MethodPost, "/api/v1/auth/login", login, "")
	require.Equal(t, http.StatusOK, res.status)
	access, _ := res.data()["accessToken"].(string)
	require.NotEmpty(t, access)
	assert.Equal(t, constants.ROLE_MEMBER, res.data()["role"])

	res = a.do(t, http.MethodGet, "/api/v1/account/me", nil, access)
	require.Equal(t, http.StatusOK, res.status)
	assert.Equal(t, "amy@example.com", res.data()["email"])

	res = a.do(t, http.MethodGet, "/api/v1/account/login-history", nil, access)
	require.Equal(t, http.StatusOK, res.status)
	history, _ := res.body["data"].([]any)
	assert.Len(t, history, 1)
}

func TestLoginPausesAfterFailures(t *testing.T) {
	a := setup(t)
	u, _ := a.user(t, constants.ROLE_MEMBER)
	wrong := map[string]any{"email": u.Email, "password": "Wrong1!pass"}

	for i := 1; i <= config.App.Auth.LoginMaxAttempts; i++ {
		res := a.do(t, http.MethodPost, "/api/v1/auth/login", wrong, "")
		require.Equal(t, http.StatusUnauthorized, res.status)
		assert.Contains(t, res.body["message"], fmt.Sprintf("Attempt %d/%d", i, config.App.Auth.LoginMaxAttempts))
	}

	right := map[string]any{"email": u.Email, "password": testPassword}
	res := a.do(t, http.MethodPost, "/api/v1/auth/login", right, "")
	assert.Equal(t, http.StatusTooManyRequests, res.status)

	res = a.do(t, http.MethodPost, "/api/v1/auth/login", map[string]any{"email": "not-an-email"}, "")
	assert.Equal(t, http.StatusBadRequest, res.status)
	assert.Equal(t, constants.MISSING_LOGIN_INPUT, res.body["message"])
}

func TestTemporaryLogin(t *testing.T) {
	a := setup(t)

	res := a.do(t, http.MethodPost, "/api/v1/auth/temp-login", nil, "", "X-Temp-Login-Token", "nope")
	assert.Equal(t, http.StatusUnauthorized, res.status)

	res = a.do(t, http.MethodPost, "/api/v1/auth/temp-login", nil, "",
		"X-Temp-Login-Token", "demo-admin", "X-Temp-Login-Role", "admin")
	require.Equal(t, http.StatusCreated, res.status)
	assert.Equal(t, constants.ROLE_ADMIN, res.data()["role"])
	token, _ := res.data()["token"].(string)
	require.NotEmpty(t, token)

	res = a.do(t, http.MethodPost, "/api/v1/auth/temp-token", map[string]any{"token": token}, "")
	require.Equal(t, http.StatusOK, res.status)
	access, _ := res.data()["accessToken"].(string)

	res = a.do(t, http.MethodGet, "/api/v1/admin/faqs", nil, access)
	assert.Equal(t, http.StatusOK, res.status)
}

func TestProtectedRoutes(t *testing.T) {
	a := setup(t)

	res := a.do(t, http.MethodGet, "/api/v1/account/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, res.status)

	res = a.do(t, http.MethodGet, "/api/v1/account/me", nil, "garbage")
	assert.Equal(t, http.StatusUnauthorized, res.status)
	assert.Equal(t, constants.INVALID_TOKEN, res.body["message"])

	gone, goneToken := a.user(t, constants.ROLE_MEMBER)
	require.NoError(t, a.db.Unscoped().Delete(gone).Error)
	res = a.do(t, http.MethodGet, "/api/v1/account/me", nil, goneToken)
	assert.Equal(t, http.StatusUnauthorized, res.status)
	assert.Equal(t, constants.ACCOUNT_NOT_FOUND, res.body["message"])

	inactive, inactiveToken := a.user(t, constants.ROLE_MEMBER)
	require.NoError(t, a.db.Model(inactive).Update("is_active", false).Error)
	res = a.do(t, http.MethodGet, "/api/v1/account/me", nil, inactiveToken)
	assert.Equal(t, http.StatusForbidden, res.status)

	_, member := a.user(t, constants.ROLE_MEMBER)
	_, admin := a.user(t, constants.ROLE_ADMIN)

	res = a.do(t, http.MethodGet, "/api/v1/admin/members", nil, member)
	assert.Equal(t, http.StatusForbidden, res.status)
	res = a.do(t, http.MethodGet, "/api/v1/pets/", nil, admin)
	assert.Equal(t, http.StatusForbidden, res.status)
	res = a.do(t, http.MethodGet, "/api/v1/admin/members", nil, admin)
	assert.Equal(t, http.StatusOK, res.status)
}

func TestPets(t *testing.T) {
	a := setup(t)
	owner, token := a.user(t, constants.ROLE_MEMBER)
	other, _ := a.user(t, constants.ROLE_MEMBER)

	input := map[string]any{"name": "Milo", "petType": "Dog", "gender": "Male", "age": 4, "weight": 12.5}
	res := a.do(t, http.MethodPost, "/api/v1/pets/", input, token)
	require.Equal(t, http.StatusCreated, res.status)
	assert.Equal(t, "noimage.png", res.data()["photoUrl"])
	id := uint(res.data()["id"].(float64))

	input["name"] = "Milo Jr"
	res = a.do(t, http.MethodPut, fmt.Sprintf("/api/v1/pets/%d", id), input, token)
	require.Equal(t, http.StatusOK, res.status)
	assert.Equal(t, "Milo Jr", res.data()["name"])

	foreign := a.pet(t, other, "Cat")
	res = a.do(t, http.MethodGet, fmt.Sprintf("/api/v1/pets/%d", foreign.ID), nil, token)
	assert.Equal(t, http.StatusNotFound, res.status)

	res = a.do(t, http.MethodGet, "/api/v1/pets/abc", nil, token)
	assert.Equal(t, http.StatusBadRequest, res.status)

	svc := a.service(t, "Bath", 40, "Dog")
	var pet model.Pet
	require.NoError(t, a.db.First(&pet, id).Error)
	a.booking(t, owner, &pet, svc, "2026-10-21", "10:00 AM")

	res = a.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/pets/%d", id), nil, token)
	assert.Equal(t, http.StatusConflict, res.status)
}

func TestCatalog(t *testing.T) {
	a := setup(t)
	_, admin := a.user(t, constants.ROLE_ADMIN)
	a.service(t, "Nail Trim", 20, "Dog")
	a.service(t, "Cat Bath", 35, "Cat")

	res := a.do(t, http.MethodGet, "/api/v1/services?petType=dog", nil, "")
	require.Equal(t, http.StatusOK, res.status)
	assert.EqualValues(t, 1, res.data()["totalCount"])

	res = a.do(t, http.MethodGet, "/api/v1/services?minPrice=50&maxPrice=10", nil, "")
	assert.Equal(t, http.StatusBadRequest, res.status)

	create := map[string]any{"name": "Nail Trim", "price": 22.5, "petType": "dog"}
	res = a.do(t, http.MethodPost, "/api/v1/admin/services", create, admin)
	require.Equal(t, http.StatusCreated, res.status)
	assert.Equal(t, "nail-trim-1", res.data()["slug"])
	assert.Equal(t, "Dog", res.data()["petType"])

	res = a.do(t, http.MethodGet, "/api/v1/services/nail-trim-1", nil, "")
	assert.Equal(t, http.StatusOK, res.status)
	res = a.do(t, http.MethodGet, "/api/v1/services/missing", nil, "")
	assert.Equal(t, http.StatusNotFound, res.status)
}

func TestBookingDraftFlow(t *testing.T) {
	a := setup(t)
	owner, token := a.user(t, constants.ROLE_MEMBER)
	pet := a.pet(t, owner, "Dog")
	svc := a.service(t, "Full Groom", 80, "Dog")

	res := a.do(t, http.MethodGet, "/api/v1/bookings/draft", nil, token)
	assert.Equal(t, http.StatusNotFound, res.status)

	schedule := map[string]any{"serviceId": svc.ID, "date": "2026-10-20", "time": "10:00 am"}
	res = a.do(t, http.MethodPost, "/api/v1/bookings/draft/schedule", schedule, token)
	require.Equal(t, http.StatusOK, res.status)
	assert.Equal(t, "10:00 AM", res.data()["time"])

	res = a.do(t, http.MethodGet, "/api/v1/bookings/draft/pets", nil, token)
	require.Equal(t, http.StatusOK, res.status)
	pets, _ := res.body["data"].([]any)
	assert.Len(t, pets, 1)

	res = a.do(t, http.MethodPost, "/api/v1/bookings/draft/pet", map[string]any{"petId": pet.ID}, token)
	require.Equal(t, http.StatusOK, res.status)

	res = a.do(t, http.MethodPost, "/api/v1/bookings/draft/confirm", nil, token)
	require.Equal(t, http.StatusCreated, res.status)
	assert.Equal(t, constants.BOOKING_PENDING_PAYMENT, res.data()["status"])
	bookingID := uint(res.data()["id"].(float64))

	res = a.do(t, http.MethodGet, "/api/v1/bookings/", nil, token)
	require.Equal(t, http.StatusOK, res.status)
	assert.EqualValues(t, 1, res.data()["totalCount"])

	res = a.do(t, http.MethodGet, fmt.Sprintf("/api/v1/bookings/%d/qr", bookingID), nil, token)
	require.Equal(t, http.StatusOK, res.status)
	assert.Equal(t, "image/png", res.header.Get(fiber.HeaderContentType))

	res = a.do(t, http.MethodGet, "/api/v1/bookings/slots?date=2026-10-20", nil, token)
	require.Equal(t, http.StatusOK, res.status)

	rival, rivalToken := a.user(t, constants.ROLE_MEMBER)
	a.pet(t, rival, "Dog")
	res = a.do(t, http.MethodPost, "/api/v1/bookings/draft/schedule", schedule, rivalToken)
	assert.Equal(t, http.StatusConflict, res.status)

	schedule["date"] = "2026-10-25"
	res = a.do(t, http.MethodPost, "/api/v1/bookings/draft/schedule", schedule, rivalToken)
	assert.Equal(t, http.StatusBadRequest, res.status)
	assert.Equal(t, "date", res.body["keyError"])

	res = a.do(t, http.MethodPost, fmt.Sprintf("/api/v1/bookings/%d/cancel", bookingID), nil, token)
	require.Equal(t, http.StatusOK, res.status)
	assert.Equal(t, constants.BOOKING_CANCELLED, res.data()["status"])
}

func TestSimulatedPaymentAndReceipt(t *testing.T) {
	a := setup(t)
	owner, token := a.user(t, constants.ROLE_MEMBER)
	_, strangerToken := a.user(t, constants.ROLE_MEMBER)
	_, adminToken := a.user(t, constants.ROLE_ADMIN)
	booking := a.booking(t, owner, a.pet(t, owner, "Dog"), a.service(t, "Bath", 40, "Dog"), "2026-10-21", "11:00 AM")

	pay := map[string]any{
		"bookingId":     booking.ID,
		"paymentType":   constants.PAYMENT_TYPE_FULL,
		"paymentMethod": "credit card",
		"cardNumber":    "4242",
		"expiryDate":    "12/27",
		"cvv":           "123",
	}
	res := a.do(t, http.MethodPost, "/api/v1/payments/simulated", pay, token)
	assert.Equal(t, http.StatusBadRequest, res.status)
	assert.Equal(t, "cardNumber", res.body["keyError"])

	pay["cardNumber"] = "4242 4242 4242 4242"
	res = a.do(t, http.MethodPost, "/api/v1/payments/simulated", pay, token)
	require.Equal(t, http.StatusCreated, res.status)
	paymentID := uint(res.data()["id"].(float64))

	var stored model.Booking
	require.NoError(t, a.db.First(&stored, booking.ID).Error)
	assert.Equal(t, constants.BOOKING_COMPLETED, stored.Status)

	receipt := fmt.Sprintf("/api/v1/payments/%d/receipt", paymentID)
	res = a.do(t, http.MethodGet, receipt, nil, token)
	assert.Equal(t, http.StatusOK, res.status)
	res = a.do(t, http.MethodGet, receipt, nil, strangerToken)
	assert.Equal(t, http.StatusNotFound, res.status)
	res = a.do(t, http.MethodGet, receipt, nil, adminToken)
	assert.Equal(t, http.StatusOK, res.status)

	res = a.do(t, http.MethodGet, "/api/v1/payments/history", nil, token)
	require.Equal(t, http.StatusOK, res.status)
	history, _ := res.body["data"].([]any)
	assert.Len(t, history, 1)
}

func signPayload(payload string) string {
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   []byte(payload),
		Secret:    webhookSecret,
		Timestamp: time.Now(),
	})
	return signed.Header
}

func TestStripeWebhook(t *testing.T) {
	a := setup(t)
	owner, _ := a.user(t, constants.ROLE_MEMBER)
	booking := a.booking(t, owner, a.pet(t, owner, "Dog"), a.service(t, "Bath", 45, "Dog"), "2026-10-21", "2:00 PM")

	payload := fmt.Sprintf(`{
		"id": "evt_1",
		"object": "event",
		"type": "payment_intent.succeeded",
		"data": {"object": {
			"id": "pi_hook",
			"object": "payment_intent",
			"amount": 4500,
			"status": "succeeded",
			"metadata": {"bookingId": "%d", "paymentType": "Full Payment"}
		}}
	}`, booking.ID)

	res := a.do(t, http.MethodPost, "/api/v1/payments/stripe/webhook", payload, "", "Stripe-Signature", "t=1,v1=deadbeef")
	assert.Equal(t, http.StatusBadRequest, res.status)

	res = a.do(t, http.MethodPost, "/api/v1/payments/stripe/webhook", payload, "", "Stripe-Signature", signPayload(payload))
	require.Equal(t, http.StatusOK, res.status)
	assert.Equal(t, true, res.body["received"])

	// a redelivered event must not create a second payment
	res = a.do(t, http.MethodPost, "/api/v1/payments/stripe/webhook", payload, "", "Stripe-Signature", signPayload(payload))
	require.Equal(t, http.StatusOK, res.status)

	var count int64
	require.NoError(t, a.db.Model(&model.Payment{}).Where("booking_id = ?", booking.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	gateway.Default = nil
	res = a.do(t, http.MethodPost, "/api/v1/payments/stripe/webhook", payload, "", "Stripe-Signature", signPayload(payload))
	assert.Equal(t, http.StatusServiceUnavailable, res.status)
}

func TestAdminAppointments(t *testing.T) {
	a := setup(t)
	owner, _ := a.user(t, constants.ROLE_MEMBER)
	_, admin := a.user(t, constants.ROLE_ADMIN)
	booking := a.booking(t, owner, a.pet(t, owner, "Dog"), a.service(t, "Bath", 40, "Dog"), "2026-10-21", "10:00 AM")
	path := fmt.Sprintf("/api/v1/admin/appointments/%d", booking.ID)

	res := a.do(t, http.MethodGet, "/api/v1/admin/appointments?email="+url.QueryEscape(owner.Email), nil, admin)
	require.Equal(t, http.StatusOK, res.status)
	assert.EqualValues(t, 1, res.data()["totalCount"])

	res = a.do(t, http.MethodPut, path, map[string]any{"time": "10:00 AM"}, admin)
	require.Equal(t, http.StatusOK, res.status)
	assert.Equal(t, constants.NO_CHANGES, res.body["message"])

	res = a.do(t, http.MethodPatch, path+"/status", map[string]any{"status": "Sleeping"}, admin)
	assert.Equal(t, http.StatusBadRequest, res.status)

	res = a.do(t, http.MethodPatch, path+"/status", map[string]any{"status": "cancelled"}, admin)
	require.Equal(t, http.StatusOK, res.status)
	assert.Equal(t, constants.BOOKING_CANCELLED, res.data()["status"])
	assert.Equal(t, false, res.data()["isActive"])

	var mails int64
	require.NoError(t, a.db.Model(&model.MailOutbox{}).
		Where("kind = ? AND recipient = ?", constants.MAIL_BOOKING_STATUS, owner.Email).Count(&mails).Error)
	assert.EqualValues(t, 1, mails)

	res = a.do(t, http.MethodDelete, path, nil, admin)
	assert.Equal(t, http.StatusOK, res.status)
	res = a.do(t, http.MethodGet, path, nil, admin)
	assert.Equal(t, http.StatusNotFound, res.status)
}

func TestFAQAnswer(t *testing.T) {
	a := setup(t)
	_, admin := a.user(t, constants.ROLE_ADMIN)

	res := a.do(t, http.MethodPost, "/api/v1/faq/answer", map[string]any{"question": "   "}, "")
	assert.Equal(t, http.StatusBadRequest, res.status)
	assert.Equal(t, constants.FAQ_EMPTY_QUESTION, res.body["message"])

	faq := map[string]any{"question": "When are you open?", "answer": "Monday to Saturday.", "keyword": "open, hours"}
	res = a.do(t, http.MethodPost, "/api/v1/admin/faqs", faq, admin)
	require.Equal(t, http.StatusCreated, res.status)

	res = a.do(t, http.MethodPost, "/api/v1/faq/answer", map[string]any{"question": "What are your HOURS?"}, "")
	require.Equal(t, http.StatusOK, res.status)
	assert.Equal(t, "Monday to Saturday.", res.data()["answer"])

	res = a.do(t, http.MethodPost, "/api/v1/faq/answer", map[string]any{"question": "Do you sell cakes?"}, "")
	require.Equal(t, http.StatusOK, res.status)
	assert.Equal(t, constants.FAQ_FALLBACK_ANSWER, res.data()["answer"])
}

func TestSalesWorkbook(t *testing.T) {
	a := setup(t)
	_, admin := a.user(t, constants.ROLE_ADMIN)

	res := a.do(t, http.MethodGet, "/api/v1/admin/reports/sales.xlsx", nil, admin)
	require.Equal(t, http.StatusOK, res.status)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", res.header.Get(fiber.HeaderContentType))
	assert.Contains(t, res.header.Get(fiber.HeaderContentDisposition), "sales-2026-10-19.xlsx")
	assert.NotEmpty(t, res.raw)
}

func TestHealth(t *testing.T) {
	a := setup(t)

	res := a.do(t, http.MethodGet, "/healthz", nil, "")
	require.Equal(t, http.StatusOK, res.status)
	assert.Equal(t, "ok", res.body["database"])
	assert.Equal(t, "disabled", res.body["redis"])
}

func TestHolidayClosures(t *testing.T) {
	a := setup(t)
	_, admin := a.user(t, constants.ROLE_ADMIN)
	owner, member := a.user(t, constants.ROLE_MEMBER)
	a.pet(t, owner, "Dog")
	svc := a.service(t, "Bath", 40, "Dog")

	res := a.do(t, http.MethodPost, "/api/v1/admin/holidays", map[string]any{"name": "Retreat", "date": "21-10-2026"}, admin)
	assert.Equal(t, http.StatusBadRequest, res.status)
	assert.Equal(t, "date", res.body["keyError"])

	res = a.do(t, http.MethodPost, "/api/v1/admin/holidays", map[string]any{"name": "Retreat", "date": "2026-10-21"}, admin)
	require.Equal(t, http.StatusCreated, res.status)

	schedule := map[string]any{"serviceId": svc.ID, "date": "2026-10-21", "time": "10:00 AM"}
	res = a.do(t, http.MethodPost, "/api/v1/bookings/draft/schedule", schedule, member)
	assert.Equal(t, http.StatusBadRequest, res.status)
	assert.Equal(t, constants.HOLIDAY_CLOSED, res.body["message"])

	res = a.do(t, http.MethodGet, "/api/v1/holidays/month?year=2026&month=10", nil, "")
	require.Equal(t, http.StatusOK, res.status)
	assert.Equal(t, "Retreat", res.data()["2026-10-21"])

	res = a.do(t, http.MethodGet, "/api/v1/holidays?year=2026", nil, "")
	require.Equal(t, http.StatusOK, res.status)
	assert.EqualValues(t, 1, res.data()["totalCount"])
}
