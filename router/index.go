package router

import (
	"pawfect_grooming/config"
	"pawfect_grooming/handler"
	"pawfect_grooming/middleware"
	"pawfect_grooming/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api", logger.New(), middleware.Metrics())
	v1 := api.Group("/v1")

	auth := v1.Group("/auth", middleware.RateLimit(config.App.RateLimit))
	auth.Post("/register", validate.Register(), handler.Register)
	auth.Get("/verify", handler.VerifyEmail)
	auth.Post("/login", validate.Login(), handler.Login)
	auth.Post("/refresh-token", validate.RefreshToken(), handler.RefreshToken)
	auth.Post("/forgot-password", validate.ForgotPassword(), handler.ForgotPassword)
	auth.Post("/reset-password", validate.ResetPassword(), handler.ResetPassword)
	auth.Post("/temp-login", handler.TemporaryLogin)
	auth.Post("/temp-token", validate.TempToken(), handler.TempTokenLogin)

	account := v1.Group("/account", middleware.Protected())
	account.Get("/me", handler.Me)
	account.Put("/me", validate.UpdateProfile(), handler.UpdateProfile)
	account.Post("/password", validate.ChangePassword(), handler.ChangePassword)
	account.Get("/login-history", handler.LoginHistory)

	pets := v1.Group("/pets", middleware.Protected(), middleware.MemberOnly())
	pets.Get("/", handler.GetPets)
	pets.Get("/:petId", validate.GetById("petId"), handler.GetPetById)
	pets.Post("/", validate.Pet(), handler.CreatePet)
	pets.Put("/:petId", validate.GetById("petId"), validate.Pet(), handler.UpdatePet)
	pets.Delete("/:petId", validate.GetById("petId"), handler.DeletePet)

	v1.Get("/services", validate.CatalogFilter(), handler.GetServices)
	v1.Get("/services/:slug", handler.GetServiceBySlug)
	v1.Get("/packages", validate.CatalogFilter(), handler.GetPackages)
	v1.Get("/packages/:slug", handler.GetPackageBySlug)
	v1.Get("/catalog/top", handler.GetTopSellers)
	v1.Get("/calendar", middleware.Protected(), validate.Calendar(), handler.GetCalendar)
	v1.Post("/faq/answer", validate.Ask(), handler.AnswerQuestion)
	v1.Get("/holidays", validate.HolidayFilter(), handler.GetHolidays)
	v1.Get("/holidays/month", validate.Calendar(), handler.GetClosedDays)

	booking := v1.Group("/bookings", middleware.Protected(), middleware.MemberOnly())
	booking.Get("/draft", handler.GetDraft)
	booking.Delete("/draft", handler.DiscardDraft)
	booking.Post("/draft/schedule", validate.Schedule(), handler.ScheduleDraft)
	booking.Get("/draft/pets", handler.GetDraftPets)
	booking.Post("/draft/pet", validate.SelectPet(), handler.SelectDraftPet)
	booking.Post("/draft/confirm", handler.ConfirmDraft)
	booking.Get("/slots", handler.GetSlots)
	booking.Get("/", validate.BookingFilter(), handler.GetBookings)
	booking.Get("/:bookingId", validate.GetById("bookingId"), handler.GetBookingById)
	booking.Get("/:bookingId/qr", validate.GetById("bookingId"), handler.GetBookingQR)
	booking.Put("/:bookingId/reschedule", validate.GetById("bookingId"), validate.Reschedule(), handler.RescheduleBooking)
	booking.Post("/:bookingId/cancel", validate.GetById("bookingId"), handler.CancelBooking)

	voucher := v1.Group("/vouchers", middleware.Protected(), middleware.MemberOnly())
	voucher.Get("/", handler.GetWallet)
	voucher.Post("/redeem", handler.RedeemVoucher)
	voucher.Post("/apply", validate.ApplyVoucher(), handler.ApplyVoucher)
	voucher.Post("/remove", validate.RemoveVoucher(), handler.RemoveVoucher)

	payment := v1.Group("/payments")
	payment.Post("/stripe/webhook", handler.StripeWebhook)
	payment.Get("/stripe/success", handler.CheckoutSuccess)
	payment.Get("/stripe/cancel", handler.CheckoutCancel)
	payment.Get("/stripe/config", handler.StripeConfig)
	payment.Get("/:paymentId/receipt", middleware.Protected(), validate.GetById("paymentId"), handler.GetReceipt)

	member := []fiber.Handler{middleware.Protected(), middleware.MemberOnly()}
	payment.Get("/quote", append(member, validate.PaymentTarget(), handler.GetQuote)...)
	payment.Get("/history", append(member, handler.GetPaymentHistory)...)
	payment.Post("/simulated", append(member, validate.SimulatedPayment(), handler.SimulatedPayment)...)
	payment.Post("/stripe/intent", append(member, validate.PaymentTarget(), handler.CreateStripeIntent)...)
	payment.Post("/stripe/confirm", append(member, validate.ConfirmIntent(), handler.ConfirmStripePayment)...)
	payment.Post("/stripe/checkout", append(member, validate.PaymentTarget(), handler.CreateCheckout)...)

	admin := v1.Group("/admin", middleware.Protected(), middleware.AdminOnly())
	admin.Get("/members", validate.UserFilter(), handler.GetMembers)
	admin.Get("/admins", validate.UserFilter(), handler.GetAdmins)
	admin.Patch("/users/:userId/toggle", validate.GetById("userId"), handler.ToggleUserActive)

	admin.Get("/appointments/feed", handler.UpgradeFeed, websocket.New(handler.AppointmentFeed))
	admin.Get("/appointments", validate.AdminBookingFilter(), handler.GetAppointments)
	admin.Get("/appointments/:bookingId", validate.GetById("bookingId"), handler.GetAppointmentById)
	admin.Put("/appointments/:bookingId", validate.GetById("bookingId"), validate.AdminBookingUpdate(), handler.UpdateAppointment)
	admin.Patch("/appointments/:bookingId/status", validate.GetById("bookingId"), validate.BookingStatus(), handler.SetAppointmentStatus)
	admin.Delete("/appointments/:bookingId", validate.GetById("bookingId"), handler.DeleteAppointment)

	admin.Get("/pets", validate.PetLookup(), handler.LookupPets)
	admin.Get("/payments/recent", handler.GetRecentPayments)
	admin.Get("/reports/sales", handler.SalesReport)
	admin.Get("/reports/sales.xlsx", handler.SalesReportWorkbook)

	admin.Post("/services", validate.CatalogItem(), handler.CreateService)
	admin.Put("/services/:serviceId", validate.GetById("serviceId"), validate.CatalogItem(), handler.UpdateService)
	admin.Delete("/services/:serviceId", validate.GetById("serviceId"), handler.DeleteService)
	admin.Post("/packages", validate.CatalogItem(), handler.CreatePackage)
	admin.Put("/packages/:packageId", validate.GetById("packageId"), validate.CatalogItem(), handler.UpdatePackage)
	admin.Delete("/packages/:packageId", validate.GetById("packageId"), handler.DeletePackage)

	admin.Post("/holidays", validate.Holiday(), handler.CreateHoliday)
	admin.Put("/holidays/:holidayId", validate.GetById("holidayId"), validate.Holiday(), handler.UpdateHoliday)
	admin.Delete("/holidays/:holidayId", validate.GetById("holidayId"), handler.DeleteHoliday)

	admin.Get("/faqs", handler.GetFAQs)
	admin.Post("/faqs", validate.FAQ(), handler.CreateFAQ)
	admin.Put("/faqs/:faqId", validate.GetById("faqId"), validate.FAQ(), handler.UpdateFAQ)
	admin.Delete("/faqs/:faqId", validate.GetById("faqId"), handler.DeleteFAQ)
}
