package database

import (
	"time"

	"pawfect_grooming/config"
	"pawfect_grooming/constants"
	"pawfect_grooming/model"
	"pawfect_grooming/utils"

	"github.com/gosimple/slug"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB, auth config.AuthConfig) {
	if auth.AdminPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(auth.AdminPassword), 10)
		if err != nil {
			log.Error().Err(err).Msg("hash seed admin password")
		} else {
			admin := model.User{
				Email:           auth.AdminEmail,
				PasswordHash:    string(hash),
				Name:            "Salon Admin",
				Role:            constants.ROLE_ADMIN,
				IsEmailVerified: true,
				IsActive:        true,
				PhotoURL:        constants.DEFAULT_USER_PHOTO,
			}
			if err := db.Where(model.User{Email: admin.Email}).FirstOrCreate(&admin).Error; err != nil {
				log.Error().Err(err).Str("email", admin.Email).Msg("failed to seed admin")
			}
		}
	}

	services := []model.CatalogItem{
		{Name: "Bath & Brush", Price: 45, PetType: constants.PET_TYPE_CAT_DOG,
			Description: "Shampoo, blow dry and a full brush out.",
			Features:    []string{"Shampoo", "Blow dry", "Brushing"}},
		{Name: "Nail Trim", Price: 15, PetType: constants.PET_TYPE_CAT_DOG,
			Description: "Nail clipping and filing.",
			Features:    []string{"Clipping", "Filing"}},
		{Name: "Full Dog Groom", Price: 90, PetType: constants.PET_TYPE_DOG,
			Description: "Bath, haircut, ear cleaning and nail trim.",
			Features:    []string{"Bath", "Haircut", "Ear cleaning", "Nail trim"}},
		{Name: "Cat Lion Cut", Price: 110, PetType: constants.PET_TYPE_CAT,
			Description: "Body shave leaving the mane, paws and tail tip.",
			Features:    []string{"Shave", "Sanitary trim"}},
	}
	for _, item := range services {
		item.Slug = slug.Make(item.Name)
		row := model.ServiceOption{CatalogItem: item}
		if err := db.Where("slug = ?", item.Slug).FirstOrCreate(&row).Error; err != nil {
			log.Error().Err(err).Str("service", item.Name).Msg("failed to seed service")
		}
	}

	packages := []model.CatalogItem{
		{Name: "Pamper Package", Price: 150, PetType: constants.PET_TYPE_DOG,
			Description: "Full groom with teeth brushing and a paw balm.",
			Features:    []string{"Full groom", "Teeth brushing", "Paw balm"}},
		{Name: "Kitty Spa", Price: 130, PetType: constants.PET_TYPE_CAT,
			Description: "Bath, de-shedding treatment and nail trim.",
			Features:    []string{"Bath", "De-shedding", "Nail trim"}},
	}
	for _, item := range packages {
		item.Slug = slug.Make(item.Name)
		row := model.Package{CatalogItem: item}
		if err := db.Where("slug = ?", item.Slug).FirstOrCreate(&row).Error; err != nil {
			log.Error().Err(err).Str("package", item.Name).Msg("failed to seed package")
		}
	}

	faqs := []model.FAQ{
		{Question: "What are your opening hours?", Keyword: "hour,open,time,close",
			Answer: "We are open Monday to Saturday from 9:00 AM to 6:00 PM. We are closed on Sundays."},
		{Question: "How much is the deposit?", Keyword: "deposit",
			Answer: "A deposit of RM20 secures your booking. The rest is paid at the salon."},
		{Question: "How do vouchers work?", Keyword: "voucher,point,reward",
			Answer: "Every RM1 of full payment earns one point. 100 points can be redeemed for a RM5 voucher."},
		{Question: "Can I cancel my appointment?", Keyword: "cancel,reschedule",
			Answer: "You can cancel or reschedule any upcoming appointment from My Bookings."},
	}
	for _, faq := range faqs {
		if err := db.Where(model.FAQ{Question: faq.Question}).FirstOrCreate(&faq).Error; err != nil {
			log.Error().Err(err).Str("question", faq.Question).Msg("failed to seed faq")
		}
	}

	holidays := []model.Holiday{
		{Name: "New Year's Day", Date: utils.NewDate(2026, time.January, 1), IsRecurring: true},
		{Name: "Labour Day", Date: utils.NewDate(2026, time.May, 1), IsRecurring: true},
		{Name: "Merdeka Day", Date: utils.NewDate(2026, time.August, 31), IsRecurring: true},
		{Name: "Malaysia Day", Date: utils.NewDate(2026, time.September, 16), IsRecurring: true},
		{Name: "Christmas Day", Date: utils.NewDate(2026, time.December, 25), IsRecurring: true},
	}
	for _, h := range holidays {
		if err := db.Where(model.Holiday{Name: h.Name}).FirstOrCreate(&h).Error; err != nil {
			log.Error().Err(err).Str("holiday", h.Name).Msg("failed to seed holiday")
		}
	}
}
