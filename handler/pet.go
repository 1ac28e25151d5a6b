package handler

import (
	"errors"
	"strings"

	"pawfect_grooming/constants"
	"pawfect_grooming/database"
	"pawfect_grooming/helper"
	"pawfect_grooming/model"
	"pawfect_grooming/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// ownPet loads the pet in "inputId" when it belongs to the current user.
func ownPet(c *fiber.Ctx) (*model.Pet, error) {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return nil, errors.New("inputId missing")
	}
	var pet model.Pet
	err := database.DB.Where("id = ? AND user_id = ?", id, helper.CurrentUser(c).ID).First(&pet).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrPetNotFound
	}
	return &pet, err
}

func GetPets(c *fiber.Ctx) error {
	var pets []model.Pet
	if err := database.DB.Where("user_id = ?", helper.CurrentUser(c).ID).Order("name").Find(&pets).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, pets)
}

func GetPetById(c *fiber.Ctx) error {
	pet, err := ownPet(c)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, pet)
}

func CreatePet(c *fiber.Ctx) error {
	input, ok := c.Locals("inputPet").(model.PetInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("inputPet missing"))
	}

	var pet model.Pet
	copier.Copy(&pet, &input)
	pet.UserID = helper.CurrentUser(c).ID
	if pet.PhotoURL == "" {
		pet.PhotoURL = constants.DEFAULT_PET_PHOTO
	}
	if err := database.DB.Create(&pet).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, pet)
}

func UpdatePet(c *fiber.Ctx) error {
	input, ok := c.Locals("inputPet").(model.PetInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("inputPet missing"))
	}
	pet, err := ownPet(c)
	if err != nil {
		return respondError(c, err)
	}

	copier.Copy(pet, &input)
	if pet.PhotoURL == "" {
		pet.PhotoURL = constants.DEFAULT_PET_PHOTO
	}
	if err := database.DB.Save(pet).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, pet)
}

func DeletePet(c *fiber.Ctx) error {
	pet, err := ownPet(c)
	if err != nil {
		return respondError(c, err)
	}

	busy, err := helper.HasActiveBookings(database.DB, "pet_id", pet.ID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	if busy {
		return respondError(c, helper.ErrHasActiveBookings)
	}
	if err := database.DB.Delete(pet).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Pet deleted")
}

// LookupPets lists pets of owners whose email contains the filter. PetType "All" means dogs and cats.
func LookupPets(c *fiber.Ctx) error {
	filter, ok := c.Locals("petLookup").(model.PetLookupFilter)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("petLookup missing"))
	}

	query := database.DB.Model(&model.Pet{}).Joins("User")
	if filter.Email != "" {
		query = query.Where(`LOWER("User".email) LIKE ?`, "%"+strings.ToLower(strings.TrimSpace(filter.Email))+"%")
	}
	switch {
	case filter.PetType == "", strings.EqualFold(filter.PetType, "All"):
		query = query.Where("pets.pet_type IN ?", []string{constants.PET_TYPE_DOG, constants.PET_TYPE_CAT})
	default:
		query = query.Where("LOWER(pets.pet_type) = ?", strings.ToLower(filter.PetType))
	}

	var pets []model.Pet
	if err := query.Order("pets.name").Find(&pets).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, pets)
}
