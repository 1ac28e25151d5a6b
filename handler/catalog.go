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

// catalogRow is a pointer to a ServiceOption or a Package.
type catalogRow[T any] interface {
	*T
	Item() *model.CatalogItem
}

var catalogSort = map[string]string{
	"name":  "name",
	"price": "price",
	"count": "count",
}

func listCatalog[T any, P catalogRow[T]](c *fiber.Ctx) error {
	filter, ok := c.Locals("catalogFilter").(model.CatalogFilter)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("catalogFilter missing"))
	}

	query := database.DB.Model(new(T))
	if filter.Name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(strings.TrimSpace(filter.Name))+"%")
	}
	if filter.PetType != "" {
		query = query.Where("LOWER(pet_type) = ?", strings.ToLower(strings.TrimSpace(filter.PetType)))
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var rows []T
	query = utils.ApplySorting(query, filter.Sort, filter.Dir, catalogSort, "id ASC")
	if err := utils.ApplyPagination(query, filter.Limit, filter.Page).Find(&rows).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       rows,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func catalogBySlug[T any](c *fiber.Ctx) error {
	var row T
	err := database.DB.Where("slug = ?", c.Params("slug")).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return respondError(c, helper.ErrServiceNotFound)
	}
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, row)
}

func createCatalog[T any, P catalogRow[T]](c *fiber.Ctx) error {
	input, ok := c.Locals("inputCatalog").(model.CatalogInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("inputCatalog missing"))
	}

	row := P(new(T))
	item := row.Item()
	copier.Copy(item, &input)
	item.Slug = helper.GenerateUniqueSlug(database.DB, row, item.Name, 0)

	if err := database.DB.Create(row).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, row)
}

func updateCatalog[T any, P catalogRow[T]](c *fiber.Ctx) error {
	input, ok := c.Locals("inputCatalog").(model.CatalogInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("inputCatalog missing"))
	}
	id := c.Locals("inputId").(int)

	row := P(new(T))
	err := database.DB.First(row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return respondError(c, helper.ErrServiceNotFound)
	}
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	item := row.Item()
	renamed := item.Name != input.Name
	copier.Copy(item, &input)
	if renamed {
		item.Slug = helper.GenerateUniqueSlug(database.DB, row, item.Name, uint(id))
	}
	if err := database.DB.Save(row).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, row)
}

// deleteCatalog refuses while an active booking references the row through column.
func deleteCatalog[T any](c *fiber.Ctx, column string) error {
	id := c.Locals("inputId").(int)

	var row T
	err := database.DB.First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return respondError(c, helper.ErrServiceNotFound)
	}
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	busy, err := helper.HasActiveBookings(database.DB, column, uint(id))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	if busy {
		return respondError(c, helper.ErrHasActiveBookings)
	}
	if err := database.DB.Delete(&row).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Deleted")
}

func GetServices(c *fiber.Ctx) error { return listCatalog[model.ServiceOption](c) }
func GetPackages(c *fiber.Ctx) error { return listCatalog[model.Package](c) }
func GetServiceBySlug(c *fiber.Ctx) error { return catalogBySlug[model.ServiceOption](c) }
func GetPackageBySlug(c *fiber.Ctx) error { return catalogBySlug[model.Package](c) }
func CreateService(c *fiber.Ctx) error { return createCatalog[model.ServiceOption](c) }
func CreatePackage(c *fiber.Ctx) error { return createCatalog[model.Package](c) }
func UpdateService(c *fiber.Ctx) error { return updateCatalog[model.ServiceOption](c) }
func UpdatePackage(c *fiber.Ctx) error { return updateCatalog[model.Package](c) }
func DeleteService(c *fiber.Ctx) error { return deleteCatalog[model.ServiceOption](c, "service_id") }
func DeletePackage(c *fiber.Ctx) error { return deleteCatalog[model.Package](c, "package_id") }

// GetTopSellers returns the services and packages with the highest booking counts.
func GetTopSellers(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 3)
	if limit <= 0 || limit > 20 {
		limit = 3
	}

	var top model.TopSellers
	db := database.DB
	if err := db.Order("count DESC, id").Limit(limit).Find(&top.Services).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := db.Order("count DESC, id").Limit(limit).Find(&top.Packages).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, top)
}
