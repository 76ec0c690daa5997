package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"

	"salon_manager/constants"
	"salon_manager/criteria"
	"salon_manager/database"
	"salon_manager/dto"
	"salon_manager/helper"
	"salon_manager/model"
	"salon_manager/repository"
	"salon_manager/search"
	"salon_manager/utils"
)

var salonPreloads = []string{"Owner", "Image", "Categories"}

func salonSearchText(s *model.Salon) string {
	return strings.Join([]string{s.Name, s.Location, s.Description}, " ")
}

func GetSalons(c *fiber.Ctx) error {
	crit, err := criteria.Parse(model.SalonCriteria, c.Queries())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_CRITERIA, err)
	}
	if err := checkSort(c, "salons"); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_SORT, err)
	}

	pg := utils.ParsePage(c)
	page, err := repository.FindAllWithEagerRelationships[model.Salon](database.DB, "salons", crit, pg, c.Query("sort"), salonPreloads...)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}

	dtos := make([]dto.SalonDTO, 0, len(page.Rows))
	for i := range page.Rows {
		dtos = append(dtos, *dto.NewSalonDTO(&page.Rows[i]))
	}
	utils.SetPaginationHeaders(c, page.TotalCount, pg)
	return c.Status(fiber.StatusOK).JSON(dtos)
}

func GetSalonById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	salon, ok, err := repository.FindOneWithEagerRelationships[model.Salon](database.DB, id, salonPreloads...)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, errors.New("salon not found"))
	}
	return c.Status(fiber.StatusOK).JSON(dto.NewSalonDTO(salon))
}

func CreateSalon(c *fiber.Ctx) error {
	input, ok := c.Locals("inputSalon").(*dto.SalonDTO)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	if input.ID != 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ID_NOT_ALLOWED_FOR_CREATE, errors.New("id must be empty"))
	}
	_, isAdmin, isOwner := helper.GetInfoUserFromToken(c)
	if !isAdmin && !isOwner {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_PERMISSION, errors.New("not permission"))
	}

	db := database.DB
	tx := db.Begin()

	var count int64
	tx.Model(&model.Salon{}).Where("name = ?", input.Name).Count(&count)
	if count > 0 {
		tx.Rollback()
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.SALON_NAME_EXISTS, errors.New("name already exists"), "name")
	}

	salon, err := input.ToEntity(tx)
	if err != nil {
		tx.Rollback()
		return refError(c, err)
	}
	salon.Slug = helper.GenerateUniqueSalonSlug(tx, salon.Name)

	if err := tx.Omit(clause.Associations).Create(salon).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	if err := tx.Model(salon).Association("Categories").Replace(salon.Categories); err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	tx.Commit()

	search.Index(c.Context(), "salons", salon.ID, salonSearchText(salon))
	return c.Status(fiber.StatusCreated).JSON(dto.NewSalonDTO(salon))
}

func UpdateSalon(c *fiber.Ctx) error {
	input, ok := c.Locals("inputSalon").(*dto.SalonDTO)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	if input.ID == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ID_REQUIRED_FOR_UPDATE, errors.New("id is required"))
	}

	db := database.DB
	tx := db.Begin()

	var existing model.Salon
	if err := tx.First(&existing, input.ID).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	salon, err := input.ToEntity(tx)
	if err != nil {
		tx.Rollback()
		return refError(c, err)
	}
	salon.ID = input.ID
	salon.CreatedAt = existing.CreatedAt
	salon.Slug = existing.Slug
	if salon.Name != existing.Name {
		salon.Slug = helper.GenerateUniqueSalonSlug(tx, salon.Name)
	}

	if err := tx.Omit(clause.Associations).Save(salon).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	if err := tx.Model(salon).Association("Categories").Replace(salon.Categories); err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	tx.Commit()

	search.Index(c.Context(), "salons", salon.ID, salonSearchText(salon))
	return c.Status(fiber.StatusOK).JSON(dto.NewSalonDTO(salon))
}

func DeleteSalon(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	if err := database.DB.Select(clause.Associations).Delete(&model.Salon{DTO: model.DTO{ID: id}}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	search.Remove(c.Context(), "salons", id)
	return c.SendStatus(fiber.StatusNoContent)
}

func SearchSalons(c *fiber.Ctx) error {
	ids, err := search.Query(c.Context(), "salons", c.Query("query"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.SEARCH_UNAVAILABLE, err)
	}

	pg := utils.ParsePage(c)
	rows, err := repository.FindAllByIds[model.Salon](database.DB, "salons", paginateIds(ids, pg), salonPreloads...)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}

	dtos := make([]dto.SalonDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, *dto.NewSalonDTO(&rows[i]))
	}
	utils.SetPaginationHeaders(c, int64(len(ids)), pg)
	return c.Status(fiber.StatusOK).JSON(dtos)
}
