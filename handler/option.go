package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"

	"salon_manager/constants"
	"salon_manager/criteria"
	"salon_manager/database"
	"salon_manager/dto"
	"salon_manager/model"
	"salon_manager/repository"
	"salon_manager/search"
	"salon_manager/utils"
)

func GetOptions(c *fiber.Ctx) error {
	crit, err := criteria.Parse(model.OptionCriteria, c.Queries())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_CRITERIA, err)
	}
	if err := checkSort(c, "options"); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_SORT, err)
	}

	pg := utils.ParsePage(c)
	page, err := repository.FindAllWithEagerRelationships[model.Option](database.DB, "options", crit, pg, c.Query("sort"), "Offer")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}

	dtos := make([]dto.OptionDTO, 0, len(page.Rows))
	for i := range page.Rows {
		dtos = append(dtos, *dto.NewOptionDTO(&page.Rows[i]))
	}
	utils.SetPaginationHeaders(c, page.TotalCount, pg)
	return c.Status(fiber.StatusOK).JSON(dtos)
}

func GetOptionById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	option, ok, err := repository.FindOneWithEagerRelationships[model.Option](database.DB, id, "Offer")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, errors.New("option not found"))
	}
	return c.Status(fiber.StatusOK).JSON(dto.NewOptionDTO(option))
}

func CreateOption(c *fiber.Ctx) error {
	input, ok := c.Locals("inputOption").(*dto.OptionDTO)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	if input.ID != 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ID_NOT_ALLOWED_FOR_CREATE, errors.New("id must be empty"))
	}

	tx := database.DB.Begin()
	option, err := input.ToEntity(tx)
	if err != nil {
		tx.Rollback()
		return refError(c, err)
	}
	if err := tx.Omit(clause.Associations).Create(option).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	tx.Commit()

	search.Index(c.Context(), "options", option.ID, option.Name)
	return c.Status(fiber.StatusCreated).JSON(dto.NewOptionDTO(option))
}

func UpdateOption(c *fiber.Ctx) error {
	input, ok := c.Locals("inputOption").(*dto.OptionDTO)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	if input.ID == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ID_REQUIRED_FOR_UPDATE, errors.New("id is required"))
	}

	tx := database.DB.Begin()

	var existing model.Option
	if err := tx.First(&existing, input.ID).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	option, err := input.ToEntity(tx)
	if err != nil {
		tx.Rollback()
		return refError(c, err)
	}
	option.ID = input.ID
	option.CreatedAt = existing.CreatedAt

	if err := tx.Omit(clause.Associations).Save(option).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	tx.Commit()

	search.Index(c.Context(), "options", option.ID, option.Name)
	return c.Status(fiber.StatusOK).JSON(dto.NewOptionDTO(option))
}

func DeleteOption(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	if err := database.DB.Select(clause.Associations).Delete(&model.Option{DTO: model.DTO{ID: id}}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	search.Remove(c.Context(), "options", id)
	return c.SendStatus(fiber.StatusNoContent)
}

func SearchOptions(c *fiber.Ctx) error {
	ids, err := search.Query(c.Context(), "options", c.Query("query"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.SEARCH_UNAVAILABLE, err)
	}

	pg := utils.ParsePage(c)
	rows, err := repository.FindAllByIds[model.Option](database.DB, "options", paginateIds(ids, pg), "Offer")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}

	dtos := make([]dto.OptionDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, *dto.NewOptionDTO(&rows[i]))
	}
	utils.SetPaginationHeaders(c, int64(len(ids)), pg)
	return c.Status(fiber.StatusOK).JSON(dtos)
}
