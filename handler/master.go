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
	"salon_manager/model"
	"salon_manager/repository"
	"salon_manager/search"
	"salon_manager/utils"
)

var masterPreloads = []string{"User", "Salon", "Categories"}

func masterSearchText(m *model.Master) string {
	return strings.Join([]string{m.Nickname, m.About}, " ")
}

func GetMasters(c *fiber.Ctx) error {
	crit, err := criteria.Parse(model.MasterCriteria, c.Queries())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_CRITERIA, err)
	}
	if err := checkSort(c, "masters"); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_SORT, err)
	}

	pg := utils.ParsePage(c)
	page, err := repository.FindAllWithEagerRelationships[model.Master](database.DB, "masters", crit, pg, c.Query("sort"), masterPreloads...)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}

	dtos := make([]dto.MasterDTO, 0, len(page.Rows))
	for i := range page.Rows {
		dtos = append(dtos, *dto.NewMasterDTO(&page.Rows[i]))
	}
	utils.SetPaginationHeaders(c, page.TotalCount, pg)
	return c.Status(fiber.StatusOK).JSON(dtos)
}

func GetMasterById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	master, ok, err := repository.FindOneWithEagerRelationships[model.Master](database.DB, id, masterPreloads...)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, errors.New("master not found"))
	}
	return c.Status(fiber.StatusOK).JSON(dto.NewMasterDTO(master))
}

func CreateMaster(c *fiber.Ctx) error {
	input, ok := c.Locals("inputMaster").(*dto.MasterDTO)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	if input.ID != 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ID_NOT_ALLOWED_FOR_CREATE, errors.New("id must be empty"))
	}

	tx := database.DB.Begin()
	master, err := input.ToEntity(tx)
	if err != nil {
		tx.Rollback()
		return refError(c, err)
	}
	if err := tx.Omit(clause.Associations).Create(master).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	if err := tx.Model(master).Association("Categories").Replace(master.Categories); err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	tx.Commit()

	search.Index(c.Context(), "masters", master.ID, masterSearchText(master))
	return c.Status(fiber.StatusCreated).JSON(dto.NewMasterDTO(master))
}

func UpdateMaster(c *fiber.Ctx) error {
	input, ok := c.Locals("inputMaster").(*dto.MasterDTO)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	if input.ID == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ID_REQUIRED_FOR_UPDATE, errors.New("id is required"))
	}

	tx := database.DB.Begin()

	var existing model.Master
	if err := tx.First(&existing, input.ID).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	master, err := input.ToEntity(tx)
	if err != nil {
		tx.Rollback()
		return refError(c, err)
	}
	master.ID = input.ID
	master.CreatedAt = existing.CreatedAt

	if err := tx.Omit(clause.Associations).Save(master).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	if err := tx.Model(master).Association("Categories").Replace(master.Categories); err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	tx.Commit()

	search.Index(c.Context(), "masters", master.ID, masterSearchText(master))
	return c.Status(fiber.StatusOK).JSON(dto.NewMasterDTO(master))
}

func DeleteMaster(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	if err := database.DB.Select(clause.Associations).Delete(&model.Master{DTO: model.DTO{ID: id}}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	search.Remove(c.Context(), "masters", id)
	return c.SendStatus(fiber.StatusNoContent)
}

func SearchMasters(c *fiber.Ctx) error {
	ids, err := search.Query(c.Context(), "masters", c.Query("query"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.SEARCH_UNAVAILABLE, err)
	}

	pg := utils.ParsePage(c)
	rows, err := repository.FindAllByIds[model.Master](database.DB, "masters", paginateIds(ids, pg), masterPreloads...)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}

	dtos := make([]dto.MasterDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, *dto.NewMasterDTO(&rows[i]))
	}
	utils.SetPaginationHeaders(c, int64(len(ids)), pg)
	return c.Status(fiber.StatusOK).JSON(dtos)
}
