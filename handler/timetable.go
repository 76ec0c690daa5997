package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"salon_manager/constants"
	"salon_manager/criteria"
	"salon_manager/database"
	"salon_manager/dto"
	"salon_manager/model"
	"salon_manager/repository"
	"salon_manager/search"
	"salon_manager/utils"
)

func timeTableSearchText(t *model.TimeTable) string {
	return strings.Join([]string{
		t.WeekdayOpen, t.WeekdayClose,
		t.SaturdayOpen, t.SaturdayClose,
		t.SundayOpen, t.SundayClose,
	}, " ")
}

func GetTimeTables(c *fiber.Ctx) error {
	crit, err := criteria.Parse(model.TimeTableCriteria, c.Queries())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_CRITERIA, err)
	}
	if err := checkSort(c, "time_tables"); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_SORT, err)
	}

	pg := utils.ParsePage(c)
	page, err := repository.FindAllWithEagerRelationships[model.TimeTable](database.DB, "time_tables", crit, pg, c.Query("sort"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}

	dtos := make([]dto.TimeTableDTO, 0, len(page.Rows))
	for i := range page.Rows {
		dtos = append(dtos, *dto.NewTimeTableDTO(&page.Rows[i]))
	}
	utils.SetPaginationHeaders(c, page.TotalCount, pg)
	return c.Status(fiber.StatusOK).JSON(dtos)
}

func GetTimeTableById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	tt, ok, err := repository.FindOneWithEagerRelationships[model.TimeTable](database.DB, id)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, errors.New("time table not found"))
	}
	return c.Status(fiber.StatusOK).JSON(dto.NewTimeTableDTO(tt))
}

func CreateTimeTable(c *fiber.Ctx) error {
	input, ok := c.Locals("inputTimeTable").(*dto.TimeTableDTO)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	if input.ID != 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ID_NOT_ALLOWED_FOR_CREATE, errors.New("id must be empty"))
	}

	tt, err := input.ToEntity(database.DB)
	if err != nil {
		return refError(c, err)
	}
	if err := database.DB.Create(tt).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	search.Index(c.Context(), "time-tables", tt.ID, timeTableSearchText(tt))
	return c.Status(fiber.StatusCreated).JSON(dto.NewTimeTableDTO(tt))
}

func UpdateTimeTable(c *fiber.Ctx) error {
	input, ok := c.Locals("inputTimeTable").(*dto.TimeTableDTO)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	if input.ID == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ID_REQUIRED_FOR_UPDATE, errors.New("id is required"))
	}

	var existing model.TimeTable
	if err := database.DB.First(&existing, input.ID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	tt, err := input.ToEntity(database.DB)
	if err != nil {
		return refError(c, err)
	}
	tt.ID = input.ID
	tt.CreatedAt = existing.CreatedAt

	if err := database.DB.Save(tt).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	search.Index(c.Context(), "time-tables", tt.ID, timeTableSearchText(tt))
	return c.Status(fiber.StatusOK).JSON(dto.NewTimeTableDTO(tt))
}

func DeleteTimeTable(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	if err := database.DB.Delete(&model.TimeTable{DTO: model.DTO{ID: id}}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	search.Remove(c.Context(), "time-tables", id)
	return c.SendStatus(fiber.StatusNoContent)
}

func SearchTimeTables(c *fiber.Ctx) error {
	ids, err := search.Query(c.Context(), "time-tables", c.Query("query"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.SEARCH_UNAVAILABLE, err)
	}

	pg := utils.ParsePage(c)
	rows, err := repository.FindAllByIds[model.TimeTable](database.DB, "time_tables", paginateIds(ids, pg))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}

	dtos := make([]dto.TimeTableDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, *dto.NewTimeTableDTO(&rows[i]))
	}
	utils.SetPaginationHeaders(c, int64(len(ids)), pg)
	return c.Status(fiber.StatusOK).JSON(dtos)
}
