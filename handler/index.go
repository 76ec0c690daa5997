package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"salon_manager/constants"
	"salon_manager/dto"
	"salon_manager/model"
	"salon_manager/repository"
	"salon_manager/utils"
)

// refError maps a failed relation lookup to a field-keyed 400; anything
// else is a server error.
func refError(c *fiber.Ctx, err error) error {
	var missing *dto.MissingRefError
	if errors.As(err, &missing) {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.MISSING_RELATED_ENTITY, err, missing.Field)
	}
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
}

func checkSort(c *fiber.Ctx, table string) error {
	_, err := repository.OrderClause(table, c.Query("sort"))
	return err
}

// paginateIds slices a search result id list down to the requested page.
func paginateIds(ids []uint, pg model.Pagination) []uint {
	size := 20
	page := 1
	if pg.Size != nil && *pg.Size > 0 {
		size = *pg.Size
	}
	if pg.Page != nil && *pg.Page > 0 {
		page = *pg.Page
	}
	from := size * (page - 1)
	if from >= len(ids) {
		return nil
	}
	to := from + size
	if to > len(ids) {
		to = len(ids)
	}
	return ids[from:to]
}
