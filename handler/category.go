package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
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

var categoryPreloads = []string{"Parent", "Children"}

// parentChainReaches walks up from parentID and reports whether the chain
// passes through id. Guards against a category becoming its own ancestor.
func parentChainReaches(db *gorm.DB, parentID *uint, id uint) (bool, error) {
	seen := map[uint]bool{}
	for parentID != nil {
		if *parentID == id {
			return true, nil
		}
		if seen[*parentID] {
			return true, nil
		}
		seen[*parentID] = true

		var parent model.Category
		if err := db.First(&parent, *parentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, nil
			}
			return false, err
		}
		parentID = parent.ParentID
	}
	return false, nil
}

func GetCategories(c *fiber.Ctx) error {
	crit, err := criteria.Parse(model.CategoryCriteria, c.Queries())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_CRITERIA, err)
	}
	if err := checkSort(c, "categories"); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_SORT, err)
	}

	pg := utils.ParsePage(c)
	page, err := repository.FindAllWithEagerRelationships[model.Category](database.DB, "categories", crit, pg, c.Query("sort"), categoryPreloads...)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}

	dtos := make([]dto.CategoryDTO, 0, len(page.Rows))
	for i := range page.Rows {
		dtos = append(dtos, *dto.NewCategoryDTO(&page.Rows[i]))
	}
	utils.SetPaginationHeaders(c, page.TotalCount, pg)
	return c.Status(fiber.StatusOK).JSON(dtos)
}

func GetCategoryById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	category, ok, err := repository.FindOneWithEagerRelationships[model.Category](database.DB, id, categoryPreloads...)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, errors.New("category not found"))
	}
	return c.Status(fiber.StatusOK).JSON(dto.NewCategoryDTO(category))
}

func CreateCategory(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCategory").(*dto.CategoryDTO)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	if input.ID != 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ID_NOT_ALLOWED_FOR_CREATE, errors.New("id must be empty"))
	}

	tx := database.DB.Begin()
	category, err := input.ToEntity(tx)
	if err != nil {
		tx.Rollback()
		return refError(c, err)
	}
	if err := tx.Omit(clause.Associations).Create(category).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	tx.Commit()

	search.Index(c.Context(), "categories", category.ID, category.Name)
	return c.Status(fiber.StatusCreated).JSON(dto.NewCategoryDTO(category))
}

func UpdateCategory(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCategory").(*dto.CategoryDTO)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	if input.ID == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ID_REQUIRED_FOR_UPDATE, errors.New("id is required"))
	}

	tx := database.DB.Begin()

	var existing model.Category
	if err := tx.First(&existing, input.ID).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	cycle, err := parentChainReaches(tx, input.ParentID, input.ID)
	if err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}
	if cycle {
		tx.Rollback()
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.CATEGORY_CYCLE, errors.New("category cannot be its own ancestor"), "parentId")
	}

	category, err := input.ToEntity(tx)
	if err != nil {
		tx.Rollback()
		return refError(c, err)
	}
	category.ID = input.ID
	category.CreatedAt = existing.CreatedAt

	if err := tx.Omit(clause.Associations).Save(category).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	tx.Commit()

	search.Index(c.Context(), "categories", category.ID, category.Name)
	return c.Status(fiber.StatusOK).JSON(dto.NewCategoryDTO(category))
}

func DeleteCategory(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	if err := database.DB.Select(clause.Associations).Delete(&model.Category{DTO: model.DTO{ID: id}}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	search.Remove(c.Context(), "categories", id)
	return c.SendStatus(fiber.StatusNoContent)
}

func SearchCategories(c *fiber.Ctx) error {
	ids, err := search.Query(c.Context(), "categories", c.Query("query"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.SEARCH_UNAVAILABLE, err)
	}

	pg := utils.ParsePage(c)
	rows, err := repository.FindAllByIds[model.Category](database.DB, "categories", paginateIds(ids, pg), categoryPreloads...)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}

	dtos := make([]dto.CategoryDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, *dto.NewCategoryDTO(&rows[i]))
	}
	utils.SetPaginationHeaders(c, int64(len(ids)), pg)
	return c.Status(fiber.StatusOK).JSON(dtos)
}
