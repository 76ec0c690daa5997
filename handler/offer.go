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

var offerPreloads = []string{"Salon", "Image", "Category", "Variants", "Options"}

func offerSearchText(o *model.Offer) string {
	return strings.Join([]string{o.Name, o.Description}, " ")
}

func GetOffers(c *fiber.Ctx) error {
	crit, err := criteria.Parse(model.OfferCriteria, c.Queries())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_CRITERIA, err)
	}
	if err := checkSort(c, "offers"); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_SORT, err)
	}

	pg := utils.ParsePage(c)
	page, err := repository.FindAllWithEagerRelationships[model.Offer](database.DB, "offers", crit, pg, c.Query("sort"), offerPreloads...)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}

	dtos := make([]dto.OfferDTO, 0, len(page.Rows))
	for i := range page.Rows {
		dtos = append(dtos, *dto.NewOfferDTO(&page.Rows[i]))
	}
	utils.SetPaginationHeaders(c, page.TotalCount, pg)
	return c.Status(fiber.StatusOK).JSON(dtos)
}

func GetOfferById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	offer, ok, err := repository.FindOneWithEagerRelationships[model.Offer](database.DB, id, offerPreloads...)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, errors.New("offer not found"))
	}
	return c.Status(fiber.StatusOK).JSON(dto.NewOfferDTO(offer))
}

func CreateOffer(c *fiber.Ctx) error {
	input, ok := c.Locals("inputOffer").(*dto.OfferDTO)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	if input.ID != 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ID_NOT_ALLOWED_FOR_CREATE, errors.New("id must be empty"))
	}

	tx := database.DB.Begin()
	offer, err := input.ToEntity(tx)
	if err != nil {
		tx.Rollback()
		return refError(c, err)
	}
	if err := tx.Omit(clause.Associations).Create(offer).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	tx.Commit()

	search.Index(c.Context(), "offers", offer.ID, offerSearchText(offer))
	return c.Status(fiber.StatusCreated).JSON(dto.NewOfferDTO(offer))
}

func UpdateOffer(c *fiber.Ctx) error {
	input, ok := c.Locals("inputOffer").(*dto.OfferDTO)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	if input.ID == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ID_REQUIRED_FOR_UPDATE, errors.New("id is required"))
	}

	tx := database.DB.Begin()

	var existing model.Offer
	if err := tx.First(&existing, input.ID).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	offer, err := input.ToEntity(tx)
	if err != nil {
		tx.Rollback()
		return refError(c, err)
	}
	offer.ID = input.ID
	offer.CreatedAt = existing.CreatedAt

	if err := tx.Omit(clause.Associations).Save(offer).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	tx.Commit()

	search.Index(c.Context(), "offers", offer.ID, offerSearchText(offer))
	return c.Status(fiber.StatusOK).JSON(dto.NewOfferDTO(offer))
}

func DeleteOffer(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	if err := database.DB.Select(clause.Associations).Delete(&model.Offer{DTO: model.DTO{ID: id}}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	search.Remove(c.Context(), "offers", id)
	return c.SendStatus(fiber.StatusNoContent)
}

func SearchOffers(c *fiber.Ctx) error {
	ids, err := search.Query(c.Context(), "offers", c.Query("query"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.SEARCH_UNAVAILABLE, err)
	}

	pg := utils.ParsePage(c)
	rows, err := repository.FindAllByIds[model.Offer](database.DB, "offers", paginateIds(ids, pg), offerPreloads...)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}

	dtos := make([]dto.OfferDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, *dto.NewOfferDTO(&rows[i]))
	}
	utils.SetPaginationHeaders(c, int64(len(ids)), pg)
	return c.Status(fiber.StatusOK).JSON(dtos)
}
