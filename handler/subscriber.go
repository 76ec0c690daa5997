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

func subscriberSearchText(s *model.Subscriber) string {
	return strings.Join([]string{s.Email, s.Name}, " ")
}

func GetSubscribers(c *fiber.Ctx) error {
	crit, err := criteria.Parse(model.SubscriberCriteria, c.Queries())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_CRITERIA, err)
	}
	if err := checkSort(c, "subscribers"); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_SORT, err)
	}

	pg := utils.ParsePage(c)
	page, err := repository.FindAllWithEagerRelationships[model.Subscriber](database.DB, "subscribers", crit, pg, c.Query("sort"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}

	dtos := make([]dto.SubscriberDTO, 0, len(page.Rows))
	for i := range page.Rows {
		dtos = append(dtos, *dto.NewSubscriberDTO(&page.Rows[i]))
	}
	utils.SetPaginationHeaders(c, page.TotalCount, pg)
	return c.Status(fiber.StatusOK).JSON(dtos)
}

func GetSubscriberById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	sub, ok, err := repository.FindOneWithEagerRelationships[model.Subscriber](database.DB, id)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, errors.New("subscriber not found"))
	}
	return c.Status(fiber.StatusOK).JSON(dto.NewSubscriberDTO(sub))
}

func CreateSubscriber(c *fiber.Ctx) error {
	input, ok := c.Locals("inputSubscriber").(*dto.SubscriberDTO)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	if input.ID != 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ID_NOT_ALLOWED_FOR_CREATE, errors.New("id must be empty"))
	}

	var count int64
	database.DB.Model(&model.Subscriber{}).Where("email = ?", input.Email).Count(&count)
	if count > 0 {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.SUBSCRIBER_EXISTS, errors.New("email already subscribed"), "email")
	}

	sub, err := input.ToEntity(database.DB)
	if err != nil {
		return refError(c, err)
	}
	if err := database.DB.Create(sub).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	search.Index(c.Context(), "subscribers", sub.ID, subscriberSearchText(sub))
	return c.Status(fiber.StatusCreated).JSON(dto.NewSubscriberDTO(sub))
}

func UpdateSubscriber(c *fiber.Ctx) error {
	input, ok := c.Locals("inputSubscriber").(*dto.SubscriberDTO)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	if input.ID == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ID_REQUIRED_FOR_UPDATE, errors.New("id is required"))
	}

	var existing model.Subscriber
	if err := database.DB.First(&existing, input.ID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	sub, err := input.ToEntity(database.DB)
	if err != nil {
		return refError(c, err)
	}
	sub.ID = input.ID
	sub.CreatedAt = existing.CreatedAt

	if err := database.DB.Save(sub).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	search.Index(c.Context(), "subscribers", sub.ID, subscriberSearchText(sub))
	return c.Status(fiber.StatusOK).JSON(dto.NewSubscriberDTO(sub))
}

func DeleteSubscriber(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	if err := database.DB.Delete(&model.Subscriber{DTO: model.DTO{ID: id}}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	search.Remove(c.Context(), "subscribers", id)
	return c.SendStatus(fiber.StatusNoContent)
}

func SearchSubscribers(c *fiber.Ctx) error {
	ids, err := search.Query(c.Context(), "subscribers", c.Query("query"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.SEARCH_UNAVAILABLE, err)
	}

	pg := utils.ParsePage(c)
	rows, err := repository.FindAllByIds[model.Subscriber](database.DB, "subscribers", paginateIds(ids, pg))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}

	dtos := make([]dto.SubscriberDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, *dto.NewSubscriberDTO(&rows[i]))
	}
	utils.SetPaginationHeaders(c, int64(len(ids)), pg)
	return c.Status(fiber.StatusOK).JSON(dtos)
}
