package validate

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"salon_manager/constants"
	"salon_manager/dto"
	"salon_manager/model"
	"salon_manager/utils"
)

func SalonBody() fiber.Handler      { return Body[dto.SalonDTO]("inputSalon") }
func MasterBody() fiber.Handler     { return Body[dto.MasterDTO]("inputMaster") }
func VariantBody() fiber.Handler    { return Body[dto.VariantDTO]("inputVariant") }
func OptionBody() fiber.Handler     { return Body[dto.OptionDTO]("inputOption") }
func CategoryBody() fiber.Handler   { return Body[dto.CategoryDTO]("inputCategory") }
func ImageBody() fiber.Handler      { return Body[dto.ImageDTO]("inputImage") }
func TimeTableBody() fiber.Handler  { return Body[dto.TimeTableDTO]("inputTimeTable") }
func SubscriberBody() fiber.Handler { return Body[dto.SubscriberDTO]("inputSubscriber") }
func CreateUser() fiber.Handler     { return Body[model.CreateUserInput]("inputCreateUser") }
func EditUser() fiber.Handler       { return Body[model.EditUserInput]("inputEditUser") }
func Login() fiber.Handler          { return Body[model.LoginInput]("inputLogin") }

func OfferBody() fiber.Handler { return Body[dto.OfferDTO]("inputOffer") }

// OfferPriceRange must run after OfferBody.
func OfferPriceRange() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, ok := c.Locals("inputOffer").(*dto.OfferDTO)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
		}
		if input.PriceLow > input.PriceHigh {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.PRICE_RANGE_INVALID, errors.New("priceLow above priceHigh"), "priceLow")
		}
		return c.Next()
	}
}

func RecordBody() fiber.Handler { return Body[dto.RecordDTO]("inputRecord") }

// RecordTimeWindow must run after RecordBody.
func RecordTimeWindow() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, ok := c.Locals("inputRecord").(*dto.RecordDTO)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
		}
		if !input.StartAt.Before(input.EndAt) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.RECORD_TIME_INVALID, errors.New("startAt not before endAt"), "startAt")
		}
		return c.Next()
	}
}
