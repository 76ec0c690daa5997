package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
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

var recordPreloads = []string{"Master", "Variant", "User", "Salon", "Options"}

func recordChannel(salonID uint) string {
	return fmt.Sprintf("salon:%d:records", salonID)
}

func publishRecord(c *fiber.Ctx, event string, record *model.Record) {
	payload, err := json.Marshal(fiber.Map{"event": event, "record": dto.NewRecordDTO(record)})
	if err != nil {
		return
	}
	search.Client().Publish(c.Context(), recordChannel(record.SalonID), payload)
}

func GetRecords(c *fiber.Ctx) error {
	crit, err := criteria.Parse(model.RecordCriteria, c.Queries())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_CRITERIA, err)
	}
	if err := checkSort(c, "records"); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_SORT, err)
	}

	pg := utils.ParsePage(c)
	page, err := repository.FindAllWithEagerRelationships[model.Record](database.DB, "records", crit, pg, c.Query("sort"), recordPreloads...)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}

	dtos := make([]dto.RecordDTO, 0, len(page.Rows))
	for i := range page.Rows {
		dtos = append(dtos, *dto.NewRecordDTO(&page.Rows[i]))
	}
	utils.SetPaginationHeaders(c, page.TotalCount, pg)
	return c.Status(fiber.StatusOK).JSON(dtos)
}

func GetRecordById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	record, ok, err := repository.FindOneWithEagerRelationships[model.Record](database.DB, id, recordPreloads...)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, errors.New("record not found"))
	}
	return c.Status(fiber.StatusOK).JSON(dto.NewRecordDTO(record))
}

func CreateRecord(c *fiber.Ctx) error {
	input, ok := c.Locals("inputRecord").(*dto.RecordDTO)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	if input.ID != 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ID_NOT_ALLOWED_FOR_CREATE, errors.New("id must be empty"))
	}

	tx := database.DB.Begin()
	record, err := input.ToEntity(tx)
	if err != nil {
		tx.Rollback()
		return refError(c, err)
	}
	record.Code = uuid.NewString()

	if err := tx.Omit(clause.Associations).Create(record).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	if err := tx.Model(record).Association("Options").Replace(record.Options); err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	tx.Commit()

	master := ""
	if record.Master != nil {
		master = record.Master.Nickname
	}
	utils.SendRecordConfirmationEmail(record.User.Email, utils.RecordConfirmationData{
		Code:      record.Code,
		SalonName: record.Salon.Name,
		Master:    master,
		StartAt:   record.StartAt.Format(time.RFC1123),
		Price:     record.Price,
	})
	publishRecord(c, "created", record)
	search.Index(c.Context(), "records", record.ID, record.Code+" "+record.Comment)
	return c.Status(fiber.StatusCreated).JSON(dto.NewRecordDTO(record))
}

func UpdateRecord(c *fiber.Ctx) error {
	input, ok := c.Locals("inputRecord").(*dto.RecordDTO)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	if input.ID == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ID_REQUIRED_FOR_UPDATE, errors.New("id is required"))
	}

	tx := database.DB.Begin()

	var existing model.Record
	if err := tx.First(&existing, input.ID).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	record, err := input.ToEntity(tx)
	if err != nil {
		tx.Rollback()
		return refError(c, err)
	}
	record.ID = input.ID
	record.CreatedAt = existing.CreatedAt
	record.Code = existing.Code

	if err := tx.Omit(clause.Associations).Save(record).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	if err := tx.Model(record).Association("Options").Replace(record.Options); err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	tx.Commit()

	publishRecord(c, "updated", record)
	search.Index(c.Context(), "records", record.ID, record.Code+" "+record.Comment)
	return c.Status(fiber.StatusOK).JSON(dto.NewRecordDTO(record))
}

func DeleteRecord(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	var record model.Record
	found := database.DB.First(&record, id).Error == nil

	if err := database.DB.Select(clause.Associations).Delete(&model.Record{DTO: model.DTO{ID: id}}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	if found {
		publishRecord(c, "deleted", &record)
	}
	search.Remove(c.Context(), "records", id)
	return c.SendStatus(fiber.StatusNoContent)
}

func SearchRecords(c *fiber.Ctx) error {
	ids, err := search.Query(c.Context(), "records", c.Query("query"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.SEARCH_UNAVAILABLE, err)
	}

	pg := utils.ParsePage(c)
	rows, err := repository.FindAllByIds[model.Record](database.DB, "records", paginateIds(ids, pg), recordPreloads...)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}

	dtos := make([]dto.RecordDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, *dto.NewRecordDTO(&rows[i]))
	}
	utils.SetPaginationHeaders(c, int64(len(ids)), pg)
	return c.Status(fiber.StatusOK).JSON(dtos)
}

// GetRecordQR renders the booking code as a PNG so salons can scan it at
// the front desk.
func GetRecordQR(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	var record model.Record
	if err := database.DB.First(&record, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	png, err := utils.GenerateQRCode(record.Code, 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}
	c.Type("png")
	return c.Status(fiber.StatusOK).Send(png)
}
