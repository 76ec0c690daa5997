package handler

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"

	"salon_manager/config"
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

func imageSearchText(i *model.Image) string {
	return strings.Join([]string{i.Name, i.Url}, " ")
}

func GetImages(c *fiber.Ctx) error {
	crit, err := criteria.Parse(model.ImageCriteria, c.Queries())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_CRITERIA, err)
	}
	if err := checkSort(c, "images"); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_SORT, err)
	}

	pg := utils.ParsePage(c)
	page, err := repository.FindAllWithEagerRelationships[model.Image](database.DB, "images", crit, pg, c.Query("sort"), "Owner")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}

	dtos := make([]dto.ImageDTO, 0, len(page.Rows))
	for i := range page.Rows {
		dtos = append(dtos, *dto.NewImageDTO(&page.Rows[i]))
	}
	utils.SetPaginationHeaders(c, page.TotalCount, pg)
	return c.Status(fiber.StatusOK).JSON(dtos)
}

func GetImageById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	image, ok, err := repository.FindOneWithEagerRelationships[model.Image](database.DB, id, "Owner")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, errors.New("image not found"))
	}
	return c.Status(fiber.StatusOK).JSON(dto.NewImageDTO(image))
}

func CreateImage(c *fiber.Ctx) error {
	input, ok := c.Locals("inputImage").(*dto.ImageDTO)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	if input.ID != 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ID_NOT_ALLOWED_FOR_CREATE, errors.New("id must be empty"))
	}

	tx := database.DB.Begin()
	image, err := input.ToEntity(tx)
	if err != nil {
		tx.Rollback()
		return refError(c, err)
	}
	if err := tx.Omit(clause.Associations).Create(image).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	tx.Commit()

	search.Index(c.Context(), "images", image.ID, imageSearchText(image))
	return c.Status(fiber.StatusCreated).JSON(dto.NewImageDTO(image))
}

func UpdateImage(c *fiber.Ctx) error {
	input, ok := c.Locals("inputImage").(*dto.ImageDTO)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	if input.ID == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ID_REQUIRED_FOR_UPDATE, errors.New("id is required"))
	}

	tx := database.DB.Begin()

	var existing model.Image
	if err := tx.First(&existing, input.ID).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	image, err := input.ToEntity(tx)
	if err != nil {
		tx.Rollback()
		return refError(c, err)
	}
	image.ID = input.ID
	image.CreatedAt = existing.CreatedAt

	if err := tx.Omit(clause.Associations).Save(image).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	tx.Commit()

	search.Index(c.Context(), "images", image.ID, imageSearchText(image))
	return c.Status(fiber.StatusOK).JSON(dto.NewImageDTO(image))
}

func DeleteImage(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	if err := database.DB.Delete(&model.Image{DTO: model.DTO{ID: id}}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	search.Remove(c.Context(), "images", id)
	return c.SendStatus(fiber.StatusNoContent)
}

func DeleteImages(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	if err := database.DB.Delete(&model.Image{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	for _, id := range input.IDs {
		search.Remove(c.Context(), "images", id)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UploadImage stores a multipart file on Cloudinary and records its URL.
func UploadImage(c *fiber.Ctx) error {
	claim, _, _ := helper.GetInfoUserFromToken(c)

	file, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	reader, err := file.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_UPLOAD_IMAGE, err)
	}
	defer reader.Close()

	cld := helper.InitCloudinary()
	result, err := cld.Upload.Upload(c.Context(), reader, uploader.UploadParams{
		Folder:       "salons/images",
		PublicID:     fmt.Sprintf("image_%d_%d", claim.UserId, time.Now().Unix()),
		ResourceType: "image",
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_UPLOAD_IMAGE, err)
	}

	image := model.Image{
		Name:     file.Filename,
		Url:      result.SecureURL,
		PublicId: result.PublicID,
		Format:   result.Format,
		OwnerID:  claim.UserId,
	}
	if err := database.DB.Create(&image).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	search.Index(c.Context(), "images", image.ID, imageSearchText(&image))
	return c.Status(fiber.StatusCreated).JSON(dto.NewImageDTO(&image))
}

// GenerateUploadSignature signs direct browser uploads so the API secret
// never leaves the server.
func GenerateUploadSignature(c *fiber.Ctx) error {
	type sigParams struct {
		Folder   string `json:"folder"`
		PublicID string `json:"public_id"`
	}

	var params sigParams
	if err := c.BodyParser(&params); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	timestamp := time.Now().Unix()

	paramMap := map[string]string{"timestamp": fmt.Sprintf("%d", timestamp)}
	if params.Folder != "" {
		paramMap["folder"] = params.Folder
	}
	if params.PublicID != "" {
		paramMap["public_id"] = params.PublicID
	}

	keys := make([]string, 0, len(paramMap))
	for k := range paramMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var stringToSign strings.Builder
	for i, k := range keys {
		if i > 0 {
			stringToSign.WriteString("&")
		}
		stringToSign.WriteString(k)
		stringToSign.WriteString("=")
		stringToSign.WriteString(paramMap[k])
	}
	stringToSign.WriteString(config.Config("CLOUDINARY_API_SECRET"))

	h := sha1.New()
	h.Write([]byte(stringToSign.String()))
	signature := hex.EncodeToString(h.Sum(nil))

	return c.JSON(fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"apiKey":    config.Config("CLOUDINARY_API_KEY"),
		"cloudName": config.Config("CLOUDINARY_CLOUD_NAME"),
	})
}

func SearchImages(c *fiber.Ctx) error {
	ids, err := search.Query(c.Context(), "images", c.Query("query"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.SEARCH_UNAVAILABLE, err)
	}

	pg := utils.ParsePage(c)
	rows, err := repository.FindAllByIds[model.Image](database.DB, "images", paginateIds(ids, pg), "Owner")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}

	dtos := make([]dto.ImageDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, *dto.NewImageDTO(&rows[i]))
	}
	utils.SetPaginationHeaders(c, int64(len(ids)), pg)
	return c.Status(fiber.StatusOK).JSON(dtos)
}
