package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

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

func userSearchText(u *model.User) string {
	return strings.Join([]string{u.Login, u.Email, u.FirstName, u.LastName}, " ")
}

func GetUsers(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	crit, err := criteria.Parse(model.UserCriteria, c.Queries())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_CRITERIA, err)
	}
	if err := checkSort(c, "users"); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_SORT, err)
	}

	pg := utils.ParsePage(c)
	page, err := repository.FindAllWithEagerRelationships[model.User](database.DB, "users", crit, pg, c.Query("sort"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}

	dtos := make([]dto.UserDTO, 0, len(page.Rows))
	for i := range page.Rows {
		dtos = append(dtos, *dto.NewUserDTO(&page.Rows[i]))
	}
	utils.SetPaginationHeaders(c, page.TotalCount, pg)
	return c.Status(fiber.StatusOK).JSON(dtos)
}

func GetUserById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	user, ok, err := repository.FindOneWithEagerRelationships[model.User](database.DB, id)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, errors.New("user not found"))
	}
	return c.Status(fiber.StatusOK).JSON(dto.NewUserDTO(user))
}

func CreateUser(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateUser").(*model.CreateUserInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	db := database.DB

	var count int64
	db.Model(&model.User{}).Where("login = ?", input.Login).Count(&count)
	if count > 0 {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.LOGIN_EXISTS, errors.New("login already exists"), "login")
	}
	db.Model(&model.User{}).Where("email = ?", input.Email).Count(&count)
	if count > 0 {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.EMAIL_EXISTS, errors.New("email already exists"), "email")
	}

	hash, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	role := input.Role
	if role == "" {
		role = constants.ROLE_CLIENT
	}
	if role != constants.ROLE_CLIENT {
		_, isAdmin, _ := helper.GetInfoUserFromToken(c)
		if !isAdmin {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("only admins assign roles"))
		}
	}

	user := model.User{
		Login:        input.Login,
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         role,
	}
	if err := db.Create(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	search.Index(c.Context(), "users", user.ID, userSearchText(&user))
	return c.Status(fiber.StatusCreated).JSON(dto.NewUserDTO(&user))
}

func UpdateUser(c *fiber.Ctx) error {
	input, ok := c.Locals("inputEditUser").(*model.EditUserInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	id := c.Locals("inputId").(uint)

	claim, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin && claim.UserId != id {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_PERMISSION, errors.New("not permission"))
	}

	var user model.User
	if err := database.DB.First(&user, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	if input.Email != nil {
		var count int64
		database.DB.Model(&model.User{}).Where("email = ? AND id <> ?", *input.Email, id).Count(&count)
		if count > 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.EMAIL_EXISTS, errors.New("email already exists"), "email")
		}
		user.Email = *input.Email
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Role != nil || input.Active != nil {
		if !isAdmin {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("only admins change role or active"))
		}
		if input.Role != nil {
			user.Role = *input.Role
		}
		if input.Active != nil {
			user.Active = input.Active
		}
	}

	if err := database.DB.Save(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	search.Index(c.Context(), "users", user.ID, userSearchText(&user))
	return c.Status(fiber.StatusOK).JSON(dto.NewUserDTO(&user))
}

func DeleteUser(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}
	id := c.Locals("inputId").(uint)

	if err := database.DB.Delete(&model.User{DTO: model.DTO{ID: id}}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	search.Remove(c.Context(), "users", id)
	return c.SendStatus(fiber.StatusNoContent)
}

func SearchUsers(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	ids, err := search.Query(c.Context(), "users", c.Query("query"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.SEARCH_UNAVAILABLE, err)
	}

	pg := utils.ParsePage(c)
	rows, err := repository.FindAllByIds[model.User](database.DB, "users", paginateIds(ids, pg))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}

	dtos := make([]dto.UserDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, *dto.NewUserDTO(&rows[i]))
	}
	utils.SetPaginationHeaders(c, int64(len(ids)), pg)
	return c.Status(fiber.StatusOK).JSON(dtos)
}
