package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"salon_manager/constants"
	"salon_manager/database"
	"salon_manager/dto"
	"salon_manager/helper"
	"salon_manager/model"
	"salon_manager/utils"
)

func setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false,
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false,
		Path:     "/",
	})
}

func Login(c *fiber.Ctx) error {
	input, ok := c.Locals("inputLogin").(*model.LoginInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	user, err := helper.GetUserByLogin(input.Login)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}
	if user == nil || !helper.CheckPasswordHash(input.Password, user.PasswordHash) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_CREDENTIALS, errors.New("login or password does not match"))
	}
	if user.Active != nil && !*user.Active {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_DISABLED, errors.New("account disabled"))
	}

	tokenClaim := model.TokenClaim{
		UserId: user.ID,
		Login:  user.Login,
		Role:   user.Role,
	}
	accessToken, err := helper.GenerateAccessToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_GENERATE_TOKEN, err)
	}
	refreshToken, err := helper.GenerateRefreshToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_GENERATE_TOKEN, err)
	}

	setAuthCookies(c, accessToken, refreshToken)
	return c.JSON(fiber.Map{
		"message": "login success",
		"user":    dto.NewUserDTO(user),
		"token": model.TokenData{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		},
	})
}

func RefreshToken(c *fiber.Ctx) error {
	refreshCookie := c.Cookies("refresh_token")
	if refreshCookie == "" {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_CREDENTIALS, errors.New("refresh token not found"))
	}

	token, err := helper.ParseToken(refreshCookie)
	if err != nil || !token.Valid {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_CREDENTIALS, errors.New("invalid refresh token"))
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_CREDENTIALS, errors.New("invalid token claims"))
	}

	userIdFloat, ok := claims["userId"].(float64)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_CREDENTIALS, errors.New("invalid userId in payload"))
	}

	var user model.User
	if err := database.DB.First(&user, uint(userIdFloat)).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_CREDENTIALS, err)
	}
	if user.Active != nil && !*user.Active {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_DISABLED, errors.New("account disabled"))
	}

	tokenClaim := model.TokenClaim{
		UserId: user.ID,
		Login:  user.Login,
		Role:   user.Role,
	}
	accessToken, err := helper.GenerateAccessToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_GENERATE_TOKEN, err)
	}
	refreshToken, err := helper.GenerateRefreshToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_GENERATE_TOKEN, err)
	}

	setAuthCookies(c, accessToken, refreshToken)
	return utils.SuccessResponse(c, fiber.StatusOK, model.TokenData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

func Logout(c *fiber.Ctx) error {
	c.ClearCookie("access_token", "refresh_token")
	return c.JSON(fiber.Map{"message": "logout success"})
}

// Me returns the account behind the current token.
func Me(c *fiber.Ctx) error {
	claim, _, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_CREDENTIALS, errors.New("no token"))
	}

	var user model.User
	if err := database.DB.First(&user, claim.UserId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.NewUserDTO(&user))
}
