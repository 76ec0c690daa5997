package helper

import (
	"errors"
	"net/mail"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"salon_manager/constants"
	"salon_manager/database"
	"salon_manager/model"
)

var JwtSecret = []byte(os.Getenv("JWT_SECRET"))

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GetUserByLogin(login string) (*model.User, error) {
	db := database.DB
	var user model.User
	if err := db.Where(&model.User{Login: login}).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func ValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["login"] = tokenClaim.Login
	claims["userId"] = tokenClaim.UserId
	claims["role"] = tokenClaim.Role
	claims["exp"] = time.Now().Add(time.Minute * 60).Unix()

	return token.SignedString(JwtSecret)
}

func GenerateRefreshToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["login"] = tokenClaim.Login
	claims["userId"] = tokenClaim.UserId
	claims["exp"] = time.Now().Add(time.Hour * 24 * 7).Unix()

	return token.SignedString(JwtSecret)
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return JwtSecret, nil
	})
}

// GetInfoUserFromToken reads the parsed JWT stored by middleware.Protected
// and reports the caller's claims plus role shortcuts.
func GetInfoUserFromToken(c *fiber.Ctx) (model.TokenClaim, bool, bool) {
	var claim model.TokenClaim

	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return claim, false, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return claim, false, false
	}

	if v, ok := claims["userId"].(float64); ok {
		claim.UserId = uint(v)
	}
	if v, ok := claims["login"].(string); ok {
		claim.Login = v
	}
	if v, ok := claims["role"].(string); ok {
		claim.Role = v
	}

	isAdmin := claim.Role == constants.ROLE_ADMIN
	isOwner := claim.Role == constants.ROLE_OWNER
	return claim, isAdmin, isOwner
}
