package database

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"salon_manager/constants"
	"salon_manager/model"
	"salon_manager/utils"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("admin123"), 10)
	hashPassword := string(bytes)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}

	users := []model.User{
		{Login: "admin", Email: "admin@salon.local", PasswordHash: hashPassword, Role: constants.ROLE_ADMIN, Active: utils.Ptr(true)},
	}
	for _, user := range users {
		if err := db.Where(model.User{Login: user.Login}).FirstOrCreate(&user).Error; err != nil {
			log.Println("failed to seed user:", user.Login, "error:", err)
		}
	}

	categories := []model.Category{
		{Name: "Hair"},
		{Name: "Nails"},
		{Name: "Massage"},
		{Name: "Cosmetology"},
		{Name: "Barbershop"},
	}
	for _, category := range categories {
		if err := db.Where(model.Category{Name: category.Name}).FirstOrCreate(&category).Error; err != nil {
			log.Println("failed to seed category:", category.Name, "error:", err)
		}
	}
}
