package model

import "salon_manager/criteria"

type User struct {
	DTO
	Login        string `gorm:"uniqueIndex;not null" validate:"required,min=3,max=50,alphanum" json:"login"`
	Email        string `gorm:"uniqueIndex;not null" validate:"required,email" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Role         string `gorm:"not null;default:CLIENT" json:"role"` // ADMIN, OWNER, CLIENT
	Active       *bool  `gorm:"not null;default:true" json:"active"`
}

type CreateUserInput struct {
	Login     string `json:"login" validate:"required,min=3,max=50,alphanum"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6,max=72"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role" validate:"omitempty,oneof=ADMIN OWNER CLIENT"`
}

type EditUserInput struct {
	Email     *string `json:"email" validate:"omitempty,email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Role      *string `json:"role" validate:"omitempty,oneof=ADMIN OWNER CLIENT"`
	Active    *bool   `json:"active"`
}

var UserCriteria = criteria.Spec{
	"id":        {Column: "users.id", Kind: criteria.KindNumber},
	"login":     {Column: "users.login", Kind: criteria.KindString},
	"email":     {Column: "users.email", Kind: criteria.KindString},
	"firstName": {Column: "users.first_name", Kind: criteria.KindString},
	"lastName":  {Column: "users.last_name", Kind: criteria.KindString},
	"role":      {Column: "users.role", Kind: criteria.KindString},
	"active":    {Column: "users.active", Kind: criteria.KindBool},
}

