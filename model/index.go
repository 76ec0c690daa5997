package model

import "time"

type TokenData struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type TokenClaim struct {
	UserId uint   `json:"userId"`
	Login  string `json:"login"`
	Role   string `json:"role"`
}

type DTO struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GetID satisfies graph.Entity. A zero id marks an unsaved instance.
func (d DTO) GetID() uint { return d.ID }

type ArrayId struct {
	IDs []uint `json:"ids"`
}

type Pagination struct {
	Size *int `query:"size" json:"size"`
	Page *int `query:"page" json:"page"`
}

type LoginInput struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}
