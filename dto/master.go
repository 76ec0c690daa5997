package dto

import (
	"github.com/jinzhu/copier"
	"gorm.io/gorm"

	"salon_manager/model"
)

type MasterDTO struct {
	Base
	Nickname   string `json:"nickname" validate:"required"`
	About      string `json:"about"`
	Active     *bool  `json:"active"`
	SalonID    *uint  `json:"salonId"`
	SalonName  string `json:"salonName,omitempty"`
	UserID     uint   `json:"userId" validate:"required"`
	UserLogin  string `json:"userLogin"`
	Categories []Ref  `json:"categories"`
}

func NewMasterDTO(m *model.Master) *MasterDTO {
	d := new(MasterDTO)
	copier.Copy(d, m)
	d.UserLogin = m.User.Login
	if m.Salon != nil {
		d.SalonName = m.Salon.Name
	}
	d.Categories = make([]Ref, 0, len(m.Categories))
	for _, c := range m.Categories {
		d.Categories = append(d.Categories, Ref{ID: c.ID, Name: c.Name})
	}
	return d
}

func (d *MasterDTO) ToEntity(db *gorm.DB) (*model.Master, error) {
	m := new(model.Master)
	copier.Copy(m, d)

	user, err := resolveRequired[model.User](db, "userId", d.UserID)
	if err != nil {
		return nil, err
	}
	m.UserID = user.ID
	m.User = *user

	if _, err := resolveOptional[model.Salon](db, "salonId", d.SalonID); err != nil {
		return nil, err
	}

	cats, err := resolveRefs[model.Category](db, "categories", d.Categories)
	if err != nil {
		return nil, err
	}
	m.Categories = cats
	return m, nil
}
