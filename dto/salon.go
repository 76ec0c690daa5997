package dto

import (
	"github.com/jinzhu/copier"
	"gorm.io/gorm"

	"salon_manager/model"
)

type SalonDTO struct {
	Base
	Name        string            `json:"name" validate:"required"`
	Slug        string            `json:"slug"`
	Location    string            `json:"location"`
	Description string            `json:"description"`
	Status      model.SalonStatus `json:"status" validate:"omitempty,oneof=CREATED ACTIVATED DEACTIVATED"`
	Type        model.SalonType   `json:"type" validate:"omitempty,oneof=STANDARD PREMIUM"`
	OwnerID     uint              `json:"ownerId" validate:"required"`
	OwnerLogin  string            `json:"ownerLogin"`
	ImageID     *uint             `json:"imageId"`
	ImageUrl    string            `json:"imageUrl,omitempty"`
	TimeTableID *uint             `json:"timeTableId"`
	Categories  []Ref             `json:"categories"`
}

func NewSalonDTO(s *model.Salon) *SalonDTO {
	d := new(SalonDTO)
	copier.Copy(d, s)
	d.OwnerLogin = s.Owner.Login
	if s.Image != nil {
		d.ImageUrl = s.Image.Url
	}
	d.Categories = make([]Ref, 0, len(s.Categories))
	for _, c := range s.Categories {
		d.Categories = append(d.Categories, Ref{ID: c.ID, Name: c.Name})
	}
	return d
}

func (d *SalonDTO) ToEntity(db *gorm.DB) (*model.Salon, error) {
	s := new(model.Salon)
	copier.Copy(s, d)
	if d.Status == "" {
		s.Status = model.SalonCreated
	}
	if d.Type == "" {
		s.Type = model.SalonStandard
	}

	owner, err := resolveRequired[model.User](db, "ownerId", d.OwnerID)
	if err != nil {
		return nil, err
	}
	s.OwnerID = owner.ID
	s.Owner = *owner

	if _, err := resolveOptional[model.Image](db, "imageId", d.ImageID); err != nil {
		return nil, err
	}
	if _, err := resolveOptional[model.TimeTable](db, "timeTableId", d.TimeTableID); err != nil {
		return nil, err
	}

	cats, err := resolveRefs[model.Category](db, "categories", d.Categories)
	if err != nil {
		return nil, err
	}
	s.Categories = cats
	return s, nil
}
