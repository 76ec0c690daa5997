package dto

import (
	"github.com/jinzhu/copier"
	"gorm.io/gorm"

	"salon_manager/model"
)

type OfferDTO struct {
	Base
	Name         string  `json:"name" validate:"required"`
	Description  string  `json:"description"`
	PriceLow     float64 `json:"priceLow" validate:"gte=0"`
	PriceHigh    float64 `json:"priceHigh" validate:"gte=0"`
	Active       *bool   `json:"active"`
	SalonID      *uint   `json:"salonId"`
	SalonName    string  `json:"salonName,omitempty"`
	ImageID      *uint   `json:"imageId"`
	ImageUrl     string  `json:"imageUrl,omitempty"`
	CategoryID   *uint   `json:"categoryId"`
	CategoryName string  `json:"categoryName,omitempty"`
}

func NewOfferDTO(o *model.Offer) *OfferDTO {
	d := new(OfferDTO)
	copier.Copy(d, o)
	if o.Salon != nil {
		d.SalonName = o.Salon.Name
	}
	if o.Image != nil {
		d.ImageUrl = o.Image.Url
	}
	if o.Category != nil {
		d.CategoryName = o.Category.Name
	}
	return d
}

func (d *OfferDTO) ToEntity(db *gorm.DB) (*model.Offer, error) {
	o := new(model.Offer)
	copier.Copy(o, d)
	if _, err := resolveOptional[model.Salon](db, "salonId", d.SalonID); err != nil {
		return nil, err
	}
	if _, err := resolveOptional[model.Image](db, "imageId", d.ImageID); err != nil {
		return nil, err
	}
	if _, err := resolveOptional[model.Category](db, "categoryId", d.CategoryID); err != nil {
		return nil, err
	}
	return o, nil
}
