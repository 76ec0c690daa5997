package dto

import (
	"github.com/jinzhu/copier"
	"gorm.io/gorm"

	"salon_manager/model"
)

type VariantDTO struct {
	Base
	Name            string  `json:"name" validate:"required"`
	Price           float64 `json:"price" validate:"gte=0"`
	DurationMinutes int     `json:"durationMinutes" validate:"gte=0"`
	OfferID         *uint   `json:"offerId"`
	OfferName       string  `json:"offerName,omitempty"`
	Executors       []Ref   `json:"executors"`
}

func NewVariantDTO(v *model.Variant) *VariantDTO {
	d := new(VariantDTO)
	copier.Copy(d, v)
	if v.Offer != nil {
		d.OfferName = v.Offer.Name
	}
	d.Executors = make([]Ref, 0, len(v.Executors))
	for _, m := range v.Executors {
		d.Executors = append(d.Executors, Ref{ID: m.ID, Name: m.Nickname})
	}
	return d
}

func (d *VariantDTO) ToEntity(db *gorm.DB) (*model.Variant, error) {
	v := new(model.Variant)
	copier.Copy(v, d)
	if _, err := resolveOptional[model.Offer](db, "offerId", d.OfferID); err != nil {
		return nil, err
	}
	executors, err := resolveRefs[model.Master](db, "executors", d.Executors)
	if err != nil {
		return nil, err
	}
	v.Executors = executors
	return v, nil
}

type OptionDTO struct {
	Base
	Name            string  `json:"name" validate:"required"`
	Price           float64 `json:"price" validate:"gte=0"`
	DurationMinutes int     `json:"durationMinutes" validate:"gte=0"`
	OfferID         *uint   `json:"offerId"`
	OfferName       string  `json:"offerName,omitempty"`
}

func NewOptionDTO(o *model.Option) *OptionDTO {
	d := new(OptionDTO)
	copier.Copy(d, o)
	if o.Offer != nil {
		d.OfferName = o.Offer.Name
	}
	return d
}

func (d *OptionDTO) ToEntity(db *gorm.DB) (*model.Option, error) {
	o := new(model.Option)
	copier.Copy(o, d)
	if _, err := resolveOptional[model.Offer](db, "offerId", d.OfferID); err != nil {
		return nil, err
	}
	return o, nil
}
