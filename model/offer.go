package model

import (
	"salon_manager/criteria"
	"salon_manager/graph"
)

type Offer struct {
	DTO
	Name        string    `gorm:"not null" validate:"required" json:"name"`
	Description string    `json:"description"`
	PriceLow    float64   `json:"priceLow"`
	PriceHigh   float64   `json:"priceHigh"`
	Active      *bool     `gorm:"not null;default:true" json:"active"`
	SalonID     *uint     `json:"salonId"`
	Salon       *Salon    `gorm:"foreignKey:SalonID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"salon,omitempty"`
	ImageID     *uint     `json:"imageId"`
	Image       *Image    `gorm:"foreignKey:ImageID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"image,omitempty"`
	CategoryID  *uint     `json:"categoryId"`
	Category    *Category `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"category,omitempty"`
	Variants    []Variant `gorm:"foreignKey:OfferID" json:"variants"`
	Options     []Option  `gorm:"foreignKey:OfferID" json:"options"`
}

func (o *Offer) AddVariant(v *Variant) {
	if o == nil || v == nil {
		return
	}
	graph.Append(&o.Variants, *v)
	v.OfferID = &o.ID
	v.Offer = o
}

func (o *Offer) RemoveVariant(v *Variant) {
	if o == nil || v == nil {
		return
	}
	graph.Delete(&o.Variants, *v)
	if graph.PointsBack(v.OfferID, o) {
		v.OfferID = nil
		v.Offer = nil
	}
}

func (o *Offer) AddOption(op *Option) {
	if o == nil || op == nil {
		return
	}
	graph.Append(&o.Options, *op)
	op.OfferID = &o.ID
	op.Offer = o
}

func (o *Offer) RemoveOption(op *Option) {
	if o == nil || op == nil {
		return
	}
	graph.Delete(&o.Options, *op)
	if graph.PointsBack(op.OfferID, o) {
		op.OfferID = nil
		op.Offer = nil
	}
}

var OfferCriteria = criteria.Spec{
	"id":          {Column: "offers.id", Kind: criteria.KindNumber},
	"name":        {Column: "offers.name", Kind: criteria.KindString},
	"description": {Column: "offers.description", Kind: criteria.KindString},
	"priceLow":    {Column: "offers.price_low", Kind: criteria.KindNumber},
	"priceHigh":   {Column: "offers.price_high", Kind: criteria.KindNumber},
	"active":      {Column: "offers.active", Kind: criteria.KindBool},
	"salonId":     {Column: "offers.salon_id", Kind: criteria.KindNumber},
	"imageId":     {Column: "offers.image_id", Kind: criteria.KindNumber},
	"categoryId":  {Column: "offers.category_id", Kind: criteria.KindNumber},
	"variantId": {
		Column: "variants.id",
		Kind:   criteria.KindNumber,
		Join:   "JOIN variants ON variants.offer_id = offers.id",
	},
	"optionId": {
		Column: "options.id",
		Kind:   criteria.KindNumber,
		Join:   "JOIN options ON options.offer_id = offers.id",
	},
}
