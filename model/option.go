package model

import "salon_manager/criteria"

type Option struct {
	DTO
	Name            string  `gorm:"not null" validate:"required" json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	OfferID         *uint   `json:"offerId"`
	Offer           *Offer  `gorm:"foreignKey:OfferID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"offer,omitempty"`
}

var OptionCriteria = criteria.Spec{
	"id":              {Column: "options.id", Kind: criteria.KindNumber},
	"name":            {Column: "options.name", Kind: criteria.KindString},
	"price":           {Column: "options.price", Kind: criteria.KindNumber},
	"durationMinutes": {Column: "options.duration_minutes", Kind: criteria.KindNumber},
	"offerId":         {Column: "options.offer_id", Kind: criteria.KindNumber},
}
