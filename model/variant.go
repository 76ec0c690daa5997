package model

import (
	"salon_manager/criteria"
	"salon_manager/graph"
)

type Variant struct {
	DTO
	Name            string   `gorm:"not null" validate:"required" json:"name"`
	Price           float64  `json:"price"`
	DurationMinutes int      `json:"durationMinutes"`
	OfferID         *uint    `json:"offerId"`
	Offer           *Offer   `gorm:"foreignKey:OfferID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"offer,omitempty"`
	Executors       []Master `gorm:"many2many:variant_executors" json:"executors"`
}

func (v *Variant) AddExecutor(m *Master) {
	if v == nil || m == nil {
		return
	}
	graph.Append(&v.Executors, *m)
}

func (v *Variant) RemoveExecutor(m *Master) {
	if v == nil || m == nil {
		return
	}
	graph.Delete(&v.Executors, *m)
}

var VariantCriteria = criteria.Spec{
	"id":              {Column: "variants.id", Kind: criteria.KindNumber},
	"name":            {Column: "variants.name", Kind: criteria.KindString},
	"price":           {Column: "variants.price", Kind: criteria.KindNumber},
	"durationMinutes": {Column: "variants.duration_minutes", Kind: criteria.KindNumber},
	"offerId":         {Column: "variants.offer_id", Kind: criteria.KindNumber},
	"executorId": {
		Column: "variant_executors.master_id",
		Kind:   criteria.KindNumber,
		Join:   "JOIN variant_executors ON variant_executors.variant_id = variants.id",
	},
}
