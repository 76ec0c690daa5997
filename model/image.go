package model

import "salon_manager/criteria"

type Image struct {
	DTO
	Name     string `json:"name"`
	Url      string `gorm:"not null" validate:"required,url" json:"url"`
	PublicId string `json:"publicId"`
	Format   string `json:"format"`
	OwnerID  uint   `gorm:"not null" json:"ownerId"`
	Owner    User   `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"owner"`
}

var ImageCriteria = criteria.Spec{
	"id":      {Column: "images.id", Kind: criteria.KindNumber},
	"name":    {Column: "images.name", Kind: criteria.KindString},
	"url":     {Column: "images.url", Kind: criteria.KindString},
	"format":  {Column: "images.format", Kind: criteria.KindString},
	"ownerId": {Column: "images.owner_id", Kind: criteria.KindNumber},
}
