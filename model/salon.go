package model

import (
	"salon_manager/criteria"
	"salon_manager/graph"
)

type SalonStatus string

const (
	SalonCreated     SalonStatus = "CREATED"
	SalonActivated   SalonStatus = "ACTIVATED"
	SalonDeactivated SalonStatus = "DEACTIVATED"
)

type SalonType string

const (
	SalonStandard SalonType = "STANDARD"
	SalonPremium  SalonType = "PREMIUM"
)

type Salon struct {
	DTO
	Name        string      `gorm:"not null" validate:"required" json:"name"`
	Slug        string      `gorm:"uniqueIndex" json:"slug"`
	Location    string      `json:"location"`
	Description string      `json:"description"`
	Status      SalonStatus `gorm:"not null;default:CREATED" json:"status"`
	Type        SalonType   `gorm:"not null;default:STANDARD" json:"type"`
	OwnerID     uint        `gorm:"not null" json:"ownerId"`
	Owner       User        `gorm:"foreignKey:OwnerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"owner"`
	ImageID     *uint       `json:"imageId"`
	Image       *Image      `gorm:"foreignKey:ImageID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"image,omitempty"`
	TimeTableID *uint       `json:"timeTableId"`
	TimeTable   *TimeTable  `gorm:"foreignKey:TimeTableID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"timeTable,omitempty"`
	Categories  []Category  `gorm:"many2many:salon_categories" json:"categories"`
	Offers      []Offer     `gorm:"foreignKey:SalonID" json:"offers,omitempty"`
	Masters     []Master    `gorm:"foreignKey:SalonID" json:"masters,omitempty"`
}

func (s *Salon) AddCategory(c *Category) {
	if s == nil || c == nil {
		return
	}
	graph.Append(&s.Categories, *c)
	graph.Append(&c.Salons, *s)
}

func (s *Salon) RemoveCategory(c *Category) {
	if s == nil || c == nil {
		return
	}
	graph.Delete(&s.Categories, *c)
	graph.Delete(&c.Salons, *s)
}

func (s *Salon) AddOffer(o *Offer) {
	if s == nil || o == nil {
		return
	}
	graph.Append(&s.Offers, *o)
	o.SalonID = &s.ID
	o.Salon = s
}

func (s *Salon) RemoveOffer(o *Offer) {
	if s == nil || o == nil {
		return
	}
	graph.Delete(&s.Offers, *o)
	if graph.PointsBack(o.SalonID, s) {
		o.SalonID = nil
		o.Salon = nil
	}
}

func (s *Salon) AddMaster(m *Master) {
	if s == nil || m == nil {
		return
	}
	graph.Append(&s.Masters, *m)
	m.SalonID = &s.ID
	m.Salon = s
}

func (s *Salon) RemoveMaster(m *Master) {
	if s == nil || m == nil {
		return
	}
	graph.Delete(&s.Masters, *m)
	if graph.PointsBack(m.SalonID, s) {
		m.SalonID = nil
		m.Salon = nil
	}
}

var SalonCriteria = criteria.Spec{
	"id":          {Column: "salons.id", Kind: criteria.KindNumber},
	"name":        {Column: "salons.name", Kind: criteria.KindString},
	"slug":        {Column: "salons.slug", Kind: criteria.KindString},
	"location":    {Column: "salons.location", Kind: criteria.KindString},
	"description": {Column: "salons.description", Kind: criteria.KindString},
	"status":      {Column: "salons.status", Kind: criteria.KindString},
	"type":        {Column: "salons.type", Kind: criteria.KindString},
	"createdAt":   {Column: "salons.created_at", Kind: criteria.KindTime},
	"ownerId":     {Column: "salons.owner_id", Kind: criteria.KindNumber},
	"imageId":     {Column: "salons.image_id", Kind: criteria.KindNumber},
	"timeTableId": {Column: "salons.time_table_id", Kind: criteria.KindNumber},
	"categoryId": {
		Column: "salon_categories.category_id",
		Kind:   criteria.KindNumber,
		Join:   "JOIN salon_categories ON salon_categories.salon_id = salons.id",
	},
	"offerId": {
		Column: "offers.id",
		Kind:   criteria.KindNumber,
		Join:   "JOIN offers ON offers.salon_id = salons.id",
	},
	"masterId": {
		Column: "masters.id",
		Kind:   criteria.KindNumber,
		Join:   "JOIN masters ON masters.salon_id = salons.id",
	},
}
