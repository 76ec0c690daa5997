package model

import (
	"salon_manager/criteria"
	"salon_manager/graph"
)

type Master struct {
	DTO
	Nickname   string     `gorm:"not null" validate:"required" json:"nickname"`
	About      string     `json:"about"`
	Active     *bool      `gorm:"not null;default:true" json:"active"`
	SalonID    *uint      `json:"salonId"`
	Salon      *Salon     `gorm:"foreignKey:SalonID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"salon,omitempty"`
	UserID     uint       `gorm:"not null" json:"userId"`
	User       User       `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"user"`
	Categories []Category `gorm:"many2many:master_categories" json:"categories"`
	Records    []Record   `gorm:"foreignKey:MasterID" json:"records,omitempty"`
}

func (m *Master) AddCategory(c *Category) {
	if m == nil || c == nil {
		return
	}
	graph.Append(&m.Categories, *c)
	graph.Append(&c.Masters, *m)
}

func (m *Master) RemoveCategory(c *Category) {
	if m == nil || c == nil {
		return
	}
	graph.Delete(&m.Categories, *c)
	graph.Delete(&c.Masters, *m)
}

func (m *Master) AddRecord(r *Record) {
	if m == nil || r == nil {
		return
	}
	graph.Append(&m.Records, *r)
	r.MasterID = &m.ID
	r.Master = m
}

func (m *Master) RemoveRecord(r *Record) {
	if m == nil || r == nil {
		return
	}
	graph.Delete(&m.Records, *r)
	if graph.PointsBack(r.MasterID, m) {
		r.MasterID = nil
		r.Master = nil
	}
}

var MasterCriteria = criteria.Spec{
	"id":       {Column: "masters.id", Kind: criteria.KindNumber},
	"nickname": {Column: "masters.nickname", Kind: criteria.KindString},
	"about":    {Column: "masters.about", Kind: criteria.KindString},
	"active":   {Column: "masters.active", Kind: criteria.KindBool},
	"salonId":  {Column: "masters.salon_id", Kind: criteria.KindNumber},
	"userId":   {Column: "masters.user_id", Kind: criteria.KindNumber},
	"categoryId": {
		Column: "master_categories.category_id",
		Kind:   criteria.KindNumber,
		Join:   "JOIN master_categories ON master_categories.master_id = masters.id",
	},
	"recordId": {
		Column: "records.id",
		Kind:   criteria.KindNumber,
		Join:   "JOIN records ON records.master_id = masters.id",
	},
}
