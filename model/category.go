package model

import (
	"salon_manager/criteria"
	"salon_manager/graph"
)

type Category struct {
	DTO
	Name     string     `gorm:"not null" validate:"required" json:"name"`
	ParentID *uint      `json:"parentId"`
	Parent   *Category  `gorm:"foreignKey:ParentID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"parent,omitempty"`
	Children []Category `gorm:"foreignKey:ParentID" json:"children,omitempty"`
	Salons   []Salon    `gorm:"many2many:salon_categories" json:"-"`
	Masters  []Master   `gorm:"many2many:master_categories" json:"-"`
}

func (c *Category) AddChild(child *Category) {
	if c == nil || child == nil {
		return
	}
	graph.Append(&c.Children, *child)
	child.ParentID = &c.ID
	child.Parent = c
}

func (c *Category) RemoveChild(child *Category) {
	if c == nil || child == nil {
		return
	}
	graph.Delete(&c.Children, *child)
	if graph.PointsBack(child.ParentID, c) {
		child.ParentID = nil
		child.Parent = nil
	}
}

var CategoryCriteria = criteria.Spec{
	"id":       {Column: "categories.id", Kind: criteria.KindNumber},
	"name":     {Column: "categories.name", Kind: criteria.KindString},
	"parentId": {Column: "categories.parent_id", Kind: criteria.KindNumber},
	"salonId": {
		Column: "salon_categories.salon_id",
		Kind:   criteria.KindNumber,
		Join:   "JOIN salon_categories ON salon_categories.category_id = categories.id",
	},
	"masterId": {
		Column: "master_categories.master_id",
		Kind:   criteria.KindNumber,
		Join:   "JOIN master_categories ON master_categories.category_id = categories.id",
	},
}
