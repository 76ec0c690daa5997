package dto

import (
	"github.com/jinzhu/copier"
	"gorm.io/gorm"

	"salon_manager/model"
)

type CategoryDTO struct {
	Base
	Name       string `json:"name" validate:"required"`
	ParentID   *uint  `json:"parentId"`
	ParentName string `json:"parentName,omitempty"`
}

func NewCategoryDTO(c *model.Category) *CategoryDTO {
	d := new(CategoryDTO)
	copier.Copy(d, c)
	if c.Parent != nil {
		d.ParentName = c.Parent.Name
	}
	return d
}

func (d *CategoryDTO) ToEntity(db *gorm.DB) (*model.Category, error) {
	c := new(model.Category)
	copier.Copy(c, d)
	if _, err := resolveOptional[model.Category](db, "parentId", d.ParentID); err != nil {
		return nil, err
	}
	return c, nil
}
