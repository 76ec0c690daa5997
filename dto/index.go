// Package dto is the wire projection layer. Entity -> DTO flattens every
// many-to-one relation to its id plus one display field, and editable
// many-to-many sets to lightweight Ref lists, so responses never serialize
// an unbounded graph. DTO -> entity resolves every relation id against the
// database, failing with a field-keyed error when a reference is missing.
package dto

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Ref is the id+label projection of a related entity.
type Ref struct {
	ID   uint   `json:"id" validate:"required"`
	Name string `json:"name"`
}

type Base struct {
	ID uint `json:"id"`
}

func (b Base) GetID() uint { return b.ID }

// MissingRefError marks a relation id that resolved to nothing, keyed by
// the DTO field that carried it.
type MissingRefError struct {
	Field string
	ID    uint
}

func (e *MissingRefError) Error() string {
	if e.ID == 0 {
		return fmt.Sprintf("required reference %q is missing", e.Field)
	}
	return fmt.Sprintf("reference %q points to unknown id %d", e.Field, e.ID)
}

func resolveRequired[T any](db *gorm.DB, field string, id uint) (*T, error) {
	if id == 0 {
		return nil, &MissingRefError{Field: field}
	}
	var e T
	if err := db.First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &MissingRefError{Field: field, ID: id}
		}
		return nil, err
	}
	return &e, nil
}

func resolveOptional[T any](db *gorm.DB, field string, id *uint) (*T, error) {
	if id == nil || *id == 0 {
		return nil, nil
	}
	return resolveRequired[T](db, field, *id)
}

func resolveRefs[T any](db *gorm.DB, field string, refs []Ref) ([]T, error) {
	out := make([]T, 0, len(refs))
	for _, r := range refs {
		e, err := resolveRequired[T](db, field, r.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, nil
}
