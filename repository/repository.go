// Package repository holds the generic query layer shared by every entity:
// criteria-filtered, paged, eagerly-preloaded lists with a matching count,
// and single-row fetches that treat "not found" as an absence, not an error.
package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"salon_manager/criteria"
	"salon_manager/model"
	"salon_manager/utils"
)

type Page[T any] struct {
	Rows       []T
	TotalCount int64
}

const (
	defaultPageSize = 20
	maxPageSize     = 500
)

// FindAllWithEagerRelationships runs one filtered base query twice: a count
// over the un-paged aggregate and a paged data query with the named
// collections preloaded. Grouping by the table's id deduplicates the fanout
// of relation-filter joins, so both queries agree on the filtered set.
func FindAllWithEagerRelationships[T any](db *gorm.DB, table string, crit *criteria.Criteria, pg model.Pagination, sort string, preloads ...string) (*Page[T], error) {
	base := crit.Apply(db.Model(new(T))).Group(table + ".id")

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	order, err := OrderClause(table, sort)
	if err != nil {
		return nil, err
	}

	q := base.Session(&gorm.Session{}).Order(order)
	q = applyPage(q, pg)
	for _, p := range preloads {
		q = q.Preload(p)
	}

	var rows []T
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return &Page[T]{Rows: rows, TotalCount: total}, nil
}

// FindOneWithEagerRelationships fetches one entity with the named
// collections preloaded. A missing id yields (nil, false, nil).
func FindOneWithEagerRelationships[T any](db *gorm.DB, id uint, preloads ...string) (*T, bool, error) {
	q := db
	for _, p := range preloads {
		q = q.Preload(p)
	}
	var e T
	if err := q.First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return &e, true, nil
}

// FindAllByIds fetches the given ids with preloads, preserving no
// particular order. Used by the search handlers after the index resolves a
// query to ids.
func FindAllByIds[T any](db *gorm.DB, table string, ids []uint, preloads ...string) ([]T, error) {
	var rows []T
	if len(ids) == 0 {
		return rows, nil
	}
	q := db.Where(table+".id IN ?", ids)
	for _, p := range preloads {
		q = q.Preload(p)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// OrderClause validates a "field,direction" sort parameter against snake
// case column naming and falls back to id order. Only plain identifiers are
// accepted, so the clause is safe to inline.
func OrderClause(table, sort string) (string, error) {
	if sort == "" {
		return table + ".id", nil
	}
	field, dir, _ := strings.Cut(sort, ",")
	column := toSnake(field)
	if !plainIdentifier(column) {
		return "", fmt.Errorf("invalid sort field %q", field)
	}
	switch strings.ToLower(dir) {
	case "", "asc":
		return table + "." + column, nil
	case "desc":
		return table + "." + column + " DESC", nil
	default:
		return "", fmt.Errorf("invalid sort direction %q", dir)
	}
}

func applyPage(q *gorm.DB, pg model.Pagination) *gorm.DB {
	size := defaultPageSize
	page := 1
	if pg.Size != nil && *pg.Size > 0 {
		size = *pg.Size
		if size > maxPageSize {
			size = maxPageSize
		}
	}
	if pg.Page != nil && *pg.Page > 0 {
		page = *pg.Page
	}
	return utils.ApplyPagination(q, &size, &page)
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func plainIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '_' {
			return false
		}
	}
	return true
}
