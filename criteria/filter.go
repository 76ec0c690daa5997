package criteria

import (
	"slices"
	"time"

	"gorm.io/gorm"
)

// FieldFilter is one parsed per-field filter. Apply composes its operators
// onto the query as AND conditions against the given column; the
// "specified" operator is always appended last, in isolation from the
// value operators.
type FieldFilter interface {
	Apply(q *gorm.DB, column string) *gorm.DB
	Copy() FieldFilter
}

type NumberFilter struct {
	Equals             *float64
	NotEquals          *float64
	In                 []float64
	GreaterThan        *float64
	GreaterThanOrEqual *float64
	LessThan           *float64
	LessThanOrEqual    *float64
	Specified          *bool
}

func (f *NumberFilter) Apply(q *gorm.DB, column string) *gorm.DB {
	if f.Equals != nil {
		q = q.Where(column+" = ?", *f.Equals)
	}
	if f.NotEquals != nil {
		q = q.Where(column+" <> ?", *f.NotEquals)
	}
	if len(f.In) > 0 {
		q = q.Where(column+" IN ?", f.In)
	}
	if f.GreaterThan != nil {
		q = q.Where(column+" > ?", *f.GreaterThan)
	}
	if f.GreaterThanOrEqual != nil {
		q = q.Where(column+" >= ?", *f.GreaterThanOrEqual)
	}
	if f.LessThan != nil {
		q = q.Where(column+" < ?", *f.LessThan)
	}
	if f.LessThanOrEqual != nil {
		q = q.Where(column+" <= ?", *f.LessThanOrEqual)
	}
	return applySpecified(q, column, f.Specified)
}

func (f *NumberFilter) Copy() FieldFilter {
	c := *f
	c.Equals = clonePtr(f.Equals)
	c.NotEquals = clonePtr(f.NotEquals)
	c.In = slices.Clone(f.In)
	c.GreaterThan = clonePtr(f.GreaterThan)
	c.GreaterThanOrEqual = clonePtr(f.GreaterThanOrEqual)
	c.LessThan = clonePtr(f.LessThan)
	c.LessThanOrEqual = clonePtr(f.LessThanOrEqual)
	c.Specified = clonePtr(f.Specified)
	return &c
}

type StringFilter struct {
	Equals         *string
	NotEquals      *string
	In             []string
	Contains       *string
	DoesNotContain *string
	Specified      *bool
}

func (f *StringFilter) Apply(q *gorm.DB, column string) *gorm.DB {
	if f.Equals != nil {
		q = q.Where(column+" = ?", *f.Equals)
	}
	if f.NotEquals != nil {
		q = q.Where(column+" <> ?", *f.NotEquals)
	}
	if len(f.In) > 0 {
		q = q.Where(column+" IN ?", f.In)
	}
	if f.Contains != nil {
		q = q.Where("LOWER("+column+") LIKE ?", like(*f.Contains))
	}
	if f.DoesNotContain != nil {
		q = q.Where("LOWER("+column+") NOT LIKE ?", like(*f.DoesNotContain))
	}
	return applySpecified(q, column, f.Specified)
}

func (f *StringFilter) Copy() FieldFilter {
	c := *f
	c.Equals = clonePtr(f.Equals)
	c.NotEquals = clonePtr(f.NotEquals)
	c.In = slices.Clone(f.In)
	c.Contains = clonePtr(f.Contains)
	c.DoesNotContain = clonePtr(f.DoesNotContain)
	c.Specified = clonePtr(f.Specified)
	return &c
}

type BoolFilter struct {
	Equals    *bool
	NotEquals *bool
	Specified *bool
}

func (f *BoolFilter) Apply(q *gorm.DB, column string) *gorm.DB {
	if f.Equals != nil {
		q = q.Where(column+" = ?", *f.Equals)
	}
	if f.NotEquals != nil {
		q = q.Where(column+" <> ?", *f.NotEquals)
	}
	return applySpecified(q, column, f.Specified)
}

func (f *BoolFilter) Copy() FieldFilter {
	c := *f
	c.Equals = clonePtr(f.Equals)
	c.NotEquals = clonePtr(f.NotEquals)
	c.Specified = clonePtr(f.Specified)
	return &c
}

type TimeFilter struct {
	Equals             *time.Time
	NotEquals          *time.Time
	In                 []time.Time
	GreaterThan        *time.Time
	GreaterThanOrEqual *time.Time
	LessThan           *time.Time
	LessThanOrEqual    *time.Time
	Specified          *bool
}

func (f *TimeFilter) Apply(q *gorm.DB, column string) *gorm.DB {
	if f.Equals != nil {
		q = q.Where(column+" = ?", *f.Equals)
	}
	if f.NotEquals != nil {
		q = q.Where(column+" <> ?", *f.NotEquals)
	}
	if len(f.In) > 0 {
		q = q.Where(column+" IN ?", f.In)
	}
	if f.GreaterThan != nil {
		q = q.Where(column+" > ?", *f.GreaterThan)
	}
	if f.GreaterThanOrEqual != nil {
		q = q.Where(column+" >= ?", *f.GreaterThanOrEqual)
	}
	if f.LessThan != nil {
		q = q.Where(column+" < ?", *f.LessThan)
	}
	if f.LessThanOrEqual != nil {
		q = q.Where(column+" <= ?", *f.LessThanOrEqual)
	}
	return applySpecified(q, column, f.Specified)
}

func (f *TimeFilter) Copy() FieldFilter {
	c := *f
	c.Equals = clonePtr(f.Equals)
	c.NotEquals = clonePtr(f.NotEquals)
	c.In = slices.Clone(f.In)
	c.GreaterThan = clonePtr(f.GreaterThan)
	c.GreaterThanOrEqual = clonePtr(f.GreaterThanOrEqual)
	c.LessThan = clonePtr(f.LessThan)
	c.LessThanOrEqual = clonePtr(f.LessThanOrEqual)
	c.Specified = clonePtr(f.Specified)
	return &c
}

func applySpecified(q *gorm.DB, column string, specified *bool) *gorm.DB {
	if specified == nil {
		return q
	}
	if *specified {
		return q.Where(column + " IS NOT NULL")
	}
	return q.Where(column + " IS NULL")
}

func like(s string) string {
	return "%" + lower(s) + "%"
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
