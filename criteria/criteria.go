// Package criteria turns `{field}.{operator}={value}` query parameters into
// a conjunctive GORM predicate. Each entity declares a Spec mapping filter
// field names to columns; relation-id fields carry the JOIN needed to reach
// the foreign key without loading the related row.
package criteria

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

type Kind int

const (
	KindNumber Kind = iota
	KindString
	KindBool
	KindTime
)

type Field struct {
	Column string // qualified column, e.g. "salons.name"
	Kind   Kind
	Join   string // optional JOIN reaching the column for relation filters
}

type Spec map[string]Field

const (
	opEquals             = "equals"
	opNotEquals          = "notEquals"
	opIn                 = "in"
	opGreaterThan        = "greaterThan"
	opGreaterThanOrEqual = "greaterThanOrEqual"
	opLessThan           = "lessThan"
	opLessThanOrEqual    = "lessThanOrEqual"
	opContains           = "contains"
	opDoesNotContain     = "doesNotContain"
	opSpecified          = "specified"
)

// Criteria is the parsed, immutable-by-copy filter set for one request.
type Criteria struct {
	spec    Spec
	filters map[string]FieldFilter
}

// Parse reads every `{field}.{operator}` key out of the request query.
// Keys without a dot (page, size, sort, query) are ignored; a dotted key
// with an unknown field or an operator invalid for the field's kind is an
// error. Absent fields contribute nothing to the predicate.
func Parse(spec Spec, query map[string]string) (*Criteria, error) {
	c := &Criteria{spec: spec, filters: map[string]FieldFilter{}}
	for key, raw := range query {
		field, op, found := strings.Cut(key, ".")
		if !found {
			continue
		}
		fs, ok := spec[field]
		if !ok {
			return nil, fmt.Errorf("unknown filter field %q", field)
		}
		if err := c.set(field, fs.Kind, op, raw); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Apply adds the joins and WHERE conditions of every populated filter, in
// field-name order so the generated SQL is deterministic.
func (c *Criteria) Apply(q *gorm.DB) *gorm.DB {
	if c == nil {
		return q
	}
	for _, j := range c.joins() {
		q = q.Joins(j)
	}
	for _, field := range c.fieldNames() {
		q = c.filters[field].Apply(q, c.spec[field].Column)
	}
	return q
}

// Copy is a deep clone: mutating the copy's filters never touches the
// original.
func (c *Criteria) Copy() *Criteria {
	if c == nil {
		return nil
	}
	out := &Criteria{spec: c.spec, filters: make(map[string]FieldFilter, len(c.filters))}
	for field, f := range c.filters {
		out.filters[field] = f.Copy()
	}
	return out
}

func (c *Criteria) Empty() bool {
	return c == nil || len(c.filters) == 0
}

// Filter exposes a parsed field filter, mainly for tests and handlers that
// post-process criteria.
func (c *Criteria) Filter(field string) FieldFilter {
	if c == nil {
		return nil
	}
	return c.filters[field]
}

func (c *Criteria) fieldNames() []string {
	names := make([]string, 0, len(c.filters))
	for field := range c.filters {
		names = append(names, field)
	}
	sort.Strings(names)
	return names
}

func (c *Criteria) joins() []string {
	var joins []string
	for _, field := range c.fieldNames() {
		j := c.spec[field].Join
		if j == "" {
			continue
		}
		seen := false
		for _, existing := range joins {
			if existing == j {
				seen = true
				break
			}
		}
		if !seen {
			joins = append(joins, j)
		}
	}
	return joins
}

func (c *Criteria) set(field string, kind Kind, op, raw string) error {
	if op == opSpecified {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%s.specified: %w", field, err)
		}
		switch f := c.ensure(field, kind).(type) {
		case *NumberFilter:
			f.Specified = &v
		case *StringFilter:
			f.Specified = &v
		case *BoolFilter:
			f.Specified = &v
		case *TimeFilter:
			f.Specified = &v
		}
		return nil
	}

	switch kind {
	case KindNumber:
		f := c.ensure(field, kind).(*NumberFilter)
		return setNumber(field, f, op, raw)
	case KindString:
		f := c.ensure(field, kind).(*StringFilter)
		return setString(field, f, op, raw)
	case KindBool:
		f := c.ensure(field, kind).(*BoolFilter)
		return setBool(field, f, op, raw)
	case KindTime:
		f := c.ensure(field, kind).(*TimeFilter)
		return setTime(field, f, op, raw)
	}
	return fmt.Errorf("unknown filter kind for field %q", field)
}

func (c *Criteria) ensure(field string, kind Kind) FieldFilter {
	if f, ok := c.filters[field]; ok {
		return f
	}
	var f FieldFilter
	switch kind {
	case KindNumber:
		f = &NumberFilter{}
	case KindString:
		f = &StringFilter{}
	case KindBool:
		f = &BoolFilter{}
	case KindTime:
		f = &TimeFilter{}
	}
	c.filters[field] = f
	return f
}

func setNumber(field string, f *NumberFilter, op, raw string) error {
	if op == opIn {
		for _, part := range strings.Split(raw, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
			if err != nil {
				return fmt.Errorf("%s.in: %w", field, err)
			}
			f.In = append(f.In, v)
		}
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("%s.%s: %w", field, op, err)
	}
	switch op {
	case opEquals:
		f.Equals = &v
	case opNotEquals:
		f.NotEquals = &v
	case opGreaterThan:
		f.GreaterThan = &v
	case opGreaterThanOrEqual:
		f.GreaterThanOrEqual = &v
	case opLessThan:
		f.LessThan = &v
	case opLessThanOrEqual:
		f.LessThanOrEqual = &v
	default:
		return fmt.Errorf("operator %q not valid for numeric field %q", op, field)
	}
	return nil
}

func setString(field string, f *StringFilter, op, raw string) error {
	switch op {
	case opEquals:
		f.Equals = &raw
	case opNotEquals:
		f.NotEquals = &raw
	case opIn:
		for _, part := range strings.Split(raw, ",") {
			f.In = append(f.In, strings.TrimSpace(part))
		}
	case opContains:
		f.Contains = &raw
	case opDoesNotContain:
		f.DoesNotContain = &raw
	default:
		return fmt.Errorf("operator %q not valid for string field %q", op, field)
	}
	return nil
}

func setBool(field string, f *BoolFilter, op, raw string) error {
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fmt.Errorf("%s.%s: %w", field, op, err)
	}
	switch op {
	case opEquals:
		f.Equals = &v
	case opNotEquals:
		f.NotEquals = &v
	default:
		return fmt.Errorf("operator %q not valid for boolean field %q", op, field)
	}
	return nil
}

func setTime(field string, f *TimeFilter, op, raw string) error {
	if op == opIn {
		for _, part := range strings.Split(raw, ",") {
			v, err := time.Parse(time.RFC3339, strings.TrimSpace(part))
			if err != nil {
				return fmt.Errorf("%s.in: %w", field, err)
			}
			f.In = append(f.In, v)
		}
		return nil
	}
	v, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return fmt.Errorf("%s.%s: %w", field, op, err)
	}
	switch op {
	case opEquals:
		f.Equals = &v
	case opNotEquals:
		f.NotEquals = &v
	case opGreaterThan:
		f.GreaterThan = &v
	case opGreaterThanOrEqual:
		f.GreaterThanOrEqual = &v
	case opLessThan:
		f.LessThan = &v
	case opLessThanOrEqual:
		f.LessThanOrEqual = &v
	default:
		return fmt.Errorf("operator %q not valid for time field %q", op, field)
	}
	return nil
}

func lower(s string) string { return strings.ToLower(s) }
