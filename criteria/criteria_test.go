package criteria

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

var salonSpec = Spec{
	"id":     {Column: "salons.id", Kind: KindNumber},
	"name":   {Column: "salons.name", Kind: KindString},
	"active": {Column: "salons.active", Kind: KindBool},
	"openAt": {Column: "salons.open_at", Kind: KindTime},
	"categoryId": {
		Column: "salon_categories.category_id",
		Kind:   KindNumber,
		Join:   "JOIN salon_categories ON salon_categories.salon_id = salons.id",
	},
	"offerId": {
		Column: "offers.id",
		Kind:   KindNumber,
		Join:   "JOIN offers ON offers.salon_id = salons.id",
	},
}

func dryRun(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)
	return db
}

func buildSQL(t *testing.T, c *Criteria) string {
	t.Helper()
	var rows []map[string]interface{}
	stmt := c.Apply(dryRun(t).Table("salons")).Find(&rows).Statement
	return stmt.SQL.String()
}

func TestParsePopulatesFilters(t *testing.T) {
	c, err := Parse(salonSpec, map[string]string{
		"name.contains":     "bliss",
		"id.in":             "1, 2,3",
		"active.equals":     "true",
		"openAt.lessThan":   "2026-01-02T10:00:00Z",
		"id.greaterThan":    "10",
		"name.notEquals":    "closed",
		"categoryId.equals": "7",
	})
	require.NoError(t, err)
	require.False(t, c.Empty())

	name := c.Filter("name").(*StringFilter)
	assert.Equal(t, "bliss", *name.Contains)
	assert.Equal(t, "closed", *name.NotEquals)

	id := c.Filter("id").(*NumberFilter)
	assert.Equal(t, []float64{1, 2, 3}, id.In)
	assert.Equal(t, float64(10), *id.GreaterThan)

	active := c.Filter("active").(*BoolFilter)
	assert.True(t, *active.Equals)

	openAt := c.Filter("openAt").(*TimeFilter)
	assert.NotNil(t, openAt.LessThan)
}

func TestParseIgnoresUndottedKeys(t *testing.T) {
	c, err := Parse(salonSpec, map[string]string{
		"page": "2",
		"size": "20",
		"sort": "name,asc",
	})
	require.NoError(t, err)
	assert.True(t, c.Empty())
}

func TestParseRejectsUnknownField(t *testing.T) {
	_, err := Parse(salonSpec, map[string]string{"bogus.equals": "x"})
	assert.Error(t, err)
}

func TestParseRejectsOperatorWrongForKind(t *testing.T) {
	_, err := Parse(salonSpec, map[string]string{"id.contains": "5"})
	assert.Error(t, err)

	_, err = Parse(salonSpec, map[string]string{"active.greaterThan": "true"})
	assert.Error(t, err)
}

func TestParseRejectsBadValues(t *testing.T) {
	_, err := Parse(salonSpec, map[string]string{"id.equals": "abc"})
	assert.Error(t, err)

	_, err = Parse(salonSpec, map[string]string{"active.specified": "maybe"})
	assert.Error(t, err)

	_, err = Parse(salonSpec, map[string]string{"openAt.equals": "yesterday"})
	assert.Error(t, err)
}

func TestApplyConjunction(t *testing.T) {
	c, err := Parse(salonSpec, map[string]string{
		"name.contains": "spa",
		"id.lessThan":   "100",
	})
	require.NoError(t, err)

	sql := buildSQL(t, c)
	assert.Contains(t, sql, "salons.id < ")
	assert.Contains(t, sql, "LOWER(salons.name) LIKE ")
	assert.Contains(t, sql, " AND ")
	assert.NotContains(t, sql, " OR ")
}

func TestApplySpecifiedComesLast(t *testing.T) {
	c, err := Parse(salonSpec, map[string]string{
		"name.contains":  "spa",
		"name.specified": "true",
	})
	require.NoError(t, err)

	sql := buildSQL(t, c)
	like := strings.Index(sql, "LIKE")
	notNull := strings.Index(sql, "salons.name IS NOT NULL")
	require.GreaterOrEqual(t, like, 0)
	require.GreaterOrEqual(t, notNull, 0)
	assert.Less(t, like, notNull)
}

func TestApplySpecifiedFalseIsIsolated(t *testing.T) {
	c, err := Parse(salonSpec, map[string]string{"name.specified": "false"})
	require.NoError(t, err)

	sql := buildSQL(t, c)
	assert.Contains(t, sql, "salons.name IS NULL")
	assert.NotContains(t, sql, "LIKE")
}

func TestApplyRelationJoinOnce(t *testing.T) {
	c, err := Parse(salonSpec, map[string]string{
		"categoryId.equals":      "7",
		"categoryId.greaterThan": "1",
	})
	require.NoError(t, err)

	sql := buildSQL(t, c)
	assert.Equal(t, 1, strings.Count(sql, "JOIN salon_categories"))
	assert.Contains(t, sql, "salon_categories.category_id")
}

func TestApplyNilCriteria(t *testing.T) {
	var c *Criteria
	var rows []map[string]interface{}
	stmt := c.Apply(dryRun(t).Table("salons")).Find(&rows).Statement
	assert.NotContains(t, stmt.SQL.String(), "WHERE")
}

func TestCopyIsDeep(t *testing.T) {
	c, err := Parse(salonSpec, map[string]string{
		"name.contains": "spa",
		"id.in":         "1,2",
	})
	require.NoError(t, err)

	cp := c.Copy()
	*cp.Filter("name").(*StringFilter).Contains = "mutated"
	cp.Filter("id").(*NumberFilter).In[0] = 99

	assert.Equal(t, "spa", *c.Filter("name").(*StringFilter).Contains)
	assert.Equal(t, float64(1), c.Filter("id").(*NumberFilter).In[0])
}

func TestCopyNil(t *testing.T) {
	var c *Criteria
	assert.Nil(t, c.Copy())
}
