package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderClauseDefaultsToId(t *testing.T) {
	clause, err := OrderClause("salons", "")
	require.NoError(t, err)
	assert.Equal(t, "salons.id", clause)
}

func TestOrderClauseCamelCaseField(t *testing.T) {
	clause, err := OrderClause("offers", "priceLow,desc")
	require.NoError(t, err)
	assert.Equal(t, "offers.price_low DESC", clause)

	clause, err = OrderClause("offers", "priceLow,asc")
	require.NoError(t, err)
	assert.Equal(t, "offers.price_low", clause)

	clause, err = OrderClause("offers", "priceLow")
	require.NoError(t, err)
	assert.Equal(t, "offers.price_low", clause)
}

func TestOrderClauseRejectsUnsafeInput(t *testing.T) {
	_, err := OrderClause("salons", "name;drop table salons,asc")
	assert.Error(t, err)

	_, err = OrderClause("salons", "name,sideways")
	assert.Error(t, err)

	_, err = OrderClause("salons", ",asc")
	assert.Error(t, err)
}

func TestToSnake(t *testing.T) {
	assert.Equal(t, "price_low", toSnake("priceLow"))
	assert.Equal(t, "name", toSnake("name"))
	assert.Equal(t, "last_notified_at", toSnake("lastNotifiedAt"))
}
