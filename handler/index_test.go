package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"salon_manager/model"
	"salon_manager/utils"
)

func TestPaginateIds(t *testing.T) {
	ids := []uint{1, 2, 3, 4, 5}

	page1 := paginateIds(ids, model.Pagination{Page: utils.Ptr(1), Size: utils.Ptr(2)})
	assert.Equal(t, []uint{1, 2}, page1)

	page3 := paginateIds(ids, model.Pagination{Page: utils.Ptr(3), Size: utils.Ptr(2)})
	assert.Equal(t, []uint{5}, page3)

	beyond := paginateIds(ids, model.Pagination{Page: utils.Ptr(4), Size: utils.Ptr(2)})
	assert.Nil(t, beyond)

	defaults := paginateIds(ids, model.Pagination{})
	assert.Equal(t, ids, defaults)
}
