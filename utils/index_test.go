package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"salon_manager/model"
)

func TestPageLinksFirstPage(t *testing.T) {
	pg := model.Pagination{Page: Ptr(1), Size: Ptr(20)}
	link := PageLinks("/api/salons", 45, pg)

	assert.Contains(t, link, `</api/salons?page=1&size=20>; rel="first"`)
	assert.Contains(t, link, `</api/salons?page=2&size=20>; rel="next"`)
	assert.Contains(t, link, `</api/salons?page=3&size=20>; rel="last"`)
	assert.NotContains(t, link, `rel="prev"`)
}

func TestPageLinksMiddlePage(t *testing.T) {
	pg := model.Pagination{Page: Ptr(2), Size: Ptr(10)}
	link := PageLinks("/api/offers", 35, pg)

	assert.Contains(t, link, `rel="prev"`)
	assert.Contains(t, link, `rel="next"`)
	assert.Contains(t, link, `</api/offers?page=4&size=10>; rel="last"`)
}

func TestPageLinksLastPage(t *testing.T) {
	pg := model.Pagination{Page: Ptr(3), Size: Ptr(20)}
	link := PageLinks("/api/salons", 45, pg)

	assert.NotContains(t, link, `rel="next"`)
	assert.Contains(t, link, `</api/salons?page=2&size=20>; rel="prev"`)
}

func TestPageLinksEmptyResult(t *testing.T) {
	link := PageLinks("/api/salons", 0, model.Pagination{})

	assert.Contains(t, link, `</api/salons?page=1&size=20>; rel="first"`)
	assert.Contains(t, link, `</api/salons?page=1&size=20>; rel="last"`)
	assert.NotContains(t, link, `rel="next"`)
	assert.NotContains(t, link, `rel="prev"`)
}

func TestPageLinksDefaults(t *testing.T) {
	link := PageLinks("/api/salons", 100, model.Pagination{})
	assert.Equal(t, 3, strings.Count(link, "size=20"), "default size is 20 on every link")
	assert.Contains(t, link, `page=5&size=20>; rel="last"`)
}
