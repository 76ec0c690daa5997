package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"salon_manager/model"
)

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var errMsg interface{}
	if err != nil {
		errMsg = err.Error()
	} else {
		errMsg = nil
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   errMsg,
	})
}

func ErrorResponseHaveKey(c *fiber.Ctx, status int, message string, err error, keyError string) error {
	var errMsg string
	if err != nil {
		errMsg = err.Error()
	}
	return c.Status(status).JSON(fiber.Map{
		"status":   "error",
		"message":  message,
		"errors":   errMsg,
		"keyError": keyError,
	})
}

func SuccessResponse(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

func ApplyPagination(query *gorm.DB, limit, page *int) *gorm.DB {
	if limit != nil && *limit > 0 && page != nil && *page >= 1 {
		query = query.Limit(*limit)
		query = query.Offset(*limit * (*page - 1))
	}
	return query
}

// ParsePage reads the page/size query parameters (1-based page).
func ParsePage(c *fiber.Ctx) model.Pagination {
	var pg model.Pagination
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		pg.Page = &v
	}
	if v, err := strconv.Atoi(c.Query("size")); err == nil && v > 0 {
		pg.Size = &v
	}
	return pg
}

// SetPaginationHeaders writes X-Total-Count plus an RFC 5988 Link header
// with first/prev/next/last relations for the current page.
func SetPaginationHeaders(c *fiber.Ctx, total int64, pg model.Pagination) {
	c.Set("X-Total-Count", strconv.FormatInt(total, 10))
	c.Set("Link", PageLinks(c.Path(), total, pg))
}

// PageLinks builds the Link header value. Page numbering is 1-based; the
// last page is derived from the total count and page size.
func PageLinks(path string, total int64, pg model.Pagination) string {
	size := 20
	page := 1
	if pg.Size != nil && *pg.Size > 0 {
		size = *pg.Size
	}
	if pg.Page != nil && *pg.Page > 0 {
		page = *pg.Page
	}
	last := int((total + int64(size) - 1) / int64(size))
	if last < 1 {
		last = 1
	}

	link := func(p int, rel string) string {
		return fmt.Sprintf(`<%s?page=%d&size=%d>; rel="%s"`, path, p, size, rel)
	}
	parts := []string{link(1, "first")}
	if page > 1 {
		parts = append(parts, link(page-1, "prev"))
	}
	if page < last {
		parts = append(parts, link(page+1, "next"))
	}
	parts = append(parts, link(last, "last"))
	return strings.Join(parts, ",")
}

func Ptr[T any](v T) *T {
	return &v
}
