package utils

import (
	"fmt"

	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

// ListStyle runs the query with page/number offsets taken from the request
// and wraps the rows in the shared list envelope: {"data": [...], "paging":
// {"prev": ..., "next": ...}}. prev is null on the first page; next is always
// offered, the client discovers the end by an empty data array.
func ListStyle(ctx iris.Context, tx *gorm.DB, out interface{}) (iris.Map, error) {
	page := ctx.URLParamIntDefault("page", 1)
	number := ctx.URLParamIntDefault("number", 10)
	if page < 1 {
		page = 1
	}
	if number < 1 {
		number = 10
	}

	if err := tx.Offset((page - 1) * number).Limit(number).Find(out).Error; err != nil {
		return nil, err
	}

	base := baseURL(ctx)
	paging := iris.Map{
		"prev": nil,
		"next": fmt.Sprintf("%s?page=%d&number=%d", base, page+1, number),
	}
	if page > 1 {
		paging["prev"] = fmt.Sprintf("%s?page=%d&number=%d", base, page-1, number)
	}

	return iris.Map{"data": out, "paging": paging}, nil
}

func baseURL(ctx iris.Context) string {
	scheme := "http"
	if ctx.Request().TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + ctx.Request().Host + ctx.Path()
}
