package routes

import (
	"time"

	"hbnb-clone-server/models"

	"github.com/kataras/iris/v12"
)

// Index reports API status and server times, local and UTC.
func Index(ctx iris.Context) {
	now := time.Now()
	ctx.JSON(iris.Map{
		"status":   "OK",
		"time":     now.Format(models.TimeLayout),
		"utc_time": now.UTC().Format(models.TimeLayout),
	})
}
