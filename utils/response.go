package utils

import (
	"github.com/kataras/iris/v12"
)

// Application-level codes carried in error bodies alongside the HTTP status.
const (
	CodeMissingParameters = 40000
	CodeEmailExists       = 10000
	CodeStateExists       = 10001
	CodeCityExists        = 10002
	CodeAmenityExists     = 10003
	CodeDateUnavailable   = 110000
)

func JSONMsg(ctx iris.Context, status, code int, msg string) {
	ctx.StatusCode(status)
	ctx.JSON(iris.Map{"code": code, "msg": msg})
}

// JSONCreated is the body shape every creation endpoint returns.
func JSONCreated(ctx iris.Context, id uint, msg string) {
	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{"code": 201, "id": id, "msg": msg})
}

func MissingParameters(ctx iris.Context) {
	JSONMsg(ctx, iris.StatusBadRequest, CodeMissingParameters, "Missing parameters")
}

func BadRequest(ctx iris.Context, msg string) {
	JSONMsg(ctx, iris.StatusBadRequest, 400, msg)
}

func NotFound(ctx iris.Context) {
	JSONMsg(ctx, iris.StatusNotFound, 404, "not found")
}

func InternalServerError(ctx iris.Context) {
	JSONMsg(ctx, iris.StatusInternalServerError, 500, "server error")
}
