package routes

import (
	"hbnb-clone-server/models"
	"hbnb-clone-server/storage"
	"hbnb-clone-server/utils"

	"github.com/kataras/iris/v12"
)

func GetStates(ctx iris.Context) {
	var states []models.State
	res, err := utils.ListStyle(ctx, storage.DB, &states)
	if err != nil {
		utils.InternalServerError(ctx)
		return
	}
	ctx.JSON(res)
}

func CreateState(ctx iris.Context) {
	data, ok := readBody(ctx)
	if !ok {
		return
	}

	name, present := data["name"]
	if !present {
		utils.MissingParameters(ctx)
		return
	}
	if name == "" || name == nil {
		utils.BadRequest(ctx, "'name' cannot be NULL")
		return
	}
	if !utils.Classify(name, utils.String) {
		utils.BadRequest(ctx, "'name' must be a string")
		return
	}

	var count int64
	storage.DB.Model(&models.State{}).Where("name = ?", name).Count(&count)
	if count > 0 {
		utils.JSONMsg(ctx, iris.StatusConflict, utils.CodeStateExists, "State already exists")
		return
	}

	state := models.State{Name: name.(string)}
	if err := storage.DB.Create(&state).Error; err != nil {
		utils.InternalServerError(ctx)
		return
	}
	utils.JSONCreated(ctx, state.ID, "State was created successfully")
}

func GetState(ctx iris.Context) {
	id := ctx.Params().Get("stateId")
	if !storage.Exists(&models.State{}, id) {
		utils.NotFound(ctx)
		return
	}

	var state models.State
	if err := storage.DB.First(&state, id).Error; err != nil {
		utils.InternalServerError(ctx)
		return
	}
	ctx.JSON(state)
}

func DeleteState(ctx iris.Context) {
	id := ctx.Params().Get("stateId")
	if !storage.Exists(&models.State{}, id) {
		utils.NotFound(ctx)
		return
	}

	if err := storage.DB.Delete(&models.State{}, id).Error; err != nil {
		utils.InternalServerError(ctx)
		return
	}
	utils.JSONMsg(ctx, iris.StatusOK, 200, "State account was deleted")
}
