package routes

import (
	"hbnb-clone-server/models"
	"hbnb-clone-server/storage"
	"hbnb-clone-server/utils"

	"github.com/kataras/iris/v12"
)

func GetCities(ctx iris.Context) {
	stateID := ctx.Params().Get("stateId")
	if !storage.Exists(&models.State{}, stateID) {
		utils.NotFound(ctx)
		return
	}

	var cities []models.City
	res, err := utils.ListStyle(ctx, storage.DB.Where("state_id = ?", stateID), &cities)
	if err != nil {
		utils.InternalServerError(ctx)
		return
	}
	ctx.JSON(res)
}

func CreateCity(ctx iris.Context) {
	stateID := ctx.Params().Get("stateId")
	if !storage.Exists(&models.State{}, stateID) {
		utils.NotFound(ctx)
		return
	}

	data, ok := readBody(ctx)
	if !ok {
		return
	}

	name, present := data["name"]
	if !present {
		utils.MissingParameters(ctx)
		return
	}
	if !utils.Classify(name, utils.String) {
		utils.BadRequest(ctx, "'name' value is not a string")
		return
	}

	var count int64
	storage.DB.Model(&models.City{}).Where("name = ?", name).Count(&count)
	if count > 0 {
		utils.JSONMsg(ctx, iris.StatusConflict, utils.CodeCityExists, "City already exists")
		return
	}

	sid, _ := parseID(stateID)
	city := models.City{Name: name.(string), StateID: sid}
	if err := storage.DB.Create(&city).Error; err != nil {
		utils.InternalServerError(ctx)
		return
	}
	utils.JSONCreated(ctx, city.ID, "City was created successfully")
}

func GetCity(ctx iris.Context) {
	stateID := ctx.Params().Get("stateId")
	cityID := ctx.Params().Get("cityId")
	if !storage.Exists(&models.State{}, stateID) || !storage.Exists(&models.City{}, cityID) {
		utils.NotFound(ctx)
		return
	}

	var city models.City
	if err := storage.DB.Where("state_id = ?", stateID).First(&city, cityID).Error; err != nil {
		utils.NotFound(ctx)
		return
	}
	ctx.JSON(city)
}

func DeleteCity(ctx iris.Context) {
	stateID := ctx.Params().Get("stateId")
	cityID := ctx.Params().Get("cityId")
	if !storage.Exists(&models.State{}, stateID) || !storage.Exists(&models.City{}, cityID) {
		utils.NotFound(ctx)
		return
	}

	if err := storage.DB.Where("state_id = ?", stateID).Delete(&models.City{}, cityID).Error; err != nil {
		utils.InternalServerError(ctx)
		return
	}
	utils.JSONMsg(ctx, iris.StatusOK, 200, "City account was deleted")
}
