package routes

import (
	"hbnb-clone-server/models"
	"hbnb-clone-server/storage"
	"hbnb-clone-server/utils"

	"github.com/kataras/iris/v12"
)

func GetAmenities(ctx iris.Context) {
	var amenities []models.Amenity
	res, err := utils.ListStyle(ctx, storage.DB, &amenities)
	if err != nil {
		utils.InternalServerError(ctx)
		return
	}
	ctx.JSON(res)
}

func CreateAmenity(ctx iris.Context) {
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
		utils.BadRequest(ctx, "'name' must be a string")
		return
	}

	var count int64
	storage.DB.Model(&models.Amenity{}).Where("name = ?", name).Count(&count)
	if count > 0 {
		utils.JSONMsg(ctx, iris.StatusConflict, utils.CodeAmenityExists, "Amenity already exists")
		return
	}

	amenity := models.Amenity{Name: name.(string)}
	if err := storage.DB.Create(&amenity).Error; err != nil {
		utils.InternalServerError(ctx)
		return
	}
	utils.JSONCreated(ctx, amenity.ID, "Amenity was created successfully")
}

func GetAmenity(ctx iris.Context) {
	id := ctx.Params().Get("amenityId")
	if !storage.Exists(&models.Amenity{}, id) {
		utils.NotFound(ctx)
		return
	}

	var amenity models.Amenity
	if err := storage.DB.First(&amenity, id).Error; err != nil {
		utils.InternalServerError(ctx)
		return
	}
	ctx.JSON(amenity)
}

func DeleteAmenity(ctx iris.Context) {
	id := ctx.Params().Get("amenityId")
	if !storage.Exists(&models.Amenity{}, id) {
		utils.NotFound(ctx)
		return
	}

	if err := storage.DB.Delete(&models.Amenity{}, id).Error; err != nil {
		utils.InternalServerError(ctx)
		return
	}
	utils.JSONMsg(ctx, iris.StatusOK, 200, "Amenity was deleted successfully")
}

// GetPlaceAmenities lists the amenities attached to a place.
func GetPlaceAmenities(ctx iris.Context) {
	placeID := ctx.Params().Get("placeId")
	if !storage.Exists(&models.Place{}, placeID) {
		utils.NotFound(ctx)
		return
	}

	var amenities []models.Amenity
	tx := storage.DB.Select("amenities.*").
		Joins("JOIN place_amenities ON place_amenities.amenity_id = amenities.id").
		Where("place_amenities.place_id = ?", placeID)
	res, err := utils.ListStyle(ctx, tx, &amenities)
	if err != nil {
		utils.InternalServerError(ctx)
		return
	}
	ctx.JSON(res)
}

func AddPlaceAmenity(ctx iris.Context) {
	placeID := ctx.Params().Get("placeId")
	amenityID := ctx.Params().Get("amenityId")
	if !storage.Exists(&models.Place{}, placeID) || !storage.Exists(&models.Amenity{}, amenityID) {
		utils.NotFound(ctx)
		return
	}

	var count int64
	storage.DB.Model(&models.PlaceAmenity{}).
		Where("place_id = ? AND amenity_id = ?", placeID, amenityID).Count(&count)
	if count > 0 {
		utils.BadRequest(ctx, "Amenity is already set for the given place")
		return
	}

	pid, _ := parseID(placeID)
	aid, _ := parseID(amenityID)
	link := models.PlaceAmenity{PlaceID: pid, AmenityID: aid}
	if err := storage.DB.Create(&link).Error; err != nil {
		utils.InternalServerError(ctx)
		return
	}
	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{"code": 201, "msg": "Amenity added successfully for the given place"})
}

func RemovePlaceAmenity(ctx iris.Context) {
	placeID := ctx.Params().Get("placeId")
	amenityID := ctx.Params().Get("amenityId")
	if !storage.Exists(&models.Place{}, placeID) || !storage.Exists(&models.Amenity{}, amenityID) {
		utils.NotFound(ctx)
		return
	}

	var count int64
	storage.DB.Model(&models.PlaceAmenity{}).
		Where("place_id = ? AND amenity_id = ?", placeID, amenityID).Count(&count)
	if count == 0 {
		utils.NotFound(ctx)
		return
	}

	if err := storage.DB.
		Where("place_id = ? AND amenity_id = ?", placeID, amenityID).
		Delete(&models.PlaceAmenity{}).Error; err != nil {
		utils.InternalServerError(ctx)
		return
	}
	utils.JSONMsg(ctx, iris.StatusOK, 200, "Amenity deleted successfully for the given place")
}
