package routes

import (
	"encoding/json"

	"hbnb-clone-server/models"
	"hbnb-clone-server/storage"
	"hbnb-clone-server/utils"

	"github.com/kataras/iris/v12"
	"golang.org/x/exp/slices"
	"gorm.io/gorm/clause"
)

var placeImmutableFields = []string{"owner_id", "city_id"}

var placeIntFields = []string{"number_rooms", "number_bathrooms", "max_guest", "price_by_night"}

var placeFloatFields = []string{"latitude", "longitude"}

func GetPlaces(ctx iris.Context) {
	var places []models.Place
	res, err := utils.ListStyle(ctx, storage.DB, &places)
	if err != nil {
		utils.InternalServerError(ctx)
		return
	}
	ctx.JSON(res)
}

// checkPlaceBody validates the typed optional fields shared by the create
// and update paths. Returns false after writing the error response.
func checkPlaceBody(ctx iris.Context, data map[string]interface{}) bool {
	if v, present := data["description"]; present {
		if _, isText := v.(string); !isText {
			utils.BadRequest(ctx, "description is not a string")
			return false
		}
	}
	for _, key := range placeIntFields {
		if v, present := data[key]; present && !utils.Classify(v, utils.Integer) {
			utils.BadRequest(ctx, key+" is not an integer")
			return false
		}
	}
	for _, key := range placeFloatFields {
		if v, present := data[key]; present && !utils.Classify(v, utils.Float) {
			utils.BadRequest(ctx, key+" is not a float")
			return false
		}
	}
	if v, present := data["images"]; present {
		if _, isList := v.([]interface{}); !isList {
			utils.BadRequest(ctx, "images is not a list")
			return false
		}
	}
	return true
}

func applyPlaceFields(place *models.Place, data map[string]interface{}) {
	if v, present := data["name"]; present {
		place.Name = v.(string)
	}
	if v, present := data["description"]; present {
		place.Description = v.(string)
	}
	if v, present := data["number_rooms"]; present {
		place.NumberRooms = asInt(v)
	}
	if v, present := data["number_bathrooms"]; present {
		place.NumberBathrooms = asInt(v)
	}
	if v, present := data["max_guest"]; present {
		place.MaxGuest = asInt(v)
	}
	if v, present := data["price_by_night"]; present {
		place.PriceByNight = asInt(v)
	}
	if v, present := data["latitude"]; present {
		place.Latitude = asFloat(v)
	}
	if v, present := data["longitude"]; present {
		place.Longitude = asFloat(v)
	}
	if v, present := data["images"]; present {
		raw, err := json.Marshal(v)
		if err == nil {
			place.Images = raw
		}
	}
}

// createPlace holds the shared body of POST /places and the city-scoped
// POST /states/{stateId}/cities/{cityId}/places. cityID overrides the body
// when the route carries one.
func createPlace(ctx iris.Context, cityID string) {
	data, ok := readBody(ctx)
	if !ok {
		return
	}
	if cityID != "" {
		data["city_id"] = float64(mustID(cityID))
	}

	for _, key := range []string{"owner_id", "name", "city_id"} {
		if _, present := data[key]; !present {
			utils.BadRequest(ctx, key+" is missing")
			return
		}
	}

	if !utils.Classify(data["owner_id"], utils.Integer) {
		utils.BadRequest(ctx, "owner_id is not an integer")
		return
	}
	if _, isText := data["name"].(string); !isText {
		utils.BadRequest(ctx, "name is not a string")
		return
	}
	if !utils.Classify(data["city_id"], utils.Integer) {
		utils.BadRequest(ctx, "city_id is not an integer")
		return
	}
	if !checkPlaceBody(ctx, data) {
		return
	}

	if !storage.ExistsID(&models.City{}, uint(asInt(data["city_id"]))) {
		utils.NotFound(ctx)
		return
	}
	if !storage.ExistsID(&models.User{}, uint(asInt(data["owner_id"]))) {
		utils.NotFound(ctx)
		return
	}

	place := models.Place{
		OwnerID: uint(asInt(data["owner_id"])),
		CityID:  uint(asInt(data["city_id"])),
		Name:    data["name"].(string),
	}
	applyPlaceFields(&place, data)

	if err := storage.DB.Create(&place).Error; err != nil {
		utils.InternalServerError(ctx)
		return
	}
	utils.JSONCreated(ctx, place.ID, "Place was created successfully")
}

func mustID(raw string) uint {
	id, _ := parseID(raw)
	return id
}

func CreatePlace(ctx iris.Context) {
	createPlace(ctx, "")
}

func GetPlace(ctx iris.Context) {
	id := ctx.Params().Get("placeId")
	if !storage.Exists(&models.Place{}, id) {
		utils.NotFound(ctx)
		return
	}

	var place models.Place
	if err := storage.DB.Preload(clause.Associations).First(&place, id).Error; err != nil {
		utils.InternalServerError(ctx)
		return
	}
	ctx.JSON(place)
}

func UpdatePlace(ctx iris.Context) {
	id := ctx.Params().Get("placeId")

	data, ok := readBody(ctx)
	if !ok {
		return
	}

	for key := range data {
		if slices.Contains(placeImmutableFields, key) {
			utils.JSONMsg(ctx, iris.StatusForbidden, 403, key+" cannot be changed")
			return
		}
	}
	if v, present := data["name"]; present {
		if _, isText := v.(string); !isText {
			utils.BadRequest(ctx, "name is not a string")
			return
		}
	}
	if !checkPlaceBody(ctx, data) {
		return
	}

	if !storage.Exists(&models.Place{}, id) {
		utils.NotFound(ctx)
		return
	}

	var place models.Place
	if err := storage.DB.First(&place, id).Error; err != nil {
		utils.InternalServerError(ctx)
		return
	}

	applyPlaceFields(&place, data)

	if err := storage.DB.Save(&place).Error; err != nil {
		utils.InternalServerError(ctx)
		return
	}
	utils.JSONMsg(ctx, iris.StatusOK, 200, "Place was updated successfully")
}

func DeletePlace(ctx iris.Context) {
	id := ctx.Params().Get("placeId")
	if !storage.Exists(&models.Place{}, id) {
		utils.NotFound(ctx)
		return
	}

	if err := storage.DB.Delete(&models.Place{}, id).Error; err != nil {
		utils.InternalServerError(ctx)
		return
	}
	utils.JSONMsg(ctx, iris.StatusOK, 200, "Place was deleted successfully")
}

// GetCityPlaces lists the places of a city under its state route.
func GetCityPlaces(ctx iris.Context) {
	stateID := ctx.Params().Get("stateId")
	cityID := ctx.Params().Get("cityId")
	if !storage.Exists(&models.State{}, stateID) || !storage.Exists(&models.City{}, cityID) {
		utils.NotFound(ctx)
		return
	}

	var places []models.Place
	res, err := utils.ListStyle(ctx, storage.DB.Where("city_id = ?", cityID), &places)
	if err != nil {
		utils.InternalServerError(ctx)
		return
	}
	ctx.JSON(res)
}

// CreateCityPlace creates a place under its city route; the body's city_id,
// if any, is ignored in favor of the path.
func CreateCityPlace(ctx iris.Context) {
	stateID := ctx.Params().Get("stateId")
	cityID := ctx.Params().Get("cityId")
	if !storage.Exists(&models.State{}, stateID) || !storage.Exists(&models.City{}, cityID) {
		utils.NotFound(ctx)
		return
	}
	createPlace(ctx, cityID)
}

// SearchPlacesInput is validated by the app-level validator before the
// query runs.
type SearchPlacesInput struct {
	CityID    uint `url:"city_id" validate:"omitempty,min=1"`
	MaxPrice  int  `url:"max_price" validate:"omitempty,min=0"`
	MinGuests int  `url:"min_guests" validate:"omitempty,min=0"`
}

func SearchPlaces(ctx iris.Context) {
	var input SearchPlacesInput
	if err := ctx.ReadQuery(&input); err != nil {
		utils.BadRequest(ctx, "invalid search parameters")
		return
	}

	tx := storage.DB.Model(&models.Place{})
	if input.CityID != 0 {
		tx = tx.Where("city_id = ?", input.CityID)
	}
	if input.MaxPrice > 0 {
		tx = tx.Where("price_by_night <= ?", input.MaxPrice)
	}
	if input.MinGuests > 0 {
		tx = tx.Where("max_guest >= ?", input.MinGuests)
	}

	var places []models.Place
	res, err := utils.ListStyle(ctx, tx, &places)
	if err != nil {
		utils.InternalServerError(ctx)
		return
	}
	ctx.JSON(res)
}
