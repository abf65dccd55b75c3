package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"hbnb-clone-server/models"
	"hbnb-clone-server/storage"

	"github.com/glebarez/sqlite"
	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

// newTestApp wires the resource routes against a fresh in-memory database.
func newTestApp(t *testing.T) *iris.Application {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("test db handle: %v", err)
	}
	// One connection so every query sees the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.State{},
		&models.City{},
		&models.User{},
		&models.Amenity{},
		&models.Place{},
		&models.PlaceAmenity{},
		&models.PlaceBook{},
		&models.Review{},
		&models.ReviewUser{},
		&models.ReviewPlace{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	storage.DB = db

	app := iris.New()
	app.Validator = validator.New()

	app.OnErrorCode(iris.StatusNotFound, func(ctx iris.Context) {
		ctx.JSON(iris.Map{"code": 404, "msg": "not found"})
	})

	states := app.Party("/states")
	{
		states.Get("/", GetStates)
		states.Post("/", CreateState)
		states.Get("/{stateId}", GetState)
		states.Delete("/{stateId}", DeleteState)
		states.Get("/{stateId}/cities", GetCities)
		states.Post("/{stateId}/cities", CreateCity)
		states.Get("/{stateId}/cities/{cityId}", GetCity)
		states.Delete("/{stateId}/cities/{cityId}", DeleteCity)
		states.Get("/{stateId}/cities/{cityId}/places", GetCityPlaces)
		states.Post("/{stateId}/cities/{cityId}/places", CreateCityPlace)
	}

	users := app.Party("/users")
	{
		users.Get("/", GetUsers)
		users.Post("/", CreateUser)
		users.Get("/{userId}", GetUser)
		users.Put("/{userId}", UpdateUser)
		users.Delete("/{userId}", DeleteUser)
		users.Get("/{userId}/reviews", GetUserReviews)
		users.Post("/{userId}/reviews", CreateUserReview)
		users.Get("/{userId}/reviews/{reviewId}", GetUserReview)
		users.Delete("/{userId}/reviews/{reviewId}", DeleteUserReview)
	}

	amenities := app.Party("/amenities")
	{
		amenities.Get("/", GetAmenities)
		amenities.Post("/", CreateAmenity)
		amenities.Get("/{amenityId}", GetAmenity)
		amenities.Delete("/{amenityId}", DeleteAmenity)
	}

	places := app.Party("/places")
	{
		places.Get("/", GetPlaces)
		places.Post("/", CreatePlace)
		places.Get("/search", SearchPlaces)
		places.Get("/{placeId}", GetPlace)
		places.Put("/{placeId}", UpdatePlace)
		places.Delete("/{placeId}", DeletePlace)
		places.Get("/{placeId}/amenities", GetPlaceAmenities)
		places.Post("/{placeId}/amenities/{amenityId}", AddPlaceAmenity)
		places.Delete("/{placeId}/amenities/{amenityId}", RemovePlaceAmenity)
		places.Get("/{placeId}/books", GetPlaceBookings)
		places.Post("/{placeId}/books", CreatePlaceBooking)
		places.Get("/{placeId}/books/{bookId}", GetPlaceBooking)
		places.Put("/{placeId}/books/{bookId}", UpdatePlaceBooking)
		places.Delete("/{placeId}/books/{bookId}", DeletePlaceBooking)
		places.Get("/{placeId}/reviews", GetPlaceReviews)
		places.Post("/{placeId}/reviews", CreatePlaceReview)
		places.Get("/{placeId}/reviews/{reviewId}", GetPlaceReview)
		places.Delete("/{placeId}/reviews/{reviewId}", DeletePlaceReview)
	}

	if err := app.Build(); err != nil {
		t.Fatalf("build test app: %v", err)
	}
	return app
}

func do(t *testing.T, app *iris.Application, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)

	decoded := map[string]interface{}{}
	json.Unmarshal(resp.Body.Bytes(), &decoded)
	return resp, decoded
}

// seedPlace creates the rows a booking needs: a state, a city, an owner, a
// guest and one place. Returns the place and guest IDs.
func seedPlace(t *testing.T) (uint, uint) {
	t.Helper()

	state := models.State{Name: "Oregon"}
	if err := storage.DB.Create(&state).Error; err != nil {
		t.Fatalf("seed state: %v", err)
	}
	city := models.City{Name: "Portland", StateID: state.ID}
	if err := storage.DB.Create(&city).Error; err != nil {
		t.Fatalf("seed city: %v", err)
	}

	owner := models.User{Email: "owner@example.com", FirstName: "Olive", LastName: "Owner", Password: "x"}
	guest := models.User{Email: "guest@example.com", FirstName: "Gus", LastName: "Guest", Password: "x"}
	if err := storage.DB.Create(&owner).Error; err != nil {
		t.Fatalf("seed owner: %v", err)
	}
	if err := storage.DB.Create(&guest).Error; err != nil {
		t.Fatalf("seed guest: %v", err)
	}

	place := models.Place{OwnerID: owner.ID, CityID: city.ID, Name: "Cozy cabin", PriceByNight: 90, MaxGuest: 4}
	if err := storage.DB.Create(&place).Error; err != nil {
		t.Fatalf("seed place: %v", err)
	}
	return place.ID, guest.ID
}

func wantStatus(t *testing.T, resp *httptest.ResponseRecorder, want int) {
	t.Helper()
	if resp.Code != want {
		t.Fatalf("status = %d, want %d (body: %s)", resp.Code, want, resp.Body.String())
	}
}

func wantCode(t *testing.T, body map[string]interface{}, want float64) {
	t.Helper()
	if body["code"] != want {
		t.Fatalf("body code = %v, want %v (body: %v)", body["code"], want, body)
	}
}
