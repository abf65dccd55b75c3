package main

import (
	"log"
	"os"
	"time"

	"hbnb-clone-server/routes"
	"hbnb-clone-server/storage"
	"hbnb-clone-server/utils"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
)

func main() {
	godotenv.Load()
	storage.InitializeDB()
	storage.InitializeRedis()

	app := newApp()

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	addr := "0.0.0.0:" + port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// newApp wires the full route surface. Split from main so the route tests
// can run the same app against a test database.
func newApp() *iris.Application {
	app := iris.New()
	app.Validator = validator.New()

	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Headers", "Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	app.Use(iris.Compression)
	app.Use(utils.RateLimit(300, time.Minute))

	app.OnErrorCode(iris.StatusNotFound, func(ctx iris.Context) {
		ctx.JSON(iris.Map{"code": 404, "msg": "not found"})
	})
	app.OnErrorCode(iris.StatusInternalServerError, func(ctx iris.Context) {
		ctx.JSON(iris.Map{"code": 500, "msg": "server error"})
	})

	app.Get("/", routes.Index)

	states := app.Party("/states")
	{
		states.Get("/", routes.GetStates)
		states.Post("/", routes.CreateState)
		states.Get("/{stateId}", routes.GetState)
		states.Delete("/{stateId}", routes.DeleteState)

		states.Get("/{stateId}/cities", routes.GetCities)
		states.Post("/{stateId}/cities", routes.CreateCity)
		states.Get("/{stateId}/cities/{cityId}", routes.GetCity)
		states.Delete("/{stateId}/cities/{cityId}", routes.DeleteCity)

		states.Get("/{stateId}/cities/{cityId}/places", routes.GetCityPlaces)
		states.Post("/{stateId}/cities/{cityId}/places", routes.CreateCityPlace)
	}

	users := app.Party("/users")
	{
		users.Get("/", routes.GetUsers)
		users.Post("/", routes.CreateUser)
		users.Get("/{userId}", routes.GetUser)
		users.Put("/{userId}", routes.UpdateUser)
		users.Delete("/{userId}", routes.DeleteUser)

		users.Get("/{userId}/reviews", routes.GetUserReviews)
		users.Post("/{userId}/reviews", routes.CreateUserReview)
		users.Get("/{userId}/reviews/{reviewId}", routes.GetUserReview)
		users.Delete("/{userId}/reviews/{reviewId}", routes.DeleteUserReview)
	}

	amenities := app.Party("/amenities")
	{
		amenities.Get("/", routes.GetAmenities)
		amenities.Post("/", routes.CreateAmenity)
		amenities.Get("/{amenityId}", routes.GetAmenity)
		amenities.Delete("/{amenityId}", routes.DeleteAmenity)
	}

	places := app.Party("/places")
	{
		places.Get("/", routes.GetPlaces)
		places.Post("/", routes.CreatePlace)
		places.Get("/search", routes.SearchPlaces)
		places.Get("/{placeId}", routes.GetPlace)
		places.Put("/{placeId}", routes.UpdatePlace)
		places.Delete("/{placeId}", routes.DeletePlace)

		places.Get("/{placeId}/amenities", routes.GetPlaceAmenities)
		places.Post("/{placeId}/amenities/{amenityId}", routes.AddPlaceAmenity)
		places.Delete("/{placeId}/amenities/{amenityId}", routes.RemovePlaceAmenity)

		places.Get("/{placeId}/books", routes.GetPlaceBookings)
		places.Post("/{placeId}/books", routes.CreatePlaceBooking)
		places.Get("/{placeId}/books/{bookId}", routes.GetPlaceBooking)
		places.Put("/{placeId}/books/{bookId}", routes.UpdatePlaceBooking)
		places.Delete("/{placeId}/books/{bookId}", routes.DeletePlaceBooking)

		places.Get("/{placeId}/reviews", routes.GetPlaceReviews)
		places.Post("/{placeId}/reviews", routes.CreatePlaceReview)
		places.Get("/{placeId}/reviews/{reviewId}", routes.GetPlaceReview)
		places.Delete("/{placeId}/reviews/{reviewId}", routes.DeletePlaceReview)
	}

	return app
}
