package routes

import (
	"hbnb-clone-server/models"
	"hbnb-clone-server/storage"
	"hbnb-clone-server/utils"

	"github.com/kataras/iris/v12"
)

// checkReviewBody validates the shared review creation body: user_id is the
// author, message the text, stars optional.
func checkReviewBody(ctx iris.Context, data map[string]interface{}) bool {
	if _, present := data["user_id"]; !present {
		utils.MissingParameters(ctx)
		return false
	}
	if _, present := data["message"]; !present {
		utils.MissingParameters(ctx)
		return false
	}

	if !utils.Classify(data["user_id"], utils.Integer) {
		utils.BadRequest(ctx, "user_id is invalid")
		return false
	}
	if _, isText := data["message"].(string); !isText {
		utils.BadRequest(ctx, "message is invalid")
		return false
	}
	if v, present := data["stars"]; present && !utils.Classify(v, utils.Integer) {
		utils.BadRequest(ctx, "stars is invalid")
		return false
	}
	return true
}

func buildReview(data map[string]interface{}) models.Review {
	review := models.Review{
		UserID:  uint(asInt(data["user_id"])),
		Message: data["message"].(string),
	}
	if v, present := data["stars"]; present {
		review.Stars = asInt(v)
	}
	return review
}

func GetUserReviews(ctx iris.Context) {
	userID := ctx.Params().Get("userId")
	if !storage.Exists(&models.User{}, userID) {
		utils.NotFound(ctx)
		return
	}

	uid := mustID(userID)
	var reviews []models.Review
	tx := storage.DB.Select("reviews.*").
		Joins("JOIN review_users ON review_users.review_id = reviews.id").
		Where("review_users.user_id = ?", uid)
	res, err := utils.ListStyle(ctx, tx, &reviews)
	if err != nil {
		utils.InternalServerError(ctx)
		return
	}
	for i := range reviews {
		reviews[i].ToUserID = &uid
	}
	ctx.JSON(res)
}

func CreateUserReview(ctx iris.Context) {
	userID := ctx.Params().Get("userId")

	data, ok := readBody(ctx)
	if !ok {
		return
	}
	if !checkReviewBody(ctx, data) {
		return
	}

	if !storage.Exists(&models.User{}, userID) {
		utils.NotFound(ctx)
		return
	}
	if !storage.ExistsID(&models.User{}, uint(asInt(data["user_id"]))) {
		utils.NotFound(ctx)
		return
	}

	review := buildReview(data)
	if err := storage.DB.Create(&review).Error; err != nil {
		utils.InternalServerError(ctx)
		return
	}
	link := models.ReviewUser{UserID: mustID(userID), ReviewID: review.ID}
	if err := storage.DB.Create(&link).Error; err != nil {
		utils.InternalServerError(ctx)
		return
	}
	utils.JSONCreated(ctx, review.ID, "Review saved successfully")
}

// findUserReview resolves a review through its ReviewUser link, 404ing on
// the user, the review, or a mismatched combination.
func findUserReview(ctx iris.Context) (*models.Review, bool) {
	userID := ctx.Params().Get("userId")
	reviewID := ctx.Params().Get("reviewId")

	if !storage.Exists(&models.User{}, userID) {
		utils.NotFound(ctx)
		return nil, false
	}
	if !storage.Exists(&models.Review{}, reviewID) {
		utils.NotFound(ctx)
		return nil, false
	}

	var link models.ReviewUser
	if err := storage.DB.
		Where("user_id = ? AND review_id = ?", userID, reviewID).
		First(&link).Error; err != nil {
		utils.NotFound(ctx)
		return nil, false
	}

	var review models.Review
	if err := storage.DB.First(&review, reviewID).Error; err != nil {
		utils.NotFound(ctx)
		return nil, false
	}
	review.ToUserID = &link.UserID
	return &review, true
}

func GetUserReview(ctx iris.Context) {
	review, ok := findUserReview(ctx)
	if !ok {
		return
	}
	ctx.JSON(review)
}

func DeleteUserReview(ctx iris.Context) {
	review, ok := findUserReview(ctx)
	if !ok {
		return
	}

	storage.DB.Where("review_id = ?", review.ID).Delete(&models.ReviewUser{})
	if err := storage.DB.Delete(&models.Review{}, review.ID).Error; err != nil {
		utils.InternalServerError(ctx)
		return
	}
	utils.JSONMsg(ctx, iris.StatusOK, 200, "Review was deleted successfully")
}

func GetPlaceReviews(ctx iris.Context) {
	placeID := ctx.Params().Get("placeId")
	if !storage.Exists(&models.Place{}, placeID) {
		utils.NotFound(ctx)
		return
	}

	pid := mustID(placeID)
	var reviews []models.Review
	tx := storage.DB.Select("reviews.*").
		Joins("JOIN review_places ON review_places.review_id = reviews.id").
		Where("review_places.place_id = ?", pid)
	res, err := utils.ListStyle(ctx, tx, &reviews)
	if err != nil {
		utils.InternalServerError(ctx)
		return
	}
	for i := range reviews {
		reviews[i].ToPlaceID = &pid
	}
	ctx.JSON(res)
}

func CreatePlaceReview(ctx iris.Context) {
	placeID := ctx.Params().Get("placeId")

	data, ok := readBody(ctx)
	if !ok {
		return
	}
	if !checkReviewBody(ctx, data) {
		return
	}

	if !storage.Exists(&models.Place{}, placeID) {
		utils.NotFound(ctx)
		return
	}
	if !storage.ExistsID(&models.User{}, uint(asInt(data["user_id"]))) {
		utils.NotFound(ctx)
		return
	}

	review := buildReview(data)
	if err := storage.DB.Create(&review).Error; err != nil {
		utils.InternalServerError(ctx)
		return
	}
	link := models.ReviewPlace{PlaceID: mustID(placeID), ReviewID: review.ID}
	if err := storage.DB.Create(&link).Error; err != nil {
		utils.InternalServerError(ctx)
		return
	}
	utils.JSONCreated(ctx, review.ID, "Review saved successfully")
}

func findPlaceReview(ctx iris.Context) (*models.Review, bool) {
	placeID := ctx.Params().Get("placeId")
	reviewID := ctx.Params().Get("reviewId")

	if !storage.Exists(&models.Place{}, placeID) {
		utils.NotFound(ctx)
		return nil, false
	}
	if !storage.Exists(&models.Review{}, reviewID) {
		utils.NotFound(ctx)
		return nil, false
	}

	var link models.ReviewPlace
	if err := storage.DB.
		Where("place_id = ? AND review_id = ?", placeID, reviewID).
		First(&link).Error; err != nil {
		utils.NotFound(ctx)
		return nil, false
	}

	var review models.Review
	if err := storage.DB.First(&review, reviewID).Error; err != nil {
		utils.NotFound(ctx)
		return nil, false
	}
	review.ToPlaceID = &link.PlaceID
	return &review, true
}

func GetPlaceReview(ctx iris.Context) {
	review, ok := findPlaceReview(ctx)
	if !ok {
		return
	}
	ctx.JSON(review)
}

func DeletePlaceReview(ctx iris.Context) {
	review, ok := findPlaceReview(ctx)
	if !ok {
		return
	}

	storage.DB.Where("review_id = ?", review.ID).Delete(&models.ReviewPlace{})
	if err := storage.DB.Delete(&models.Review{}, review.ID).Error; err != nil {
		utils.InternalServerError(ctx)
		return
	}
	utils.JSONMsg(ctx, iris.StatusOK, 200, "Review was deleted successfully")
}
