package routes

import (
	"hbnb-clone-server/models"
	"hbnb-clone-server/storage"
	"hbnb-clone-server/utils"

	"github.com/kataras/iris/v12"
	"golang.org/x/exp/slices"
)

var userMutableFields = []string{"first_name", "last_name", "is_admin", "password"}

func GetUsers(ctx iris.Context) {
	var users []models.User
	res, err := utils.ListStyle(ctx, storage.DB, &users)
	if err != nil {
		utils.InternalServerError(ctx)
		return
	}
	ctx.JSON(res)
}

func CreateUser(ctx iris.Context) {
	data, ok := readBody(ctx)
	if !ok {
		return
	}

	for _, key := range []string{"email", "first_name", "last_name", "password"} {
		if _, present := data[key]; !present {
			utils.MissingParameters(ctx)
			return
		}
	}

	if !utils.Classify(data["email"], utils.Email) {
		utils.BadRequest(ctx, "email is not valid")
		return
	}
	for _, key := range []string{"first_name", "last_name", "password"} {
		if _, isText := data[key].(string); !isText {
			utils.BadRequest(ctx, key+" is not a string")
			return
		}
	}
	if v, present := data["is_admin"]; present && !utils.Classify(v, utils.Boolean) {
		utils.BadRequest(ctx, "is_admin is not a boolean value")
		return
	}

	var count int64
	storage.DB.Model(&models.User{}).Where("email = ?", data["email"]).Count(&count)
	if count > 0 {
		utils.JSONMsg(ctx, iris.StatusConflict, utils.CodeEmailExists, "Email already exists")
		return
	}

	user := models.User{
		Email:     data["email"].(string),
		FirstName: data["first_name"].(string),
		LastName:  data["last_name"].(string),
	}
	if v, present := data["is_admin"]; present {
		user.IsAdmin = asBool(v)
	}
	if err := user.SetPassword(data["password"].(string)); err != nil {
		utils.InternalServerError(ctx)
		return
	}

	if err := storage.DB.Create(&user).Error; err != nil {
		utils.InternalServerError(ctx)
		return
	}
	utils.JSONCreated(ctx, user.ID, "User was created successfully")
}

func GetUser(ctx iris.Context) {
	id := ctx.Params().Get("userId")
	if !storage.Exists(&models.User{}, id) {
		utils.NotFound(ctx)
		return
	}

	var user models.User
	if err := storage.DB.First(&user, id).Error; err != nil {
		utils.InternalServerError(ctx)
		return
	}
	ctx.JSON(user)
}

func UpdateUser(ctx iris.Context) {
	id := ctx.Params().Get("userId")

	data, ok := readBody(ctx)
	if !ok {
		return
	}

	if _, present := data["email"]; present {
		utils.JSONMsg(ctx, iris.StatusForbidden, 403, "Email cannot be changed")
		return
	}
	for _, key := range []string{"first_name", "last_name", "password"} {
		if v, present := data[key]; present {
			if _, isText := v.(string); !isText {
				utils.BadRequest(ctx, key+" is not a string")
				return
			}
		}
	}
	if v, present := data["is_admin"]; present && !utils.Classify(v, utils.Boolean) {
		utils.BadRequest(ctx, "is_admin is not a boolean value")
		return
	}

	if !storage.Exists(&models.User{}, id) {
		utils.NotFound(ctx)
		return
	}

	var user models.User
	if err := storage.DB.First(&user, id).Error; err != nil {
		utils.InternalServerError(ctx)
		return
	}

	for key, value := range data {
		if !slices.Contains(userMutableFields, key) {
			continue
		}
		switch key {
		case "first_name":
			user.FirstName = value.(string)
		case "last_name":
			user.LastName = value.(string)
		case "is_admin":
			user.IsAdmin = asBool(value)
		case "password":
			if err := user.SetPassword(value.(string)); err != nil {
				utils.InternalServerError(ctx)
				return
			}
		}
	}

	if err := storage.DB.Save(&user).Error; err != nil {
		utils.InternalServerError(ctx)
		return
	}
	utils.JSONMsg(ctx, iris.StatusOK, 200, "User was updated successfully")
}

func DeleteUser(ctx iris.Context) {
	id := ctx.Params().Get("userId")
	if !storage.Exists(&models.User{}, id) {
		utils.NotFound(ctx)
		return
	}

	if err := storage.DB.Delete(&models.User{}, id).Error; err != nil {
		utils.InternalServerError(ctx)
		return
	}
	utils.JSONMsg(ctx, iris.StatusOK, 200, "User account was deleted")
}
