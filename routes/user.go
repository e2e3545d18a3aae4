package routes

import (
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/kataras/iris/v12"
	jsonWT "github.com/kataras/iris/v12/middleware/jwt"
	"golang.org/x/crypto/bcrypt"

	"github.com/roshaneleshaddai/Weekendlyfe/models"
	"github.com/roshaneleshaddai/Weekendlyfe/storage"
	"github.com/roshaneleshaddai/Weekendlyfe/utils"
)

func Register(ctx iris.Context) {
	var userInput RegisterUserInput
	err := ctx.ReadJSON(&userInput)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var newUser models.User
	userExists, userExistsErr := getAndHandleUserExists(&newUser, userInput.Email)
	if userExistsErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	if userExists {
		utils.CreateEmailAlreadyRegistered(ctx)
		return
	}

	hashedPassword, hashErr := hashAndSaltPassword(userInput.Password)
	if hashErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	phoneNumber := userInput.PhoneNumber
	if phoneNumber != "" && utils.ValidatePhoneNumber(phoneNumber) {
		phoneNumber = utils.NormalizePhoneNumber(phoneNumber)
	}

	budgetRange := userInput.BudgetRange
	if budgetRange == "" {
		budgetRange = "medium"
	}

	newUser = models.User{
		Name:                userInput.Name,
		Email:               strings.ToLower(userInput.Email),
		Password:            hashedPassword,
		PhoneNumber:         phoneNumber,
		Location:            userInput.Location,
		PreferredActivities: toJSONArray(userInput.PreferredActivities),
		BudgetRange:         budgetRange,
		Companions:          toJSONArray(userInput.Companions),
		PreferredVibe:       toJSONArray(userInput.PreferredVibe),
		DietaryPreferences:  toJSONArray(userInput.DietaryPreferences),
	}

	storage.DB.Create(&newUser)

	returnUser(newUser, ctx)
}

func Login(ctx iris.Context) {
	var userInput LoginUserInput
	err := ctx.ReadJSON(&userInput)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var existingUser models.User
	errorMsg := "Invalid email or password."
	userExists, userExistsErr := getAndHandleUserExists(&existingUser, userInput.Email)
	if userExistsErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	if !userExists {
		utils.CreateError(iris.StatusUnauthorized, "Credentials Error", errorMsg, ctx)
		return
	}

	passwordErr := bcrypt.CompareHashAndPassword([]byte(existingUser.Password), []byte(userInput.Password))
	if passwordErr != nil {
		utils.CreateError(iris.StatusUnauthorized, "Credentials Error", errorMsg, ctx)
		return
	}

	returnUser(existingUser, ctx)
}

func ForgotPassword(ctx iris.Context) {
	var emailInput EmailRegisteredInput
	err := ctx.ReadJSON(&emailInput)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var user models.User
	userExists, userExistsErr := getAndHandleUserExists(&user, emailInput.Email)
	if userExistsErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	if !userExists {
		utils.CreateError(iris.StatusUnauthorized, "Credentials Error", "Invalid email.", ctx)
		return
	}

	token, tokenErr := utils.CreateForgotPasswordToken(user.ID, user.Email)
	if tokenErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	// The token only ever travels by email. Handing it back in the response
	// would let anyone who knows an address reset that account's password.
	link := os.Getenv("PASSWORD_RESET_URL")
	if link == "" {
		link = "http://localhost:3000/resetpassword/"
	}
	link += token

	subject := "Forgot Your Password?"
	html := `
	<p>It looks like you forgot your password.
	If you did, please click the link below to reset it.
	If you did not, disregard this email. Please update your password
	within 10 minutes, otherwise you will have to repeat this
	process. <a href=` + link + `>Click to Reset Password</a>
	</p><br />`

	emailSent, emailSentErr := utils.SendMail(user.Email, subject, html)
	if emailSentErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"emailSent": emailSent})
}

func ResetPassword(ctx iris.Context) {
	var password ResetPasswordInput
	err := ctx.ReadJSON(&password)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	hashedPassword, hashErr := hashAndSaltPassword(password.Password)
	if hashErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	claims := jsonWT.Get(ctx).(*utils.ForgotPasswordToken)

	var user models.User
	storage.DB.Model(&user).Where("id = ?", claims.ID).Update("password", hashedPassword)

	ctx.JSON(iris.Map{
		"passwordReset": true,
	})
}

func GetUserProfile(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	var user models.User
	if err := storage.DB.First(&user, userID).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	ctx.JSON(&user)
}

func UpdateUserProfile(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	var input UpdateProfileInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var user models.User
	if err := storage.DB.First(&user, userID).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.PhoneNumber != nil {
		phoneNumber := *input.PhoneNumber
		if phoneNumber != "" {
			if !utils.ValidatePhoneNumber(phoneNumber) {
				utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid phone number.", ctx)
				return
			}
			phoneNumber = utils.NormalizePhoneNumber(phoneNumber)
		}
		updates["phone_number"] = phoneNumber
	}
	if input.Location != nil {
		updates["location"] = *input.Location
	}
	if input.Bio != nil {
		updates["bio"] = *input.Bio
	}
	if input.BudgetRange != nil {
		updates["budget_range"] = *input.BudgetRange
	}
	if input.PreferredActivities != nil {
		updates["preferred_activities"] = toJSONArray(input.PreferredActivities)
	}
	if input.Companions != nil {
		updates["companions"] = toJSONArray(input.Companions)
	}
	if input.PreferredVibe != nil {
		updates["preferred_vibe"] = toJSONArray(input.PreferredVibe)
	}
	if input.DietaryPreferences != nil {
		updates["dietary_preferences"] = toJSONArray(input.DietaryPreferences)
	}
	if input.AllowsNotifications != nil {
		updates["allows_notifications"] = *input.AllowsNotifications
	}

	if len(updates) > 0 {
		updates["updated_at"] = time.Now()
		if err := storage.DB.Model(&user).Updates(updates).Error; err != nil {
			utils.CreateInternalServerError(ctx)
			return
		}
	}

	storage.DB.First(&user, userID)
	ctx.JSON(&user)
}

func getAndHandleUserExists(user *models.User, email string) (exists bool, err error) {
	userExistsQuery := storage.DB.Where("email = ?", strings.ToLower(email)).Limit(1).Find(&user)

	if userExistsQuery.Error != nil {
		return false, userExistsQuery.Error
	}

	return userExistsQuery.RowsAffected > 0, nil
}

func hashAndSaltPassword(password string) (hashedPassword string, err error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(bytes), nil
}

func toJSONArray(values []string) []byte {
	if values == nil {
		values = []string{}
	}
	encoded, err := json.Marshal(values)
	if err != nil {
		return []byte("[]")
	}
	return encoded
}

func returnUser(user models.User, ctx iris.Context) {
	tokenPair, tokenErr := utils.CreateTokenPair(user.ID)
	if tokenErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"ID":                  user.ID,
		"name":                user.Name,
		"email":               user.Email,
		"phoneNumber":         user.PhoneNumber,
		"location":            user.Location,
		"budgetRange":         user.BudgetRange,
		"allowsNotifications": user.AllowsNotifications,
		"accessToken":         string(tokenPair.AccessToken),
		"refreshToken":        string(tokenPair.RefreshToken),
	})
}

type RegisterUserInput struct {
	Name                string   `json:"name" validate:"required,max=256"`
	Email               string   `json:"email" validate:"required,max=256,email"`
	Password            string   `json:"password" validate:"required,min=8,max=256"`
	PhoneNumber         string   `json:"phoneNumber"`
	Location            string   `json:"location"`
	PreferredActivities []string `json:"preferredActivities"`
	BudgetRange         string   `json:"budgetRange" validate:"omitempty,oneof=low medium premium"`
	Companions          []string `json:"companions"`
	PreferredVibe       []string `json:"preferredVibe"`
	DietaryPreferences  []string `json:"dietaryPreferences"`
}

type LoginUserInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type EmailRegisteredInput struct {
	Email string `json:"email" validate:"required"`
}

type ResetPasswordInput struct {
	Password string `json:"password" validate:"required,min=8,max=256"`
}

type UpdateProfileInput struct {
	Name                *string  `json:"name"`
	PhoneNumber         *string  `json:"phoneNumber"`
	Location            *string  `json:"location"`
	Bio                 *string  `json:"bio"`
	BudgetRange         *string  `json:"budgetRange" validate:"omitempty,oneof=low medium premium"`
	PreferredActivities []string `json:"preferredActivities"`
	Companions          []string `json:"companions"`
	PreferredVibe       []string `json:"preferredVibe"`
	DietaryPreferences  []string `json:"dietaryPreferences"`
	AllowsNotifications *bool    `json:"allowsNotifications"`
}
