package routes

import (
	"strings"

	"github.com/kataras/iris/v12"

	"github.com/roshaneleshaddai/Weekendlyfe/models"
	"github.com/roshaneleshaddai/Weekendlyfe/storage"
	"github.com/roshaneleshaddai/Weekendlyfe/utils"
)

// GetActivities lists the internal catalog with optional category,
// search and budget filters. Results are paginated.
func GetActivities(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	if page < 1 {
		page = 1
	}
	perPage := ctx.URLParamIntDefault("perPage", 20)
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	query := storage.DB.Model(&models.Activity{}).Where("status = ?", "active")

	if category := ctx.URLParam("category"); category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}
	if subcategory := ctx.URLParam("subcategory"); subcategory != "" {
		query = query.Where("subcategory = ?", subcategory)
	}
	if budget := ctx.URLParam("budget"); budget != "" {
		query = query.Where("budget_category = ?", budget)
	}
	if search := ctx.URLParam("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	var activities []models.Activity
	listErr := query.
		Order("rating DESC, title ASC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&activities).Error
	if listErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.JSONPage(ctx, activities, page, perPage, total)
}

func GetActivity(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var activity models.Activity
	if err := storage.DB.First(&activity, id).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	ctx.JSON(&activity)
}

// GetActivityCategories returns distinct categories with counts, used by
// the browse screen's filter chips.
func GetActivityCategories(ctx iris.Context) {
	type categoryCount struct {
		Category string `json:"category"`
		Count    int64  `json:"count"`
	}

	var counts []categoryCount
	err := storage.DB.Model(&models.Activity{}).
		Select("category, COUNT(*) as count").
		Where("status = ?", "active").
		Group("category").
		Order("count DESC").
		Scan(&counts).Error
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(counts)
}

func CreateActivity(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	var input ActivityInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	activity := input.toModel()
	activity.CreatedBy = &userID

	if err := storage.DB.Create(&activity).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(&activity)
}

func UpdateActivity(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)
	id := ctx.Params().Get("id")

	var activity models.Activity
	if err := storage.DB.First(&activity, id).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	if activity.CreatedBy == nil || *activity.CreatedBy != userID {
		utils.CreateError(iris.StatusForbidden, "Forbidden", "Only the creator can modify this activity.", ctx)
		return
	}

	var input ActivityInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	updated := input.toModel()
	updated.ID = activity.ID
	updated.CreatedBy = activity.CreatedBy
	updated.CreatedAt = activity.CreatedAt

	if err := storage.DB.Save(&updated).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(&updated)
}

// DeleteActivity retires a catalog entry rather than removing the row so
// plan items that reference it keep resolving.
func DeleteActivity(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)
	id := ctx.Params().Get("id")

	var activity models.Activity
	if err := storage.DB.First(&activity, id).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	if activity.CreatedBy == nil || *activity.CreatedBy != userID {
		utils.CreateError(iris.StatusForbidden, "Forbidden", "Only the creator can delete this activity.", ctx)
		return
	}

	if err := storage.DB.Model(&activity).Update("status", "inactive").Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"deleted": true})
}

type ActivityInput struct {
	Title            string   `json:"title" validate:"required,max=256"`
	Category         string   `json:"category" validate:"required,max=64"`
	Subcategory      string   `json:"subcategory" validate:"max=64"`
	Description      string   `json:"description"`
	Location         string   `json:"location"`
	Address          string   `json:"address"`
	Lat              float64  `json:"lat"`
	Lng              float64  `json:"lng"`
	DurationMin      int      `json:"durationMin" validate:"omitempty,min=1"`
	BestTime         []string `json:"bestTime"`
	CostEstimateMin  float64  `json:"costEstimateMin"`
	CostEstimateMax  float64  `json:"costEstimateMax"`
	Currency         string   `json:"currency" validate:"omitempty,len=3"`
	BudgetCategory   string   `json:"budgetCategory" validate:"omitempty,oneof=free low medium premium"`
	Icon             string   `json:"icon"`
	Color            string   `json:"color"`
	Images           []string `json:"images"`
	VibeTags         []string `json:"vibeTags"`
	CompanionTypes   []string `json:"companionTypes"`
	RequiresBooking  bool     `json:"requiresBooking"`
	BookingURL       string   `json:"bookingURL"`
	WeatherDependent bool     `json:"weatherDependent"`
}

func (input ActivityInput) toModel() models.Activity {
	durationMin := input.DurationMin
	if durationMin <= 0 {
		durationMin = 60
	}
	icon := input.Icon
	if icon == "" {
		icon = "🎯"
	}
	color := input.Color
	if color == "" {
		color = "#FDE68A"
	}
	currency := input.Currency
	if currency == "" {
		currency = "INR"
	}

	return models.Activity{
		Title:            input.Title,
		Category:         input.Category,
		Subcategory:      input.Subcategory,
		Description:      input.Description,
		Location:         input.Location,
		Address:          input.Address,
		Lat:              input.Lat,
		Lng:              input.Lng,
		DurationMin:      durationMin,
		BestTime:         toJSONArray(input.BestTime),
		CostEstimateMin:  input.CostEstimateMin,
		CostEstimateMax:  input.CostEstimateMax,
		Currency:         currency,
		BudgetCategory:   input.BudgetCategory,
		Icon:             icon,
		Color:            color,
		Images:           toJSONArray(input.Images),
		VibeTags:         toJSONArray(input.VibeTags),
		CompanionTypes:   toJSONArray(input.CompanionTypes),
		RequiresBooking:  input.RequiresBooking,
		BookingURL:       input.BookingURL,
		WeatherDependent: input.WeatherDependent,
		Status:           "active",
	}
}
