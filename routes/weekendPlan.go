package routes

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kataras/iris/v12"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"

	"github.com/roshaneleshaddai/Weekendlyfe/models"
	"github.com/roshaneleshaddai/Weekendlyfe/services"
	"github.com/roshaneleshaddai/Weekendlyfe/storage"
	"github.com/roshaneleshaddai/Weekendlyfe/utils"
)

// weekendSaturday returns the Saturday keying the weekend that now belongs
// to: the upcoming Saturday during the week, Saturday itself on Saturday,
// and the previous day on Sunday so an in-progress weekend stays current.
func weekendSaturday(now time.Time) time.Time {
	day := now.UTC()
	date := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	switch date.Weekday() {
	case time.Saturday:
		return date
	case time.Sunday:
		return date.AddDate(0, 0, -1)
	default:
		return date.AddDate(0, 0, int(time.Saturday-date.Weekday()))
	}
}

func planResponse(plan *models.WeekendPlan) iris.Map {
	local := services.ToLocal(plan)

	return iris.Map{
		"ID":                   plan.ID,
		"title":                plan.Title,
		"description":          plan.Description,
		"weekendDate":          plan.WeekendDate.Format("2006-01-02"),
		"status":               plan.Status,
		"plan":                 local,
		"tags":                 plan.TagList(),
		"totalActualCost":      plan.TotalActualCost,
		"overallRating":        plan.OverallRating,
		"overallReview":        plan.OverallReview,
		"completedAt":          plan.CompletedAt,
		"completionPercentage": plan.CompletionPercentage(),
		"totalDurationMin":     plan.TotalDuration(),
		"createdAt":            plan.CreatedAt,
		"updatedAt":            plan.UpdatedAt,
	}
}

// reconcilePlans runs the stale-plan sweep over a batch of plans loaded for
// display and persists any that flipped to completed.
func reconcilePlans(plans []models.WeekendPlan, now time.Time) {
	for i := range plans {
		if services.ReconcileOnRead(&plans[i], now) {
			storage.DB.Model(&plans[i]).Updates(map[string]interface{}{
				"status":       plans[i].Status,
				"completed_at": plans[i].CompletedAt,
			})
		}
	}
}

// GetCurrentWeekendPlan returns the live plan for the current weekend,
// creating an empty draft when the user has none yet.
func GetCurrentWeekendPlan(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)
	saturday := weekendSaturday(time.Now())

	var plan models.WeekendPlan
	query := storage.DB.
		Where("user_id = ? AND weekend_date = ? AND status IN ?", userID, saturday, models.NonTerminalStatuses).
		Limit(1).
		Find(&plan)
	if query.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	if query.RowsAffected > 0 {
		if services.ReconcileOnRead(&plan, time.Now()) {
			storage.DB.Model(&plan).Updates(map[string]interface{}{
				"status":       plan.Status,
				"completed_at": plan.CompletedAt,
			})
		}
	}

	if query.RowsAffected == 0 {
		plan = models.WeekendPlan{
			UserID:      userID,
			Title:       "My Weekend Plan",
			WeekendDate: saturday,
			Status:      models.PlanStatusDraft,
		}
		if err := storage.DB.Create(&plan).Error; err != nil {
			// Lost a race against a concurrent create for the same weekend.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				storage.DB.
					Where("user_id = ? AND weekend_date = ? AND status IN ?", userID, saturday, models.NonTerminalStatuses).
					First(&plan)
			} else {
				utils.CreateInternalServerError(ctx)
				return
			}
		}
	}

	ctx.JSON(planResponse(&plan))
}

// GetUserWeekendPlans lists the user's plans newest weekend first. Plans for
// past weekends that were never closed out are auto-completed on the way out.
func GetUserWeekendPlans(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	page := ctx.URLParamIntDefault("page", 1)
	if page < 1 {
		page = 1
	}
	perPage := ctx.URLParamIntDefault("perPage", 10)
	if perPage < 1 || perPage > 50 {
		perPage = 10
	}

	query := storage.DB.Model(&models.WeekendPlan{}).Where("user_id = ?", userID)

	if status := ctx.URLParam("status"); status != "" {
		if !services.ValidStatus(status) {
			utils.CreateError(iris.StatusBadRequest, "Validation Error", fmt.Sprintf("Unknown status %q.", status), ctx)
			return
		}
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	var plans []models.WeekendPlan
	listErr := query.
		Order("weekend_date DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&plans).Error
	if listErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	reconcilePlans(plans, time.Now())

	responses := make([]iris.Map, 0, len(plans))
	for i := range plans {
		responses = append(responses, planResponse(&plans[i]))
	}

	utils.JSONPage(ctx, responses, page, perPage, total)
}

func GetWeekendPlan(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)
	id := ctx.Params().Get("id")

	var plan models.WeekendPlan
	if err := storage.DB.Where("user_id = ?", userID).First(&plan, id).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	if services.ReconcileOnRead(&plan, time.Now()) {
		storage.DB.Model(&plan).Updates(map[string]interface{}{
			"status":       plan.Status,
			"completed_at": plan.CompletedAt,
		})
	}

	ctx.JSON(planResponse(&plan))
}

type SavePlanInput struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	WeekendDate string             `json:"weekendDate"`
	Tags        []string           `json:"tags"`
	Plan        services.LocalPlan `json:"plan"`
}

// SaveWeekendPlan is the merge-save endpoint: the client sends its full
// local plan and the server replaces both day lists wholesale. Placements
// are normalized and conflict-checked before anything touches the database,
// so a conflicting plan is rejected with the offending pairs and no partial
// write.
func SaveWeekendPlan(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	var input SavePlanInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	saturday, sunday, convErr := services.ToPersisted(input.Plan)
	if convErr != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", convErr.Error(), ctx)
		return
	}

	if conflicts := services.ValidatePlan(saturday, sunday); len(conflicts) > 0 {
		ctx.StatusCode(iris.StatusConflict)
		ctx.JSON(iris.Map{
			"error":     "Schedule Conflict",
			"message":   "Some activities overlap in time.",
			"conflicts": conflicts,
		})
		return
	}

	weekendDate := weekendSaturday(time.Now())
	if input.WeekendDate != "" {
		parsed, parseErr := time.Parse("2006-01-02", input.WeekendDate)
		if parseErr != nil {
			utils.CreateError(iris.StatusBadRequest, "Validation Error", "weekendDate must be YYYY-MM-DD.", ctx)
			return
		}
		weekendDate = parsed
	}

	var plan models.WeekendPlan
	findQuery := storage.DB.
		Where("user_id = ? AND weekend_date = ? AND status IN ?", userID, weekendDate, models.NonTerminalStatuses).
		Limit(1).
		Find(&plan)
	if findQuery.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	if findQuery.RowsAffected == 0 {
		plan = models.WeekendPlan{
			UserID:      userID,
			WeekendDate: weekendDate,
			Status:      models.PlanStatusDraft,
		}
	}

	if input.Title != "" {
		plan.Title = input.Title
	}
	if plan.Title == "" {
		plan.Title = "My Weekend Plan"
	}
	plan.Description = input.Description

	if err := plan.SetDayItems(models.DaySaturday, saturday); err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if err := plan.SetDayItems(models.DaySunday, sunday); err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	tags := toJSONArray(input.Tags)
	plan.Tags = tags

	if plan.Status == models.PlanStatusDraft && len(saturday)+len(sunday) > 0 {
		plan.Status = models.PlanStatusPlanning
	}

	saveErr := storage.DB.Save(&plan).Error
	if errors.Is(saveErr, gorm.ErrDuplicatedKey) {
		// A live plan for this weekend appeared between the lookup and the
		// insert; fold this save into it.
		var existing models.WeekendPlan
		refetch := storage.DB.
			Where("user_id = ? AND weekend_date = ? AND status IN ?", userID, weekendDate, models.NonTerminalStatuses).
			First(&existing)
		if refetch.Error != nil {
			utils.CreateInternalServerError(ctx)
			return
		}
		plan.ID = existing.ID
		plan.CreatedAt = existing.CreatedAt
		saveErr = storage.DB.Save(&plan).Error
	}
	if saveErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(planResponse(&plan))
}

type UpdateStatusInput struct {
	Status string `json:"status" validate:"required"`
}

func UpdatePlanStatus(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)
	id := ctx.Params().Get("id")

	var input UpdateStatusInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if !services.ValidStatus(input.Status) {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", fmt.Sprintf("Unknown status %q.", input.Status), ctx)
		return
	}

	var plan models.WeekendPlan
	if err := storage.DB.Where("user_id = ?", userID).First(&plan, id).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	services.ApplyStatus(&plan, input.Status, time.Now())

	if err := storage.DB.Save(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.CreateError(iris.StatusConflict, "Conflict", "Another live plan already exists for that weekend.", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(planResponse(&plan))
}

type CompletePlanInput struct {
	OverallRating *int                  `json:"overallRating" validate:"omitempty,min=1,max=5"`
	OverallReview string                `json:"overallReview"`
	Reviews       []services.ItemReview `json:"reviews" validate:"dive"`
}

// CompleteWeekendPlan closes a plan out: per-item reviews and actual costs
// are folded into the stored placements, the cost total is recomputed, and
// the plan moves to its terminal completed state.
func CompleteWeekendPlan(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)
	id := ctx.Params().Get("id")

	var input CompletePlanInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var plan models.WeekendPlan
	if err := storage.DB.Where("user_id = ?", userID).First(&plan, id).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	if plan.Status == models.PlanStatusCompleted {
		utils.CreateError(iris.StatusConflict, "Conflict", "Plan is already completed.", ctx)
		return
	}

	// Memory photos arrive as data URIs; host them before they land in the
	// stored placements.
	for i := range input.Reviews {
		for j, photo := range input.Reviews[i].Photos {
			if !strings.HasPrefix(photo, "data:image") {
				continue
			}
			publicID := fmt.Sprintf("weekendlyfe/memories/plan_%d_%d_%d", plan.ID, i, j)
			uploaded := storage.UploadBase64Image(photo, publicID)
			if uploaded["url"] != "" {
				input.Reviews[i].Photos[j] = uploaded["url"]
			}
		}
	}

	if err := services.CompletePlan(&plan, input.OverallRating, input.OverallReview, input.Reviews, time.Now()); err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	if err := storage.DB.Save(&plan).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(planResponse(&plan))
}

// ExportWeekendPlan renders the plan as an SVG poster. With ?upload=1 the
// poster is pushed to the media CDN and its URL returned instead.
func ExportWeekendPlan(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)
	id := ctx.Params().Get("id")

	var plan models.WeekendPlan
	if err := storage.DB.Where("user_id = ?", userID).First(&plan, id).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	svg := services.GeneratePoster(&plan)

	if ctx.URLParamDefault("upload", "") == "1" {
		publicID := fmt.Sprintf("weekendlyfe/posters/plan_%d", plan.ID)
		uploaded := storage.UploadSVGPoster(svg, publicID)
		if uploaded == nil {
			utils.CreateInternalServerError(ctx)
			return
		}
		ctx.JSON(iris.Map{"url": uploaded["url"]})
		return
	}

	ctx.ContentType("image/svg+xml")
	ctx.Header("Content-Disposition",
		fmt.Sprintf("attachment; filename=weekend-plan-%s.svg", plan.WeekendDate.Format("2006-01-02")))
	ctx.WriteString(svg)
}

// GetUserHistory summarizes completed weekends: totals, average rating,
// spend, and the user's most planned categories.
func GetUserHistory(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	var plans []models.WeekendPlan
	listErr := storage.DB.
		Where("user_id = ?", userID).
		Order("weekend_date DESC").
		Find(&plans).Error
	if listErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	reconcilePlans(plans, time.Now())

	var completed []iris.Map
	var totalSpent float64
	var ratingSum, ratingCount int
	completedActivities := 0
	favoriteActivities := map[string]int{}
	favoriteVibes := map[string]int{}
	monthlyActivity := map[string]int{}
	categoryCounts := map[string]int{}

	for i := range plans {
		plan := &plans[i]
		if plan.Status != models.PlanStatusCompleted {
			continue
		}

		totalSpent += plan.TotalActualCost
		if plan.OverallRating != nil {
			ratingSum += *plan.OverallRating
			ratingCount++
		}
		for _, item := range plan.AllItems() {
			if !item.Completed {
				continue
			}
			completedActivities++
			favoriteActivities[item.Activity.Title]++
			if item.Vibe != "" {
				favoriteVibes[item.Vibe]++
			}
			if item.Activity.Category != "" {
				categoryCounts[strings.ToLower(item.Activity.Category)]++
			}
		}
		monthlyActivity[plan.WeekendDate.Format("2006-01")]++
		completed = append(completed, planResponse(plan))
	}

	topCategories := topCategoriesFrom(categoryCounts)

	averageRating := 0.0
	if ratingCount > 0 {
		averageRating = float64(ratingSum) / float64(ratingCount)
	}

	if completed == nil {
		completed = []iris.Map{}
	}

	var user models.User
	storage.DB.First(&user, userID)

	ctx.JSON(iris.Map{
		"history": completed,
		"statistics": iris.Map{
			"totalWeekendsPlanned":     len(completed),
			"totalActivitiesCompleted": completedActivities,
			"totalMoneySpent":          totalSpent,
			"averageRating":            averageRating,
			"favoriteActivities":       favoriteActivities,
			"favoriteVibes":            favoriteVibes,
			"monthlyActivity":          monthlyActivity,
			"topCategories":            topCategories,
		},
		"userPreferences": iris.Map{
			"preferredActivities": user.PreferredActivities,
			"budgetRange":         user.BudgetRange,
			"companions":          user.Companions,
			"preferredVibe":       user.PreferredVibe,
			"dietaryPreferences":  user.DietaryPreferences,
		},
	})
}

// topCategoriesFrom ranks categories by how often they show up in completed
// items, most frequent first with ties broken alphabetically, and keeps the
// top three.
func topCategoriesFrom(counts map[string]int) []string {
	categories := make([]string, 0, len(counts))
	for category := range counts {
		categories = append(categories, category)
	}
	slices.SortFunc(categories, func(a, b string) bool {
		if counts[a] != counts[b] {
			return counts[a] > counts[b]
		}
		return a < b
	})
	if len(categories) > 3 {
		categories = categories[:3]
	}
	return categories
}
