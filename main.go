package main

import (
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"

	"github.com/roshaneleshaddai/Weekendlyfe/routes"
	"github.com/roshaneleshaddai/Weekendlyfe/storage"
	"github.com/roshaneleshaddai/Weekendlyfe/utils"
)

func main() {
	godotenv.Load()
	storage.InitializeDB()
	storage.InitializeMedia()
	storage.InitializeRedis()

	app := iris.New()
	app.Validator = validator.New()

	// CORS for the web client (http://localhost:3000)
	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	app.Use(iris.Compression)

	app.Get("/health", func(ctx iris.Context) {
		ctx.JSON(iris.Map{"status": "ok"})
	})

	resetTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("EMAIL_TOKEN_SECRET")))
	resetTokenVerifier.WithDefaultBlocklist()
	resetTokenVerifierMiddleware := resetTokenVerifier.Verify(func() interface{} {
		return new(utils.ForgotPasswordToken)
	})

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifier.WithDefaultBlocklist()
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	refreshTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("REFRESH_TOKEN_SECRET")))
	refreshTokenVerifier.WithDefaultBlocklist()
	refreshTokenVerifierMiddleware := refreshTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	refreshTokenVerifier.Extractors = append(refreshTokenVerifier.Extractors, func(ctx iris.Context) string {
		var tokenInput utils.RefreshTokenInput
		err := ctx.ReadJSON(&tokenInput)
		if err != nil {
			return ""
		}

		return tokenInput.RefreshToken
	})

	user := app.Party("/api/user")
	{
		user.Post("/register", routes.Register)
		user.Post("/login", routes.Login)
		user.Post("/forgotpassword", routes.ForgotPassword)
		user.Post("/resetpassword", resetTokenVerifierMiddleware, routes.ResetPassword)
		user.Get("/profile", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.GetUserProfile)
		user.Patch("/profile", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.UpdateUserProfile)
	}

	activities := app.Party("/api/activities")
	{
		activities.Get("/", routes.GetActivities)
		activities.Get("/categories", routes.GetActivityCategories)
		activities.Get("/{id:uint}", routes.GetActivity)
		activities.Post("/", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.CreateActivity)
		activities.Patch("/{id:uint}", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.UpdateActivity)
		activities.Delete("/{id:uint}", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.DeleteActivity)
	}

	plans := app.Party("/api/plans", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware)
	{
		plans.Get("/current", routes.GetCurrentWeekendPlan)
		plans.Get("/history", routes.GetUserHistory)
		plans.Get("/", routes.GetUserWeekendPlans)
		plans.Post("/", routes.SaveWeekendPlan)
		plans.Get("/{id:uint}", routes.GetWeekendPlan)
		plans.Patch("/{id:uint}/status", routes.UpdatePlanStatus)
		plans.Post("/{id:uint}/complete", routes.CompleteWeekendPlan)
		plans.Get("/{id:uint}/export", routes.ExportWeekendPlan)
	}

	movies := app.Party("/api/movies")
	{
		movies.Get("/trending", routes.GetTrendingMovies)
		movies.Get("/now-playing", routes.GetNowPlayingMovies)
		movies.Get("/upcoming", routes.GetUpcomingMovies)
		movies.Get("/search", routes.SearchMovies)
		movies.Get("/{id}", routes.GetMovieDetails)
	}

	places := app.Party("/api/places")
	{
		places.Get("/popular", routes.GetPopularPlaces)
		places.Get("/search", routes.SearchPlaces)
	}

	themes := app.Party("/api/themes")
	{
		themes.Get("/", routes.GetThemes)
		themes.Get("/vibes", routes.GetVibes)
	}

	app.Post("/api/refresh", refreshTokenVerifierMiddleware, utils.RefreshToken)

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	addr := "0.0.0.0:" + port

	fmt.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
