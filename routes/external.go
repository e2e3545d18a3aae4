package routes

import (
	"errors"

	"github.com/kataras/iris/v12"

	"github.com/roshaneleshaddai/Weekendlyfe/services"
	"github.com/roshaneleshaddai/Weekendlyfe/utils"
)

func handleExternalError(err error, ctx iris.Context) {
	if errors.Is(err, services.ErrAPIKeyMissing) {
		utils.CreateError(iris.StatusServiceUnavailable, "External API Error",
			"External provider is not configured.", ctx)
		return
	}
	utils.CreateError(iris.StatusBadGateway, "External API Error",
		"External provider request failed.", ctx)
}

// GetTrendingMovies proxies TMDB trending, mapped into activity shape so
// the client can drop results straight onto a day.
func GetTrendingMovies(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	timeWindow := ctx.URLParamDefault("timeWindow", "week")

	movies, err := services.GetTrendingMovies(page, timeWindow)
	if err != nil {
		handleExternalError(err, ctx)
		return
	}

	ctx.JSON(movies)
}

func GetNowPlayingMovies(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	region := ctx.URLParamDefault("region", "IN")

	movies, err := services.GetNowPlayingMovies(page, region)
	if err != nil {
		handleExternalError(err, ctx)
		return
	}

	ctx.JSON(movies)
}

func GetUpcomingMovies(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	region := ctx.URLParamDefault("region", "IN")

	movies, err := services.GetUpcomingMovies(page, region)
	if err != nil {
		handleExternalError(err, ctx)
		return
	}

	ctx.JSON(movies)
}

func SearchMovies(ctx iris.Context) {
	query := ctx.URLParam("query")
	if query == "" {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "query is required.", ctx)
		return
	}
	page := ctx.URLParamIntDefault("page", 1)

	movies, err := services.SearchMovies(query, page)
	if err != nil {
		handleExternalError(err, ctx)
		return
	}

	ctx.JSON(movies)
}

func GetMovieDetails(ctx iris.Context) {
	movieID := ctx.Params().Get("id")

	movie, err := services.GetMovieDetails(movieID)
	if err != nil {
		handleExternalError(err, ctx)
		return
	}

	ctx.JSON(movie)
}

// GetPopularPlaces proxies Google Places nearby search around the given
// coordinates. placeType selects the category mapping applied to results.
func GetPopularPlaces(ctx iris.Context) {
	lat, latErr := ctx.URLParamFloat64("lat")
	lng, lngErr := ctx.URLParamFloat64("lng")
	if latErr != nil || lngErr != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "lat and lng are required.", ctx)
		return
	}

	radius := ctx.URLParamIntDefault("radius", 5000)
	placeType := ctx.URLParamDefault("type", "restaurant")
	pageToken := ctx.URLParam("pageToken")

	places, err := services.GetPopularPlaces(lat, lng, radius, placeType, pageToken)
	if err != nil {
		handleExternalError(err, ctx)
		return
	}

	ctx.JSON(places)
}

func SearchPlaces(ctx iris.Context) {
	query := ctx.URLParam("query")
	if query == "" {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "query is required.", ctx)
		return
	}

	lat, latErr := ctx.URLParamFloat64("lat")
	lng, lngErr := ctx.URLParamFloat64("lng")
	if latErr != nil || lngErr != nil {
		lat, lng = 0, 0
	}
	radius := ctx.URLParamIntDefault("radius", 5000)

	places, err := services.SearchPlaces(query, lat, lng, radius)
	if err != nil {
		handleExternalError(err, ctx)
		return
	}

	ctx.JSON(places)
}
