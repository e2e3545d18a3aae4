package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/roshaneleshaddai/Weekendlyfe/models"
)

const placesBaseURL = "https://maps.googleapis.com/maps/api/place"

// PlaceActivity is a Google Places result mapped into the activity shape.
type PlaceActivity struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	Category     string             `json:"category"`
	Subcategory  string             `json:"subcategory"`
	Location     string             `json:"location"`
	Address      string             `json:"address"`
	Coordinates  models.Coordinates `json:"coordinates"`
	Rating       float64            `json:"rating"`
	ReviewCount  int                `json:"review_count"`
	PriceLevel   *int               `json:"price_level,omitempty"`
	Photos       []string           `json:"photos"`
	OpeningHours *bool              `json:"opening_hours,omitempty"`
	Types        []string           `json:"types"`
	DurationMin  int                `json:"durationMin"`
	Icon         string             `json:"icon"`
	Color        string             `json:"color"`
	Source       string             `json:"source"`
	ExternalID   string             `json:"external_id"`
}

// PlacePage is one page of place results; NextPageToken continues the scan.
type PlacePage struct {
	Places        []PlaceActivity `json:"places"`
	NextPageToken string          `json:"next_page_token,omitempty"`
	Status        string          `json:"status"`
}

type googlePlace struct {
	PlaceID          string  `json:"place_id"`
	Name             string  `json:"name"`
	Vicinity         string  `json:"vicinity"`
	FormattedAddress string  `json:"formatted_address"`
	Rating           float64 `json:"rating"`
	UserRatingsTotal int     `json:"user_ratings_total"`
	PriceLevel       *int    `json:"price_level"`
	Geometry         struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
	Photos []struct {
		PhotoReference string `json:"photo_reference"`
	} `json:"photos"`
	OpeningHours *struct {
		OpenNow bool `json:"open_now"`
	} `json:"opening_hours"`
	Types []string `json:"types"`
}

type googlePlacesResponse struct {
	Results       []googlePlace `json:"results"`
	NextPageToken string        `json:"next_page_token"`
	Status        string        `json:"status"`
	ErrorMessage  string        `json:"error_message"`
}

var placeSubcategories = map[string]string{
	"tourist_attraction": "Tourist Attraction",
	"restaurant":         "Restaurant",
	"museum":             "Museum",
	"park":               "Park",
	"shopping_mall":      "Shopping",
	"movie_theater":      "Cinema",
	"amusement_park":     "Amusement Park",
	"zoo":                "Zoo",
	"aquarium":           "Aquarium",
	"art_gallery":        "Art Gallery",
}

var placeDurations = map[string]int{
	"tourist_attraction": 120,
	"restaurant":         90,
	"museum":             150,
	"park":               120,
	"shopping_mall":      180,
	"movie_theater":      150,
	"amusement_park":     240,
	"zoo":                180,
	"aquarium":           120,
	"art_gallery":        90,
}

var placeIcons = map[string]string{
	"tourist_attraction": "🏛️",
	"restaurant":         "🍽️",
	"museum":             "🏛️",
	"park":               "🌳",
	"shopping_mall":      "🛍️",
	"movie_theater":      "🎬",
	"amusement_park":     "🎢",
	"zoo":                "🦁",
	"aquarium":           "🐠",
	"art_gallery":        "🎨",
}

var placeColors = map[string]string{
	"tourist_attraction": "#FF6B6B",
	"restaurant":         "#4ECDC4",
	"museum":             "#45B7D1",
	"park":               "#96CEB4",
	"shopping_mall":      "#FECA57",
	"movie_theater":      "#FF9FF3",
	"amusement_park":     "#54A0FF",
	"zoo":                "#5F27CD",
	"aquarium":           "#00D2D3",
	"art_gallery":        "#FF9FF3",
}

func placeSubcategory(placeType string) string {
	if sub, ok := placeSubcategories[placeType]; ok {
		return sub
	}
	return "General"
}

func estimatedDuration(placeType string) int {
	if duration, ok := placeDurations[placeType]; ok {
		return duration
	}
	return 120
}

func placeIcon(placeType string) string {
	if icon, ok := placeIcons[placeType]; ok {
		return icon
	}
	return "📍"
}

func placeColor(placeType string) string {
	if color, ok := placeColors[placeType]; ok {
		return color
	}
	return "#DDA0DD"
}

func placesKey() (string, error) {
	key := os.Getenv("GOOGLE_PLACES_API_KEY")
	if key == "" || key == "your_google_places_api_key_here" {
		return "", ErrAPIKeyMissing
	}
	return key, nil
}

func placesGet(path string, params url.Values) (*googlePlacesResponse, error) {
	endpoint := placesBaseURL + path + "?" + params.Encode()
	client := &http.Client{}
	req, _ := http.NewRequest("GET", endpoint, nil)
	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	var response googlePlacesResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, err
	}

	if response.Status != "OK" && response.Status != "ZERO_RESULTS" {
		if response.ErrorMessage != "" {
			return nil, fmt.Errorf("google places: %s - %s", response.Status, response.ErrorMessage)
		}
		return nil, fmt.Errorf("google places: %s", response.Status)
	}

	return &response, nil
}

func mapPlace(place googlePlace, placeType, apiKey string) PlaceActivity {
	address := place.Vicinity
	if address == "" {
		address = place.FormattedAddress
	}

	photos := make([]string, 0, len(place.Photos))
	for _, photo := range place.Photos {
		photos = append(photos, fmt.Sprintf(
			"%s/photo?maxwidth=400&photoreference=%s&key=%s",
			placesBaseURL, photo.PhotoReference, apiKey))
	}

	var openNow *bool
	if place.OpeningHours != nil {
		open := place.OpeningHours.OpenNow
		openNow = &open
	}

	return PlaceActivity{
		ID:          place.PlaceID,
		Title:       place.Name,
		Description: fmt.Sprintf("Popular %s in the area", strings.ReplaceAll(placeType, "_", " ")),
		Category:    "Places",
		Subcategory: placeSubcategory(placeType),
		Location:    address,
		Address:     address,
		Coordinates: models.Coordinates{
			Lat: place.Geometry.Location.Lat,
			Lng: place.Geometry.Location.Lng,
		},
		Rating:       place.Rating,
		ReviewCount:  place.UserRatingsTotal,
		PriceLevel:   place.PriceLevel,
		Photos:       photos,
		OpeningHours: openNow,
		Types:        place.Types,
		DurationMin:  estimatedDuration(placeType),
		Icon:         placeIcon(placeType),
		Color:        placeColor(placeType),
		Source:       models.SourceGooglePlaces,
		ExternalID:   place.PlaceID,
	}
}

// GetPopularPlaces fetches places of a given type around a coordinate.
func GetPopularPlaces(lat, lng float64, radius int, placeType, pageToken string) (*PlacePage, error) {
	key, err := placesKey()
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("key", key)
	params.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	params.Set("radius", fmt.Sprintf("%d", radius))
	params.Set("type", placeType)
	params.Set("language", "en")
	if pageToken != "" {
		params.Set("pagetoken", pageToken)
	}

	response, err := placesGet("/nearbysearch/json", params)
	if err != nil {
		return nil, err
	}

	places := make([]PlaceActivity, 0, len(response.Results))
	for _, place := range response.Results {
		places = append(places, mapPlace(place, placeType, key))
	}

	return &PlacePage{
		Places:        places,
		NextPageToken: response.NextPageToken,
		Status:        response.Status,
	}, nil
}

// SearchPlaces runs a free-text place search around an optional coordinate.
func SearchPlaces(query string, lat, lng float64, radius int) (*PlacePage, error) {
	key, err := placesKey()
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("key", key)
	params.Set("query", query)
	params.Set("language", "en")
	if lat != 0 || lng != 0 {
		params.Set("location", fmt.Sprintf("%f,%f", lat, lng))
		params.Set("radius", fmt.Sprintf("%d", radius))
	}

	response, err := placesGet("/textsearch/json", params)
	if err != nil {
		return nil, err
	}

	places := make([]PlaceActivity, 0, len(response.Results))
	for _, place := range response.Results {
		placeType := "tourist_attraction"
		if len(place.Types) > 0 {
			placeType = place.Types[0]
		}
		places = append(places, mapPlace(place, placeType, key))
	}

	return &PlacePage{
		Places:        places,
		NextPageToken: response.NextPageToken,
		Status:        response.Status,
	}, nil
}
