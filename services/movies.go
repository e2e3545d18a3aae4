package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/roshaneleshaddai/Weekendlyfe/models"
)

const tmdbBaseURL = "https://api.themoviedb.org/3"

// ErrAPIKeyMissing means an external provider is not configured; surfaced to
// the caller as a configuration error, never a crash.
var ErrAPIKeyMissing = errors.New("external API key not configured")

// MovieActivity is a TMDB result already mapped into the activity shape the
// normalizer accepts. Only the normalizer and these proxy mappers understand
// provider field names.
type MovieActivity struct {
	ID               int      `json:"id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Category         string   `json:"category"`
	Subcategory      string   `json:"subcategory"`
	PosterPath       string   `json:"poster_path,omitempty"`
	BackdropPath     string   `json:"backdrop_path,omitempty"`
	ReleaseDate      string   `json:"release_date"`
	Rating           float64  `json:"rating"`
	Popularity       float64  `json:"popularity"`
	Adult            bool     `json:"adult"`
	GenreIDs         []int    `json:"genre_ids"`
	OriginalLanguage string   `json:"original_language"`
	DurationMin      int      `json:"durationMin"`
	Icon             string   `json:"icon"`
	Color            string   `json:"color"`
	Source           string   `json:"source"`
	ExternalID       string   `json:"external_id"`
	Genres           []string `json:"genres,omitempty"`
}

// MoviePage is one page of TMDB results plus pagination metadata.
type MoviePage struct {
	Movies       []MovieActivity `json:"movies"`
	CurrentPage  int             `json:"current_page"`
	TotalPages   int             `json:"total_pages"`
	TotalResults int             `json:"total_results"`
}

type tmdbMovie struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	Overview         string  `json:"overview"`
	PosterPath       string  `json:"poster_path"`
	BackdropPath     string  `json:"backdrop_path"`
	ReleaseDate      string  `json:"release_date"`
	VoteAverage      float64 `json:"vote_average"`
	Popularity       float64 `json:"popularity"`
	Adult            bool    `json:"adult"`
	GenreIDs         []int   `json:"genre_ids"`
	OriginalLanguage string  `json:"original_language"`
	Runtime          int     `json:"runtime"`
}

type tmdbPage struct {
	Page         int         `json:"page"`
	Results      []tmdbMovie `json:"results"`
	TotalPages   int         `json:"total_pages"`
	TotalResults int         `json:"total_results"`
}

func tmdbKey() (string, error) {
	key := os.Getenv("TMDB_API_KEY")
	if key == "" || key == "your_tmdb_api_key_here" {
		return "", ErrAPIKeyMissing
	}
	return key, nil
}

func tmdbGet(path string, params url.Values, out interface{}) error {
	endpoint := tmdbBaseURL + path + "?" + params.Encode()
	client := &http.Client{}
	req, _ := http.NewRequest("GET", endpoint, nil)
	res, err := client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("tmdb returned status %d", res.StatusCode)
	}

	return json.Unmarshal(body, out)
}

func mapMovie(movie tmdbMovie) MovieActivity {
	posterPath := ""
	if movie.PosterPath != "" {
		posterPath = "https://image.tmdb.org/t/p/w500" + movie.PosterPath
	}
	backdropPath := ""
	if movie.BackdropPath != "" {
		backdropPath = "https://image.tmdb.org/t/p/w1280" + movie.BackdropPath
	}

	durationMin := movie.Runtime
	if durationMin <= 0 {
		durationMin = 120 // typical feature length when TMDB omits runtime
	}

	return MovieActivity{
		ID:               movie.ID,
		Title:            movie.Title,
		Description:      movie.Overview,
		Category:         "Entertainment",
		Subcategory:      "Movies",
		PosterPath:       posterPath,
		BackdropPath:     backdropPath,
		ReleaseDate:      movie.ReleaseDate,
		Rating:           movie.VoteAverage,
		Popularity:       movie.Popularity,
		Adult:            movie.Adult,
		GenreIDs:         movie.GenreIDs,
		OriginalLanguage: movie.OriginalLanguage,
		DurationMin:      durationMin,
		Icon:             "🎬",
		Color:            "#FF6B6B",
		Source:           models.SourceTMDB,
		ExternalID:       fmt.Sprintf("%d", movie.ID),
	}
}

func fetchMoviePage(path string, params url.Values) (*MoviePage, error) {
	key, err := tmdbKey()
	if err != nil {
		return nil, err
	}
	params.Set("api_key", key)
	params.Set("language", "en-US")

	var page tmdbPage
	if err := tmdbGet(path, params, &page); err != nil {
		return nil, err
	}

	movies := make([]MovieActivity, 0, len(page.Results))
	for _, movie := range page.Results {
		movies = append(movies, mapMovie(movie))
	}

	return &MoviePage{
		Movies:       movies,
		CurrentPage:  page.Page,
		TotalPages:   page.TotalPages,
		TotalResults: page.TotalResults,
	}, nil
}

// GetTrendingMovies fetches trending movies for the given time window
// ("day" or "week").
func GetTrendingMovies(page int, timeWindow string) (*MoviePage, error) {
	if timeWindow != "day" && timeWindow != "week" {
		timeWindow = "week"
	}
	params := url.Values{}
	params.Set("page", fmt.Sprintf("%d", page))
	return fetchMoviePage("/trending/movie/"+timeWindow, params)
}

// GetNowPlayingMovies fetches movies currently in theatres for a region.
func GetNowPlayingMovies(page int, region string) (*MoviePage, error) {
	params := url.Values{}
	params.Set("page", fmt.Sprintf("%d", page))
	params.Set("region", region)
	return fetchMoviePage("/movie/now_playing", params)
}

// GetUpcomingMovies fetches upcoming theatrical releases for a region.
func GetUpcomingMovies(page int, region string) (*MoviePage, error) {
	params := url.Values{}
	params.Set("page", fmt.Sprintf("%d", page))
	params.Set("region", region)
	return fetchMoviePage("/movie/upcoming", params)
}

// SearchMovies searches TMDB by title.
func SearchMovies(query string, page int) (*MoviePage, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", fmt.Sprintf("%d", page))
	return fetchMoviePage("/search/movie", params)
}

// GetMovieDetails fetches a single movie with its real runtime and genres.
func GetMovieDetails(movieID string) (*MovieActivity, error) {
	key, err := tmdbKey()
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("api_key", key)
	params.Set("language", "en-US")

	var detail struct {
		tmdbMovie
		Genres []struct {
			Name string `json:"name"`
		} `json:"genres"`
	}
	if err := tmdbGet("/movie/"+movieID, params, &detail); err != nil {
		return nil, err
	}

	movie := mapMovie(detail.tmdbMovie)
	for _, genre := range detail.Genres {
		movie.Genres = append(movie.Genres, genre.Name)
	}
	return &movie, nil
}
