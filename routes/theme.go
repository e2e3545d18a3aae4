package routes

import (
	"github.com/kataras/iris/v12"
)

type Theme struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

type Vibe struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
	Color string `json:"color"`
}

var themes = []Theme{
	{ID: "lazy", Name: "Lazy Weekend", Color: "#F3E8FF", Icon: "😴"},
	{ID: "adventurous", Name: "Adventurous", Color: "#FEF3C7", Icon: "🏔️"},
	{ID: "family", Name: "Family Time", Color: "#D1FAE5", Icon: "👨‍👩‍👧‍👦"},
	{ID: "romantic", Name: "Romantic", Color: "#FAD9E8", Icon: "💕"},
	{ID: "productive", Name: "Productive", Color: "#DBEAFE", Icon: "⚡"},
	{ID: "social", Name: "Social", Color: "#FDE68A", Icon: "🎉"},
}

var vibes = []Vibe{
	{ID: "happy", Name: "Happy", Emoji: "😊", Color: "#FEF3C7"},
	{ID: "relaxed", Name: "Relaxed", Emoji: "😌", Color: "#D1FAE5"},
	{ID: "energetic", Name: "Energetic", Emoji: "⚡", Color: "#FDE68A"},
	{ID: "focused", Name: "Focused", Emoji: "🎯", Color: "#DBEAFE"},
	{ID: "creative", Name: "Creative", Emoji: "🎨", Color: "#FAD9E8"},
	{ID: "adventurous", Name: "Adventurous", Emoji: "🏔️", Color: "#F3E8FF"},
}

func GetThemes(ctx iris.Context) {
	ctx.JSON(themes)
}

func GetVibes(ctx iris.Context) {
	ctx.JSON(vibes)
}
