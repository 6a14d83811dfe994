package view

import "github.com/pribylovaa/hbnb-web/internal/models"

// DefaultPicture — картинка места, когда бэкенд её не вернул.
const DefaultPicture = "https://www.archi-wiki.org/images/thumb/1/16/Gommersdorf_%28pignon%29_DSC04951.jpg/300px-Gommersdorf_%28pignon%29_DSC04951.jpg"

// Layout — общие поля всех страниц.
type Layout struct {
	Title         string
	Authenticated bool
	RequestID     string
	// Error — текст баннера ошибки.
	Error string
}

type IndexPage struct {
	Layout
	Cards         []Card
	Filter        string
	FilterOptions []string
}

type PlacePage struct {
	Layout
	Place     *models.Place
	CanReview bool
	Review    ReviewForm
}

// Picture — картинка места или DefaultPicture.
func (p PlacePage) Picture() string {
	if p.Place != nil && p.Place.Picture != "" {
		return p.Place.Picture
	}

	return DefaultPicture
}

// Host — имя владельца или "Unknown".
func (p PlacePage) Host() string {
	if p.Place == nil || p.Place.Owner == nil {
		return "Unknown"
	}

	if name := p.Place.Owner.FullName(); name != "" {
		return name
	}

	return "Unknown"
}

// ReviewForm — форма отзыва (фрагмент и отдельная страница).
// Значения полей возвращаются в форму при ошибке.
type ReviewForm struct {
	PlaceID string
	Text    string
	Rating  string
	Message string
}

type ReviewPage struct {
	Layout
	Form ReviewForm
}

type LoginPage struct {
	Layout
	Email string
}
