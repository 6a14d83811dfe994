package view

import (
	"math"
	"strconv"
	"strings"

	"github.com/pribylovaa/hbnb-web/internal/models"
)

// FilterAll — значение фильтра "без ограничения".
const FilterAll = "All"

// FilterOptions — варианты выпадающего списка цены.
var FilterOptions = []string{FilterAll, "10", "50", "100"}

// Card — карточка места в списке; Hidden выставляет класс hidden.
type Card struct {
	Place  models.Place
	Hidden bool
}

// NormalizeFilter приводит значение параметра price к виду для шаблона:
// пустое или нечисловое значение — FilterAll.
func NormalizeFilter(value string) string {
	if _, ok := threshold(value); !ok {
		return FilterAll
	}

	return strings.TrimSpace(value)
}

// ApplyPriceFilter строит карточки для всех мест: ничего не отбрасывается,
// места дороже порога помечаются Hidden. Цена сравнивается в целых,
// дробная часть отбрасывается.
func ApplyPriceFilter(places []models.Place, value string) []Card {
	limit, limited := threshold(value)

	cards := make([]Card, 0, len(places))
	for _, p := range places {
		cards = append(cards, Card{
			Place:  p,
			Hidden: limited && math.Trunc(p.Price) > float64(limit),
		})
	}

	return cards
}

func threshold(value string) (int, bool) {
	value = strings.TrimSpace(value)
	if value == "" || value == FilterAll {
		return 0, false
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}

	return n, true
}

// Stars — строка из rating звёзд (от 0 до 5).
func Stars(rating int) string {
	rating = min(max(rating, 0), 5)
	return strings.Repeat("⭐", rating)
}

// FormatPrice — цена без лишних нулей: 10, 42.5.
func FormatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
