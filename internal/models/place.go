// Модели REST-контракта бэкенда HBnB.
package models

import (
	"encoding/json"
	"strings"
)

// Owner — владелец места (вложенный объект places).
type Owner struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email,omitempty"`
}

// FullName — "Имя Фамилия" без лишних пробелов.
func (o Owner) FullName() string {
	return strings.TrimSpace(o.FirstName + " " + o.LastName)
}

// Amenity — удобство места. Бэкенд отдаёт объект {id,name},
// старые версии — просто строку с названием.
type Amenity struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// UnmarshalJSON принимает и объект, и строку.
func (a *Amenity) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*a = Amenity{Name: name}
		return nil
	}

	type plain Amenity
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	*a = Amenity(p)
	return nil
}

// Place — объявление (listing).
type Place struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Picture     string    `json:"picture,omitempty"`
	Latitude    float64   `json:"latitude,omitempty"`
	Longitude   float64   `json:"longitude,omitempty"`
	Owner       *Owner    `json:"owner,omitempty"`
	Amenities   []Amenity `json:"amenities,omitempty"`
	Reviews     []Review  `json:"reviews,omitempty"`
}

// PlacesEnvelope — форма ответа GET /places вида {"places": [...]}.
type PlacesEnvelope struct {
	Message string  `json:"message,omitempty"`
	Places  []Place `json:"places"`
}
