package models

// ReviewAuthor — автор отзыва (вложенный объект user).
type ReviewAuthor struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
}

// Review — отзыв о месте.
type Review struct {
	ID      string        `json:"id,omitempty"`
	PlaceID string        `json:"place_id,omitempty"`
	UserID  string        `json:"user_id,omitempty"`
	Text    string        `json:"text"`
	Comment string        `json:"comment,omitempty"` // старое имя поля text
	Rating  int           `json:"rating"`
	User    *ReviewAuthor `json:"user,omitempty"`
}

// Body возвращает текст отзыва с учётом старого поля comment.
func (r Review) Body() string {
	if r.Text != "" {
		return r.Text
	}

	return r.Comment
}

// AuthorName — имя автора или "Anonymous".
func (r Review) AuthorName() string {
	if r.User != nil && r.User.FirstName != "" {
		return r.User.FirstName
	}

	return "Anonymous"
}

// CreateReviewRequest — тело POST /reviews.
type CreateReviewRequest struct {
	PlaceID string `json:"place_id"`
	Text    string `json:"text"`
	Rating  int    `json:"rating"`
	UserID  string `json:"user_id"`
}
