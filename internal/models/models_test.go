package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAmenity_UnmarshalObjectAndString(t *testing.T) {
	t.Parallel()

	var got []Amenity
	err := json.Unmarshal([]byte(`[{"id":"a1","name":"Wi-Fi"},"Pool"]`), &got)
	require.NoError(t, err)
	require.Equal(t, []Amenity{{ID: "a1", Name: "Wi-Fi"}, {Name: "Pool"}}, got)
}

func TestReview_BodyAndAuthorFallbacks(t *testing.T) {
	t.Parallel()

	require.Equal(t, "old", Review{Comment: "old"}.Body())
	require.Equal(t, "new", Review{Text: "new", Comment: "old"}.Body())
	require.Equal(t, "Anonymous", Review{}.AuthorName())
	require.Equal(t, "Anonymous", Review{User: &ReviewAuthor{}}.AuthorName())
	require.Equal(t, "Ann", Review{User: &ReviewAuthor{FirstName: "Ann"}}.AuthorName())
}

func TestOwner_FullName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "John Doe", Owner{FirstName: "John", LastName: "Doe"}.FullName())
	require.Equal(t, "John", Owner{FirstName: "John"}.FullName())
}

func TestErrorBody_Text(t *testing.T) {
	t.Parallel()

	require.Equal(t, "m", ErrorBody{Message: "m", Error: "e"}.Text())
	require.Equal(t, "e", ErrorBody{Error: "e"}.Text())
	require.Empty(t, ErrorBody{}.Text())
}
