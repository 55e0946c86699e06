package webserver

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Syed-Muaarij-Nadeem/LabFinalWeb/pkg/models"
)

func seedReview(store *memStore, visitor, attraction primitive.ObjectID, score int, comment string) models.Review {
	review := models.Review{
		ID:         primitive.NewObjectID(),
		Visitor:    visitor,
		Attraction: attraction,
		Score:      score,
		Comment:    comment,
	}
	store.reviews = append(store.reviews, review)
	return review
}

func TestListReviewsResolvesReferences(t *testing.T) {
	store := &memStore{}
	visitor := seedVisitor(store, "Alice Johnson", "alice@example.com")
	attraction := seedAttraction(store, "Eiffel Tower", 4.8)
	seedReview(store, visitor.ID, attraction.ID, 5, "Amazing view!")
	server := newTestServer(t, store)

	w := doRequest(t, server, http.MethodGet, "/reviews", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Alice Johnson")
	assert.Contains(t, body, "Eiffel Tower")
	assert.Contains(t, body, "Amazing view!")
}

func TestEditReviewResolvesReferences(t *testing.T) {
	store := &memStore{}
	visitor := seedVisitor(store, "Bob Smith", "bob@example.com")
	attraction := seedAttraction(store, "Colosseum", 4.6)
	review := seedReview(store, visitor.ID, attraction.ID, 4, "Full of history.")
	server := newTestServer(t, store)

	w := doRequest(t, server, http.MethodGet, "/reviews/"+review.ID.Hex()+"/edit", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Bob Smith")
	assert.Contains(t, body, "Colosseum")
	assert.Contains(t, body, "Full of history.")
}

func TestEditReviewNotFound(t *testing.T) {
	server := newTestServer(t, &memStore{})

	w := doRequest(t, server, http.MethodGet, "/reviews/"+primitive.NewObjectID().Hex()+"/edit", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Review not found")
}

func TestCreateReview(t *testing.T) {
	store := &memStore{}
	visitor := seedVisitor(store, "Alice Johnson", "alice@example.com")
	attraction := seedAttraction(store, "Taj Mahal", 4.9)
	server := newTestServer(t, store)

	form := url.Values{}
	form.Set("visitor", visitor.ID.Hex())
	form.Set("attraction", attraction.ID.Hex())
	form.Set("score", "5")
	form.Set("comment", "Breathtaking.")
	w := doRequest(t, server, http.MethodPost, "/reviews", form)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/reviews", w.Header().Get("Location"))

	require.Len(t, store.reviews, 1)
	created := store.reviews[0]
	assert.Equal(t, visitor.ID, created.Visitor)
	assert.Equal(t, attraction.ID, created.Attraction)
	assert.Equal(t, 5, created.Score)
	assert.Equal(t, "Breathtaking.", created.Comment)
}

func TestCreateReviewMalformedReference(t *testing.T) {
	store := &memStore{}
	server := newTestServer(t, store)

	form := url.Values{}
	form.Set("visitor", "not-a-hex-id")
	form.Set("attraction", primitive.NewObjectID().Hex())
	form.Set("score", "3")
	w := doRequest(t, server, http.MethodPost, "/reviews", form)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.reviews)
}

func TestCreateReviewMissingReference(t *testing.T) {
	store := &memStore{}
	server := newTestServer(t, store)

	form := url.Values{}
	form.Set("score", "3")
	w := doRequest(t, server, http.MethodPost, "/reviews", form)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.reviews)
}

// The update path only touches score and comment; the references are
// immutable after creation.
func TestUpdateReviewKeepsReferences(t *testing.T) {
	store := &memStore{}
	visitor := seedVisitor(store, "Alice Johnson", "alice@example.com")
	attraction := seedAttraction(store, "Eiffel Tower", 4.8)
	review := seedReview(store, visitor.ID, attraction.ID, 3, "Fine.")
	server := newTestServer(t, store)

	form := url.Values{}
	form.Set("score", "5")
	form.Set("comment", "Changed my mind, superb.")
	w := doRequest(t, server, http.MethodPost, "/reviews/"+review.ID.Hex(), form)

	require.Equal(t, http.StatusFound, w.Code)
	updated := store.reviews[0]
	assert.Equal(t, 5, updated.Score)
	assert.Equal(t, "Changed my mind, superb.", updated.Comment)
	assert.Equal(t, visitor.ID, updated.Visitor)
	assert.Equal(t, attraction.ID, updated.Attraction)
}

func TestUpdateReviewMissingIDRedirects(t *testing.T) {
	store := &memStore{}
	server := newTestServer(t, store)

	form := url.Values{}
	form.Set("score", "1")
	w := doRequest(t, server, http.MethodPost, "/reviews/"+primitive.NewObjectID().Hex(), form)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Empty(t, store.reviews)
}

func TestDeleteReview(t *testing.T) {
	store := &memStore{}
	visitor := seedVisitor(store, "Alice Johnson", "alice@example.com")
	attraction := seedAttraction(store, "Eiffel Tower", 4.8)
	review := seedReview(store, visitor.ID, attraction.ID, 5, "Great.")
	server := newTestServer(t, store)

	w := doRequest(t, server, http.MethodPost, "/reviews/"+review.ID.Hex()+"/delete", nil)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Empty(t, store.reviews)
}

// Deleting a visitor leaves its reviews behind with a dangling reference
// that renders as an empty cell, not an error.
func TestListReviewsDanglingReference(t *testing.T) {
	store := &memStore{}
	visitor := seedVisitor(store, "Alice Johnson", "alice@example.com")
	attraction := seedAttraction(store, "Eiffel Tower", 4.8)
	seedReview(store, visitor.ID, attraction.ID, 5, "Great.")

	server := newTestServer(t, store)
	del := doRequest(t, server, http.MethodPost, "/visitors/"+visitor.ID.Hex()+"/delete", nil)
	require.Equal(t, http.StatusFound, del.Code)

	w := doRequest(t, server, http.MethodGet, "/reviews", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Great.")
	assert.NotContains(t, w.Body.String(), "Alice Johnson")
}
