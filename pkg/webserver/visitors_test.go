package webserver

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Syed-Muaarij-Nadeem/LabFinalWeb/pkg/models"
)

func seedVisitor(store *memStore, name, email string) models.Visitor {
	visitor := models.Visitor{
		ID:    primitive.NewObjectID(),
		Name:  name,
		Email: email,
	}
	store.visitors = append(store.visitors, visitor)
	return visitor
}

func TestListVisitors(t *testing.T) {
	store := &memStore{}
	seedVisitor(store, "Alice Johnson", "alice@example.com")
	seedVisitor(store, "Bob Smith", "bob@example.com")
	server := newTestServer(t, store)

	w := doRequest(t, server, http.MethodGet, "/visitors", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Alice Johnson")
	assert.Contains(t, w.Body.String(), "Bob Smith")
}

func TestCreateVisitor(t *testing.T) {
	store := &memStore{}
	server := newTestServer(t, store)

	form := url.Values{}
	form.Set("name", "Charlie Brown")
	form.Set("email", "charlie@example.com")
	w := doRequest(t, server, http.MethodPost, "/visitors", form)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/visitors", w.Header().Get("Location"))

	require.Len(t, store.visitors, 1)
	assert.False(t, store.visitors[0].ID.IsZero())
	assert.Equal(t, "Charlie Brown", store.visitors[0].Name)
	assert.Equal(t, "charlie@example.com", store.visitors[0].Email)
}

func TestCreateVisitorMissingName(t *testing.T) {
	store := &memStore{}
	server := newTestServer(t, store)

	form := url.Values{}
	form.Set("email", "nobody@example.com")
	w := doRequest(t, server, http.MethodPost, "/visitors", form)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.visitors)
}

func TestEditVisitorNotFound(t *testing.T) {
	server := newTestServer(t, &memStore{})

	w := doRequest(t, server, http.MethodGet, "/visitors/"+primitive.NewObjectID().Hex()+"/edit", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Visitor not found")
}

// The update endpoint only touches name and email; the visited list
// survives untouched.
func TestUpdateVisitorKeepsVisitedList(t *testing.T) {
	store := &memStore{}
	visited := []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID()}
	visitor := models.Visitor{
		ID:                 primitive.NewObjectID(),
		Name:               "Alice Johnson",
		Email:              "alice@example.com",
		VisitedAttractions: visited,
	}
	store.visitors = append(store.visitors, visitor)
	server := newTestServer(t, store)

	form := url.Values{}
	form.Set("name", "Alice J.")
	form.Set("email", "aj@example.com")
	w := doRequest(t, server, http.MethodPost, "/visitors/"+visitor.ID.Hex(), form)

	require.Equal(t, http.StatusFound, w.Code)
	updated := store.visitors[0]
	assert.Equal(t, "Alice J.", updated.Name)
	assert.Equal(t, "aj@example.com", updated.Email)
	assert.Equal(t, visited, updated.VisitedAttractions)
}

func TestUpdateVisitorMissingIDRedirects(t *testing.T) {
	store := &memStore{}
	server := newTestServer(t, store)

	form := url.Values{}
	form.Set("name", "Ghost")
	w := doRequest(t, server, http.MethodPost, "/visitors/"+primitive.NewObjectID().Hex(), form)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Empty(t, store.visitors)
}

func TestDeleteVisitor(t *testing.T) {
	store := &memStore{}
	visitor := seedVisitor(store, "Alice Johnson", "alice@example.com")
	server := newTestServer(t, store)

	w := doRequest(t, server, http.MethodPost, "/visitors/"+visitor.ID.Hex()+"/delete", nil)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Empty(t, store.visitors)
}

func TestVisitorActivity(t *testing.T) {
	store := &memStore{}
	alice := seedVisitor(store, "Alice Johnson", "alice@example.com")
	bob := seedVisitor(store, "Bob Smith", "bob@example.com")
	seedVisitor(store, "Charlie Brown", "charlie@example.com")

	attraction := seedAttraction(store, "Eiffel Tower", 4.8)
	for i := 0; i < 3; i++ {
		store.reviews = append(store.reviews, models.Review{
			ID:         primitive.NewObjectID(),
			Visitor:    alice.ID,
			Attraction: attraction.ID,
			Score:      5,
		})
	}
	store.reviews = append(store.reviews, models.Review{
		ID:         primitive.NewObjectID(),
		Visitor:    bob.ID,
		Attraction: attraction.ID,
		Score:      4,
	})

	server := newTestServer(t, store)
	w := doRequest(t, server, http.MethodGet, "/visitors/activity", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	// Only visitors with at least one review appear; counts match
	assert.Contains(t, body, "Alice Johnson")
	assert.Contains(t, body, "Bob Smith")
	assert.NotContains(t, body, "Charlie Brown")

	activity, err := store.VisitorActivity(context.Background())
	require.NoError(t, err)
	require.Len(t, activity, 2)
	total := 0
	for _, row := range activity {
		total += row.ReviewCount
	}
	assert.Equal(t, len(store.reviews), total)
}

func TestVisitorActivityFault(t *testing.T) {
	store := &memStore{err: fmt.Errorf("connection lost")}
	server := newTestServer(t, store)

	w := doRequest(t, server, http.MethodGet, "/visitors/activity", nil)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Error fetching visitors' activity.", w.Body.String())
}
