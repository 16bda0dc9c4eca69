package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"blogapi/app/models"
	"blogapi/app/repositories/mock"
	"blogapi/app/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPostTest(t *testing.T) (*mux.Router, *models.Author) {
	authorRepo := mock.NewAuthorRepository()
	postRepo := mock.NewPostRepository()
	service := services.NewPostService(postRepo, authorRepo)
	controller := NewPostController(service)

	author := &models.Author{FirstName: "Jane", LastName: "Doe", UserName: "janedoe"}
	require.NoError(t, authorRepo.Create(author))

	router := mux.NewRouter()
	router.HandleFunc("/posts", controller.Index).Methods("GET")
	router.HandleFunc("/posts", controller.Create).Methods("POST")
	router.HandleFunc("/posts/{id}", controller.Show).Methods("GET")
	router.HandleFunc("/posts/{id}", controller.Update).Methods("PUT")
	router.HandleFunc("/posts/{id}", controller.Delete).Methods("DELETE")

	return router, author
}

func TestPostController(t *testing.T) {
	router, author := setupPostTest(t)

	var created models.PostView

	t.Run("create post", func(t *testing.T) {
		payload := fmt.Sprintf(`{
			"title": "T",
			"content": "C",
			"author_id": %q,
			"comments": [{"content": "first"}]
		}`, author.ID)

		req := httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(payload))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "T", created.Title)
		assert.Equal(t, "C", created.Content)
		assert.Equal(t, "Jane Doe", created.Author)
		assert.Len(t, created.Comments, 1)
	})

	t.Run("missing content names the field", func(t *testing.T) {
		payload := fmt.Sprintf(`{"title": "T", "author_id": %q}`, author.ID)

		req := httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(payload))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Missing `content` in request body")
	})

	t.Run("unresolved author reference", func(t *testing.T) {
		payload := `{"title": "T", "content": "C", "author_id": "nonexistent-id"}`

		req := httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(payload))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		// Nothing new was persisted.
		req = httptest.NewRequest(http.MethodGet, "/posts", nil)
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)

		var views []models.PostView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &views))
		assert.Len(t, views, 1)
	})

	t.Run("get post", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/posts/"+created.ID, nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var view models.PostView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
		assert.Equal(t, created.Title, view.Title)
		assert.Equal(t, created.Author, view.Author)
	})

	t.Run("get unknown post", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/posts/no-such-id", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("update with mismatched ids", func(t *testing.T) {
		payload := `{"id": "other-id", "title": "T2"}`
		req := httptest.NewRequest(http.MethodPut, "/posts/"+created.ID, strings.NewReader(payload))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "must match")
	})

	t.Run("partial update", func(t *testing.T) {
		payload := fmt.Sprintf(`{"id": %q, "title": "T2"}`, created.ID)
		req := httptest.NewRequest(http.MethodPut, "/posts/"+created.ID, strings.NewReader(payload))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.Bytes())

		req = httptest.NewRequest(http.MethodGet, "/posts/"+created.ID, nil)
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)

		var view models.PostView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
		assert.Equal(t, "T2", view.Title)
		assert.Equal(t, "C", view.Content)
	})

	t.Run("delete post", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/posts/"+created.ID, nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)

		req = httptest.NewRequest(http.MethodGet, "/posts/"+created.ID, nil)
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
