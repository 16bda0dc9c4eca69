package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"blogapi/app/models"
	"blogapi/app/repositories"
	"blogapi/app/services"

	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for blog posts
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{postService: postService}
}

// Index handles listing all posts
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	views, err := pc.postService.ListPosts()
	if err != nil {
		sendInternalError(w, err, "failed to list posts")
		return
	}
	sendJSON(w, http.StatusOK, views)
}

// Show handles displaying a single post
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	view, err := pc.postService.GetPost(id)
	if errors.Is(err, repositories.ErrNotFound) {
		sendError(w, http.StatusNotFound, "Post not found")
		return
	}
	if err != nil {
		sendInternalError(w, err, "failed to get post")
		return
	}

	sendJSON(w, http.StatusOK, view)
}

// Create handles creating a new post
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title    string           `json:"title"`
		Content  string           `json:"content"`
		AuthorID string           `json:"author_id"`
		Comments []models.Comment `json:"comments"`
	}
	fields, err := decodeBody(r, &req)
	if err != nil {
		sendError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	if field := missingField(fields, "title", "content", "author_id"); field != "" {
		sendError(w, http.StatusBadRequest, fmt.Sprintf("Missing `%s` in request body", field))
		return
	}

	post := &models.BlogPost{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: req.AuthorID,
		Comments: req.Comments,
	}

	view, err := pc.postService.CreatePost(post)
	switch {
	case errors.Is(err, services.ErrAuthorNotFound):
		sendError(w, http.StatusBadRequest, err.Error())
		return
	case isValidationError(err):
		sendError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		sendInternalError(w, err, "failed to create post")
		return
	}

	sendJSON(w, http.StatusCreated, view)
}

// Update handles a partial update of an existing post
func (pc *PostController) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req struct {
		ID       string  `json:"id"`
		Title    *string `json:"title"`
		Content  *string `json:"content"`
		AuthorID *string `json:"author_id"`
	}
	if _, err := decodeBody(r, &req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	if req.ID == "" || req.ID != id {
		sendError(w, http.StatusBadRequest,
			fmt.Sprintf("Request path id (%s) and request body id (%s) must match", id, req.ID))
		return
	}

	err := pc.postService.UpdatePost(id, services.PostUpdate{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: req.AuthorID,
	})
	if errors.Is(err, repositories.ErrNotFound) {
		sendError(w, http.StatusNotFound, "Post not found")
		return
	}
	if err != nil {
		sendInternalError(w, err, "failed to update post")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete handles deleting a post
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := pc.postService.DeletePost(id); err != nil {
		sendInternalError(w, err, "failed to delete post")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
