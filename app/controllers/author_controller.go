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

// AuthorController handles HTTP requests for authors
type AuthorController struct {
	authorService *services.AuthorService
}

// NewAuthorController creates a new AuthorController
func NewAuthorController(authorService *services.AuthorService) *AuthorController {
	return &AuthorController{authorService: authorService}
}

// Index handles listing all authors
func (ac *AuthorController) Index(w http.ResponseWriter, r *http.Request) {
	views, err := ac.authorService.ListAuthors()
	if err != nil {
		sendInternalError(w, err, "failed to list authors")
		return
	}
	sendJSON(w, http.StatusOK, views)
}

// Create handles creating a new author
func (ac *AuthorController) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		UserName  string `json:"userName"`
	}
	fields, err := decodeBody(r, &req)
	if err != nil {
		sendError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	if field := missingField(fields, "firstName", "lastName", "userName"); field != "" {
		sendError(w, http.StatusBadRequest, fmt.Sprintf("Missing `%s` in request body", field))
		return
	}

	author := &models.Author{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		UserName:  req.UserName,
	}

	view, err := ac.authorService.CreateAuthor(author)
	switch {
	case errors.Is(err, services.ErrUserNameTaken):
		sendError(w, http.StatusBadRequest, err.Error())
		return
	case isValidationError(err):
		sendError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		sendInternalError(w, err, "failed to create author")
		return
	}

	sendJSON(w, http.StatusCreated, view)
}

// Update handles a partial update of an existing author
func (ac *AuthorController) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req struct {
		ID        string  `json:"id"`
		FirstName *string `json:"firstName"`
		LastName  *string `json:"lastName"`
		UserName  *string `json:"userName"`
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

	view, err := ac.authorService.UpdateAuthor(id, services.AuthorUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		UserName:  req.UserName,
	})
	switch {
	case errors.Is(err, services.ErrUserNameTaken):
		sendError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, repositories.ErrNotFound):
		sendError(w, http.StatusNotFound, "Author not found")
		return
	case err != nil:
		sendInternalError(w, err, "failed to update author")
		return
	}

	sendJSON(w, http.StatusOK, view)
}

// Delete handles deleting an author and all posts referencing it
func (ac *AuthorController) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := ac.authorService.DeleteAuthor(id); err != nil {
		sendInternalError(w, err, "failed to delete author")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
