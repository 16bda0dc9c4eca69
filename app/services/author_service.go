package services

import (
	"errors"
	"fmt"

	"blogapi/app/models"
	"blogapi/app/repositories"
)

// AuthorService handles business logic for authors
type AuthorService struct {
	authorRepo repositories.AuthorRepository
	postRepo   repositories.PostRepository
}

// AuthorUpdate carries the fields of a partial author update. Nil fields
// are left untouched in storage.
type AuthorUpdate struct {
	FirstName *string
	LastName  *string
	UserName  *string
}

// NewAuthorService creates a new AuthorService
func NewAuthorService(authorRepo repositories.AuthorRepository, postRepo repositories.PostRepository) *AuthorService {
	return &AuthorService{
		authorRepo: authorRepo,
		postRepo:   postRepo,
	}
}

// ListAuthors retrieves all authors in their wire representation.
func (s *AuthorService) ListAuthors() ([]models.AuthorView, error) {
	authors, err := s.authorRepo.List()
	if err != nil {
		return nil, err
	}

	views := make([]models.AuthorView, 0, len(authors))
	for _, author := range authors {
		views = append(views, author.Serialize())
	}
	return views, nil
}

// CreateAuthor creates a new author after checking that its user name is
// not already taken. The lookup and the write are separate datastore
// operations; a concurrent insert can still slip between them.
func (s *AuthorService) CreateAuthor(author *models.Author) (models.AuthorView, error) {
	if err := author.Validate(); err != nil {
		return models.AuthorView{}, fmt.Errorf("invalid author: %w", err)
	}

	if err := s.checkUserNameFree(author.UserName, ""); err != nil {
		return models.AuthorView{}, err
	}

	if err := s.authorRepo.Create(author); err != nil {
		return models.AuthorView{}, err
	}
	return author.Serialize(), nil
}

// UpdateAuthor applies a partial update to an existing author. A user
// name change is rejected when the new name belongs to a different
// author.
func (s *AuthorService) UpdateAuthor(id string, update AuthorUpdate) (models.AuthorView, error) {
	author, err := s.authorRepo.GetByID(id)
	if err != nil {
		return models.AuthorView{}, err
	}

	if update.UserName != nil && *update.UserName != author.UserName {
		if err := s.checkUserNameFree(*update.UserName, id); err != nil {
			return models.AuthorView{}, err
		}
	}

	if update.FirstName != nil {
		author.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		author.LastName = *update.LastName
	}
	if update.UserName != nil {
		author.UserName = *update.UserName
	}

	if err := s.authorRepo.Update(author); err != nil {
		return models.AuthorView{}, err
	}
	return author.Serialize(), nil
}

// DeleteAuthor deletes an author and cascades to every post referencing
// it. The two deletes are sequential and non-atomic.
func (s *AuthorService) DeleteAuthor(id string) error {
	if _, err := s.postRepo.DeleteByAuthor(id); err != nil {
		return fmt.Errorf("failed to delete posts for author %s: %w", id, err)
	}

	err := s.authorRepo.Delete(id)
	if errors.Is(err, repositories.ErrNotFound) {
		// Deleting an absent author is a no-op.
		return nil
	}
	return err
}

// checkUserNameFree returns ErrUserNameTaken when userName belongs to an
// author other than selfID.
func (s *AuthorService) checkUserNameFree(userName, selfID string) error {
	existing, err := s.authorRepo.FindByUserName(userName)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != selfID {
		return ErrUserNameTaken
	}
	return nil
}
