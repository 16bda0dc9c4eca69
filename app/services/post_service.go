package services

import (
	"errors"
	"fmt"

	"blogapi/app/models"
	"blogapi/app/repositories"
)

// PostService handles business logic for blog posts
type PostService struct {
	postRepo   repositories.PostRepository
	authorRepo repositories.AuthorRepository
}

// PostUpdate carries the fields of a partial post update. Nil fields are
// left untouched in storage.
type PostUpdate struct {
	Title    *string
	Content  *string
	AuthorID *string
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, authorRepo repositories.AuthorRepository) *PostService {
	return &PostService{
		postRepo:   postRepo,
		authorRepo: authorRepo,
	}
}

// ListPosts retrieves all posts with their author references resolved.
func (s *PostService) ListPosts() ([]models.PostView, error) {
	posts, err := s.postRepo.List()
	if err != nil {
		return nil, err
	}

	views := make([]models.PostView, 0, len(posts))
	for _, post := range posts {
		author, err := s.resolveAuthor(post.AuthorID)
		if err != nil {
			return nil, err
		}
		views = append(views, post.Serialize(author))
	}
	return views, nil
}

// GetPost retrieves a post by ID with its author reference resolved.
func (s *PostService) GetPost(id string) (models.PostView, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return models.PostView{}, err
	}

	author, err := s.resolveAuthor(post.AuthorID)
	if err != nil {
		return models.PostView{}, err
	}
	return post.Serialize(author), nil
}

// CreatePost creates a new post. The author reference must resolve to an
// existing author; the lookup and the write are separate datastore
// operations with no isolation between them.
func (s *PostService) CreatePost(post *models.BlogPost) (models.PostView, error) {
	if err := post.Validate(); err != nil {
		return models.PostView{}, fmt.Errorf("invalid post: %w", err)
	}

	author, err := s.authorRepo.GetByID(post.AuthorID)
	if errors.Is(err, repositories.ErrNotFound) {
		return models.PostView{}, ErrAuthorNotFound
	}
	if err != nil {
		return models.PostView{}, err
	}

	if err := s.postRepo.Create(post); err != nil {
		return models.PostView{}, err
	}
	return post.Serialize(author), nil
}

// UpdatePost applies a partial update to an existing post. Fields absent
// from the update are preserved.
func (s *PostService) UpdatePost(id string, update PostUpdate) error {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return err
	}

	if update.Title != nil {
		post.Title = *update.Title
	}
	if update.Content != nil {
		post.Content = *update.Content
	}
	if update.AuthorID != nil {
		post.AuthorID = *update.AuthorID
	}

	return s.postRepo.Update(post)
}

// DeletePost deletes a post by ID. Deleting an absent post is a no-op.
func (s *PostService) DeletePost(id string) error {
	err := s.postRepo.Delete(id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil
	}
	return err
}

// resolveAuthor fetches the referenced author. A dangling reference
// resolves to nil rather than failing the read.
func (s *PostService) resolveAuthor(authorID string) (*models.Author, error) {
	author, err := s.authorRepo.GetByID(authorID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return author, nil
}
