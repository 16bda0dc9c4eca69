package repositories

import "blogapi/app/models"

// AuthorRepository defines the interface for author data access
type AuthorRepository interface {
	Create(author *models.Author) error
	GetByID(id string) (*models.Author, error)
	FindByUserName(userName string) (*models.Author, error)
	List() ([]*models.Author, error)
	Update(author *models.Author) error
	Delete(id string) error
}

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(post *models.BlogPost) error
	GetByID(id string) (*models.BlogPost, error)
	List() ([]*models.BlogPost, error)
	Update(post *models.BlogPost) error
	Delete(id string) error
	DeleteByAuthor(authorID string) (int, error)
}
