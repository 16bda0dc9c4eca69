package mock

import (
	"sync"

	"blogapi/app/models"
	"blogapi/app/repositories"

	"github.com/google/uuid"
)

type AuthorRepository struct {
	authors map[string]*models.Author
	mutex   sync.RWMutex
}

type PostRepository struct {
	posts map[string]*models.BlogPost
	mutex sync.RWMutex
}

func NewAuthorRepository() *AuthorRepository {
	return &AuthorRepository{
		authors: make(map[string]*models.Author),
	}
}

func (m *AuthorRepository) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.authors = make(map[string]*models.Author)
}

func NewPostRepository() *PostRepository {
	return &PostRepository{
		posts: make(map[string]*models.BlogPost),
	}
}

func (m *PostRepository) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.posts = make(map[string]*models.BlogPost)
}

// AuthorRepository implementation

func (m *AuthorRepository) Create(author *models.Author) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	author.ID = uuid.NewString()
	copied := *author
	m.authors[author.ID] = &copied
	return nil
}

func (m *AuthorRepository) GetByID(id string) (*models.Author, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	author, exists := m.authors[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	copied := *author
	return &copied, nil
}

func (m *AuthorRepository) FindByUserName(userName string) (*models.Author, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for _, author := range m.authors {
		if author.UserName == userName {
			copied := *author
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *AuthorRepository) List() ([]*models.Author, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var authors []*models.Author
	for _, author := range m.authors {
		copied := *author
		authors = append(authors, &copied)
	}
	return authors, nil
}

func (m *AuthorRepository) Update(author *models.Author) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.authors[author.ID]; !exists {
		return repositories.ErrNotFound
	}
	copied := *author
	m.authors[author.ID] = &copied
	return nil
}

func (m *AuthorRepository) Delete(id string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.authors[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.authors, id)
	return nil
}

// PostRepository implementation

func (m *PostRepository) Create(post *models.BlogPost) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post.ID = uuid.NewString()
	post.BeforeCreate()
	copied := *post
	m.posts[post.ID] = &copied
	return nil
}

func (m *PostRepository) GetByID(id string) (*models.BlogPost, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	copied := *post
	return &copied, nil
}

func (m *PostRepository) List() ([]*models.BlogPost, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var posts []*models.BlogPost
	for _, post := range m.posts {
		copied := *post
		posts = append(posts, &copied)
	}
	return posts, nil
}

func (m *PostRepository) Update(post *models.BlogPost) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[post.ID]; !exists {
		return repositories.ErrNotFound
	}
	copied := *post
	m.posts[post.ID] = &copied
	return nil
}

func (m *PostRepository) Delete(id string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

func (m *PostRepository) DeleteByAuthor(authorID string) (int, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	deleted := 0
	for id, post := range m.posts {
		if post.AuthorID == authorID {
			delete(m.posts, id)
			deleted++
		}
	}
	return deleted, nil
}
