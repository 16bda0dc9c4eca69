package repositories

import (
	"blogapi/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerAuthorRepository implements AuthorRepository using BadgerDB
type BadgerAuthorRepository struct {
	db *badger.DB
}

// NewBadgerAuthorRepository creates a new BadgerAuthorRepository
func NewBadgerAuthorRepository(db *badger.DB) *BadgerAuthorRepository {
	return &BadgerAuthorRepository{db: db}
}

// Create stores a new author, assigning it an identifier.
func (r *BadgerAuthorRepository) Create(author *models.Author) error {
	return r.db.Update(func(txn *badger.Txn) error {
		author.ID = newID()

		data, err := marshalEntity(author)
		if err != nil {
			return err
		}

		return txn.Set(authorKey(author.ID), data)
	})
}

// GetByID retrieves an author by ID
func (r *BadgerAuthorRepository) GetByID(id string) (*models.Author, error) {
	var author models.Author

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(authorKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &author)
		})
	})

	if err != nil {
		return nil, err
	}
	return &author, nil
}

// FindByUserName retrieves the author with the given user name, or
// ErrNotFound when no author has it.
func (r *BadgerAuthorRepository) FindByUserName(userName string) (*models.Author, error) {
	var found *models.Author

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(AuthorKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var author models.Author
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &author)
			})
			if err != nil {
				return err
			}

			if author.UserName == userName {
				found = &author
				return nil
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}

// List retrieves all authors
func (r *BadgerAuthorRepository) List() ([]*models.Author, error) {
	var authors []*models.Author

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(AuthorKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var author models.Author
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &author)
			})
			if err != nil {
				return err
			}
			authors = append(authors, &author)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return authors, nil
}

// Update overwrites an existing author document.
func (r *BadgerAuthorRepository) Update(author *models.Author) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := authorKey(author.ID)

		// Verify author exists
		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		data, err := marshalEntity(author)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
}

// Delete deletes an author by ID
func (r *BadgerAuthorRepository) Delete(id string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := authorKey(id)

		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return txn.Delete(key)
	})
}
