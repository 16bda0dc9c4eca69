package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Author represents a blog author. UserName must be unique across all
// authors; the service layer checks uniqueness before any write.
type Author struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	UserName  string `json:"userName" validate:"required"`
}

// BlogPost represents a blog post referencing exactly one Author.
// Comments are embedded in the post document.
type BlogPost struct {
	ID       string    `json:"id"`
	Title    string    `json:"title" validate:"required"`
	Content  string    `json:"content" validate:"required"`
	AuthorID string    `json:"author_id" validate:"required"`
	Comments []Comment `json:"comments,omitempty" validate:"-"`
	Created  time.Time `json:"created"`
}

// Comment is a single comment embedded in a blog post.
type Comment struct {
	Content string `json:"content" validate:"required"`
}
