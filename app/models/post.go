package models

import "time"

// PostView is the wire representation of a BlogPost. Author carries the
// referenced author's composed display name.
type PostView struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Author   string    `json:"author"`
	Content  string    `json:"content"`
	Comments []Comment `json:"comments,omitempty"`
	Created  time.Time `json:"created"`
}

// Validate checks if the post meets all validation requirements
func (p *BlogPost) Validate() error {
	return validate.Struct(p)
}

// BeforeCreate sets up any necessary fields before creation
func (p *BlogPost) BeforeCreate() {
	if p.Created.IsZero() {
		p.Created = time.Now()
	}
}

// AddComment appends a comment to the post's embedded comment list.
func (p *BlogPost) AddComment(comment Comment) {
	p.Comments = append(p.Comments, comment)
}

// Serialize produces the wire representation of the post. The author
// reference must already be resolved; a nil author yields an empty name.
func (p *BlogPost) Serialize(author *Author) PostView {
	view := PostView{
		ID:       p.ID,
		Title:    p.Title,
		Content:  p.Content,
		Comments: p.Comments,
		Created:  p.Created,
	}
	if author != nil {
		view.Author = author.DisplayName()
	}
	return view
}
