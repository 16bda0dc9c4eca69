package models

import "strings"

// AuthorView is the wire representation of an Author.
type AuthorView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	UserName string `json:"userName"`
}

// Validate checks if the author meets all validation requirements
func (a *Author) Validate() error {
	return validate.Struct(a)
}

// DisplayName composes the author's first and last name, trimmed of
// incidental whitespace.
func (a *Author) DisplayName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// Serialize produces the wire representation of the author.
func (a *Author) Serialize() AuthorView {
	return AuthorView{
		ID:       a.ID,
		Name:     a.DisplayName(),
		UserName: a.UserName,
	}
}
