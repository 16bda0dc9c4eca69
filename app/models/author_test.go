package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorDisplayName(t *testing.T) {
	t.Run("composes first and last name", func(t *testing.T) {
		author := &Author{FirstName: "Jane", LastName: "Doe"}
		assert.Equal(t, "Jane Doe", author.DisplayName())
	})

	t.Run("trims incidental whitespace", func(t *testing.T) {
		author := &Author{FirstName: " Jane ", LastName: ""}
		assert.Equal(t, "Jane", author.DisplayName())

		author = &Author{FirstName: "", LastName: "Doe"}
		assert.Equal(t, "Doe", author.DisplayName())
	})
}

func TestAuthorSerialize(t *testing.T) {
	author := &Author{
		ID:        "abc-123",
		FirstName: "Jane",
		LastName:  "Doe",
		UserName:  "janedoe",
	}

	view := author.Serialize()
	assert.Equal(t, "abc-123", view.ID)
	assert.Equal(t, "Jane Doe", view.Name)
	assert.Equal(t, "janedoe", view.UserName)
}

func TestAuthorValidate(t *testing.T) {
	t.Run("valid author", func(t *testing.T) {
		author := &Author{FirstName: "Jane", LastName: "Doe", UserName: "janedoe"}
		assert.NoError(t, author.Validate())
	})

	t.Run("missing user name", func(t *testing.T) {
		author := &Author{FirstName: "Jane", LastName: "Doe"}
		assert.Error(t, author.Validate())
	})

	t.Run("missing first name", func(t *testing.T) {
		author := &Author{LastName: "Doe", UserName: "janedoe"}
		assert.Error(t, author.Validate())
	})
}
