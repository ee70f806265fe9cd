package cloud

import (
	"context"
	"io"
	"net/http"
)

// UpdateUserParams holds the mutable profile fields. Zero-value fields are
// left out of the multipart request entirely.
type UpdateUserParams struct {
	Name string

	// Picture is the new avatar image content. PictureFilename names the
	// uploaded part and defaults to "avatar.png".
	Picture         io.Reader
	PictureFilename string
}

// GetUser returns the profile of the authenticated user.
func (c *Client) GetUser(ctx context.Context, token string) (User, error) {
	var u User
	if err := c.DoAuthenticated(ctx, http.MethodGet, "user.json", token, &u); err != nil {
		return User{}, err
	}

	return u, nil
}

// UpdateUser updates profile fields via multipart form, appending only the
// fields present in params, and returns the updated user.
func (c *Client) UpdateUser(ctx context.Context, token string, params UpdateUserParams) (User, error) {
	form := NewForm().AddField("name", params.Name)
	if params.Picture != nil {
		filename := params.PictureFilename
		if filename == "" {
			filename = "avatar.png"
		}
		form.AddFile("avatar", filename, params.Picture)
	}

	var u User
	if err := c.DoAuthenticated(ctx, http.MethodPut, "user.json", token, &u, WithForm(form)); err != nil {
		return User{}, err
	}

	return u, nil
}
