package cloud

import (
	"context"
	"net/http"
	"net/url"
)

// CreateProjectParams is the input for project creation. UID lets the
// caller pin the repository identifier up front.
type CreateProjectParams struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description,omitempty"`
	UID         *string `json:"uid,omitempty"`
}

// UpdateProjectParams is the input for a project update.
type UpdateProjectParams struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description,omitempty"`
}

// CreateProject creates a repository-backed project.
func (c *Client) CreateProject(ctx context.Context, token string, params CreateProjectParams) (Project, error) {
	if err := Validate(params); err != nil {
		return Project{}, err
	}

	var p Project
	if err := c.DoAuthenticated(ctx, http.MethodPost, "projects.json", token, &p, WithPayload(params)); err != nil {
		return Project{}, err
	}

	return p, nil
}

// ListProjects returns all projects of the authenticated user.
func (c *Client) ListProjects(ctx context.Context, token string) ([]Project, error) {
	var projects []Project
	if err := c.DoAuthenticated(ctx, http.MethodGet, "projects.json", token, &projects); err != nil {
		return nil, err
	}

	return projects, nil
}

// GetProject fetches a single project by its repository ID.
func (c *Client) GetProject(ctx context.Context, token, repositoryID string) (Project, error) {
	var p Project
	if err := c.DoAuthenticated(ctx, http.MethodGet, projectPath(repositoryID), token, &p); err != nil {
		return Project{}, err
	}

	return p, nil
}

// UpdateProject updates a project's name and description.
func (c *Client) UpdateProject(ctx context.Context, token, repositoryID string, params UpdateProjectParams) (Project, error) {
	if err := Validate(params); err != nil {
		return Project{}, err
	}

	var p Project
	if err := c.DoAuthenticated(ctx, http.MethodPut, projectPath(repositoryID), token, &p, WithPayload(params)); err != nil {
		return Project{}, err
	}

	return p, nil
}

// DeleteProject deletes a project. The server answers 204; there is
// nothing to decode.
func (c *Client) DeleteProject(ctx context.Context, token, repositoryID string) error {
	return c.DoAuthenticated(ctx, http.MethodDelete, projectPath(repositoryID), token, nil)
}

func projectPath(repositoryID string) string {
	return "projects/" + url.PathEscape(repositoryID) + ".json"
}
