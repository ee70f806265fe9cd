package cloud

import "time"

// Entities are server-owned value shapes. The client only decodes them;
// there is no local mutation or caching.

// User is the remote account record returned by the login and user
// endpoints. AccessToken authenticates all subsequent requests.
type User struct {
	ID                int       `json:"id"`
	Name              string    `json:"name"`
	GivenName         string    `json:"given_name"`
	FamilyName        string    `json:"family_name"`
	Email             string    `json:"email"`
	Picture           string    `json:"picture"`
	Locale            string    `json:"locale"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
	AccessToken       string    `json:"access_token"`
	Role              *string   `json:"role"`
	Supporter         *bool     `json:"supporter"`
	GitHubAccessToken *string   `json:"github_access_token"`
	GitHubUsername    *string   `json:"github_username"`
}

// Project is a repository-backed cloud project. RepositoryID identifies
// it in endpoint paths.
type Project struct {
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	RepositoryID string    `json:"repository_id"`
	GitURL       string    `json:"git_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Feedback is a submitted feedback record.
type Feedback struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Feedback  string    `json:"feedback"`
	Context   string    `json:"context"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginToken is the ephemeral token driving the polling-based login flow:
// the user confirms at URL in a browser while the application polls
// [Client.GetLoginUser] with Token until the server recognizes it.
type LoginToken struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
	URL     string    `json:"url"`
}
