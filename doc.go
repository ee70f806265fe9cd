// Package cloud is a typed client for the Gitloom cloud API: login tokens,
// user profile, feedback submission, AI prompt evaluation, and project CRUD.
//
// # Building a Client
//
// Use [Build] with the API base URL and functional options:
//
//	c, err := cloud.Build("https://app.gitloom.com/api/",
//		cloud.WithTimeout(10*time.Second),
//		cloud.WithUserAgent("gitloom-desktop/1.0"),
//	)
//
// The base URL must already include the API root segment; every endpoint
// path is resolved relative to it.
//
// # Calling the API
//
// Each endpoint has a dedicated method that pins the verb, path, and
// headers. Authenticated methods take the auth token issued by the login
// flow:
//
//	token, err := c.CreateLoginToken(ctx)
//	// ... user completes login in the browser at token.URL ...
//	user, err := c.GetLoginUser(ctx, token.Token)
//
//	project, err := c.CreateProject(ctx, user.AccessToken, cloud.CreateProjectParams{
//		Name: "my-repo",
//	})
//
// Lower-level access is available through [Client.Do] and
// [Client.DoAuthenticated] for endpoints not yet covered by a typed method.
//
// # Errors
//
// A response with status >= 400 yields a [*RequestError] carrying the
// status text and raw body, wrapping [ErrRequestFailed]. 401 and 403
// additionally match [ErrAuthFailure] via [errors.Is]. Statuses 204 and
// 205 decode to nothing.
//
// # Cloud sync
//
// [TriggerCloudSync] asks the local application backend to flush and push
// a project. It is fire-and-forget: failures are logged, never returned.
package cloud
