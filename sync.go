package cloud

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// DefaultSyncBackendURL is where the local application backend listens
// for inter-process calls.
const DefaultSyncBackendURL = "http://127.0.0.1:52100"

// SyncOption is a functional option for [TriggerCloudSync].
type SyncOption func(*syncOpts)

type syncOpts struct {
	backendURL string
	client     *http.Client
	logger     *slog.Logger
}

// WithSyncBackend overrides the local backend address.
func WithSyncBackend(u string) SyncOption {
	return func(opts *syncOpts) {
		opts.backendURL = u
	}
}

// WithSyncClient replaces the [http.Client] used for the backend call.
func WithSyncClient(hc *http.Client) SyncOption {
	return func(opts *syncOpts) {
		opts.client = hc
	}
}

// WithSyncLogger injects a custom [slog.Logger].
func WithSyncLogger(logger *slog.Logger) SyncOption {
	return func(opts *syncOpts) {
		opts.logger = logger
	}
}

// TriggerCloudSync asks the local application backend to flush any pending
// changes of the given project and push them to the cloud. It is
// fire-and-forget: an empty project ID performs no call at all, and every
// failure is logged rather than returned. Cloud sync is never on the
// critical path of a caller.
func TriggerCloudSync(ctx context.Context, projectID string, optFns ...SyncOption) {
	if projectID == "" {
		return
	}

	opts := syncOpts{
		backendURL: DefaultSyncBackendURL,
		client:     &http.Client{Timeout: 10 * time.Second},
		logger:     slog.Default(),
	}
	for _, opt := range optFns {
		opt(&opts)
	}

	payload, err := json.Marshal(map[string]string{"project_id": projectID})
	if err != nil {
		opts.logger.Error("cloud sync: encoding payload", "project_id", projectID, "error", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, opts.backendURL+"/flush_and_push", bytes.NewReader(payload))
	if err != nil {
		opts.logger.Error("cloud sync: building request", "project_id", projectID, "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := opts.client.Do(req)
	if err != nil {
		opts.logger.Error("cloud sync: flush and push", "project_id", projectID, "error", err)
		return
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBodySize))
		opts.logger.Error("cloud sync: backend refused flush and push",
			"project_id", projectID, "status", resp.StatusCode, "body", string(b))
	}
}
