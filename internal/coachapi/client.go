package coachapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultBaseURL = "https://api.swinglab.app"
	defaultTimeout = 30 * time.Second
)

// Client interfaces with the SwingLab coaching API. Every method performs a
// single request with no retry or backoff; callers decide how to react to a
// failure.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a new coaching API client. An empty baseURL selects the
// production endpoint.
func NewClient(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// SubmitSwingRequest carries one recorded swing to the analysis backend.
type SubmitSwingRequest struct {
	UserID     string          `json:"user_id"`
	SessionID  string          `json:"session_id"`
	SwingType  string          `json:"swing_type"`
	RecordedAt time.Time       `json:"recorded_at"`
	Keypoints  json.RawMessage `json:"keypoints,omitempty"`
}

// SwingSubmission is the backend's acknowledgement of a submitted swing.
type SwingSubmission struct {
	AnalysisID      string  `json:"analysis_id"`
	Status          string  `json:"status"`
	Score           float64 `json:"score"`
	Recommendations string  `json:"recommendations"`
}

// VideoUpload describes where an uploaded session video landed.
type VideoUpload struct {
	SessionID string `json:"session_id"`
	VideoURL  string `json:"video_url"`
	SizeBytes int64  `json:"size_bytes"`
}

// Feedback is coaching feedback attached to one analysis.
type Feedback struct {
	AnalysisID string    `json:"analysis_id"`
	Summary    string    `json:"summary"`
	Drills     []string  `json:"drills"`
	CreatedAt  time.Time `json:"created_at"`
}

// FeedbackSubmission is free-form feedback a user sends about the app.
type FeedbackSubmission struct {
	UserID   string `json:"user_id"`
	Category string `json:"category"`
	Message  string `json:"message"`
	Rating   int    `json:"rating,omitempty"`
}

// CoachingTip is one piece of coaching advice.
type CoachingTip struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Text     string `json:"text"`
	Level    string `json:"level"`
	ClubType string `json:"club_type"`
}

// ProgressSnapshot mirrors the locally stored progress summary on the wire.
type ProgressSnapshot struct {
	UserID            string     `json:"user_id"`
	TotalSwings       int        `json:"total_swings"`
	SessionsCompleted int        `json:"sessions_completed"`
	AverageScore      float64    `json:"average_score"`
	BestScore         float64    `json:"best_score"`
	StreakDays        int        `json:"streak_days"`
	LastSessionAt     *time.Time `json:"last_session_at,omitempty"`
}

// LeaderboardEntry is one ranked row of a leaderboard.
type LeaderboardEntry struct {
	Rank        int     `json:"rank"`
	UserID      string  `json:"user_id"`
	DisplayName string  `json:"display_name"`
	Score       float64 `json:"score"`
}

// Leaderboard is a ranked listing for one category and timeframe.
type Leaderboard struct {
	Category  string             `json:"category"`
	Timeframe string             `json:"timeframe"`
	Entries   []LeaderboardEntry `json:"entries"`
}

// SubmitSwing submits a recorded swing for analysis.
func (c *Client) SubmitSwing(ctx context.Context, req SubmitSwingRequest) (*SwingSubmission, error) {
	var submission SwingSubmission
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/swings", req, &submission); err != nil {
		return nil, err
	}
	return &submission, nil
}

// UploadVideo uploads raw video bytes for a session.
func (c *Client) UploadVideo(ctx context.Context, sessionID string, video []byte) (*VideoUpload, error) {
	endpoint := fmt.Sprintf("%s/api/v1/sessions/%s/video", c.baseURL, url.PathEscape(sessionID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(video))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	c.setAuth(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var upload VideoUpload
	if err := json.NewDecoder(resp.Body).Decode(&upload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &upload, nil
}

// GetFeedback fetches coaching feedback for an analysis. Returns (nil, nil)
// when no feedback is available yet.
func (c *Client) GetFeedback(ctx context.Context, analysisID string) (*Feedback, error) {
	path := "/api/v1/analyses/" + url.PathEscape(analysisID) + "/feedback"
	var feedback Feedback
	err := c.doJSON(ctx, http.MethodGet, path, nil, &feedback)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &feedback, nil
}

// SubmitFeedback sends a user's free-form feedback.
func (c *Client) SubmitFeedback(ctx context.Context, submission FeedbackSubmission) error {
	return c.doJSON(ctx, http.MethodPost, "/api/v1/feedback", submission, nil)
}

// GetCoachingTips fetches tips filtered by user level and club type.
func (c *Client) GetCoachingTips(ctx context.Context, level, clubType string) ([]CoachingTip, error) {
	q := url.Values{}
	q.Set("level", level)
	q.Set("club", clubType)

	var tips []CoachingTip
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/tips?"+q.Encode(), nil, &tips); err != nil {
		return nil, err
	}
	return tips, nil
}

// SyncProgress pushes a user's progress snapshot to the backend.
func (c *Client) SyncProgress(ctx context.Context, snapshot ProgressSnapshot) error {
	path := "/api/v1/users/" + url.PathEscape(snapshot.UserID) + "/progress"
	return c.doJSON(ctx, http.MethodPut, path, snapshot, nil)
}

// GetLeaderboard fetches the leaderboard for a category and timeframe.
func (c *Client) GetLeaderboard(ctx context.Context, category, timeframe string) (*Leaderboard, error) {
	q := url.Values{}
	q.Set("category", category)
	q.Set("timeframe", timeframe)

	var board Leaderboard
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/leaderboard?"+q.Encode(), nil, &board); err != nil {
		return nil, err
	}
	return &board, nil
}

func (c *Client) setAuth(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

// doJSON performs one request with an optional JSON body and decodes the
// JSON response into out when out is non-nil.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.setAuth(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimited
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode >= 500:
		return &ServerError{StatusCode: resp.StatusCode}
	case resp.StatusCode >= 300:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
