package coachapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClient_SubmitSwing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/swings" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-token" {
			t.Errorf("expected bearer token, got %q", r.Header.Get("Authorization"))
		}

		var req SubmitSwingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.SwingType != "drive" {
			t.Errorf("expected swing type drive, got %q", req.SwingType)
		}

		json.NewEncoder(w).Encode(SwingSubmission{
			AnalysisID: "an-1",
			Status:     "queued",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")

	submission, err := client.SubmitSwing(context.Background(), SubmitSwingRequest{
		UserID:     "u1",
		SessionID:  "s1",
		SwingType:  "drive",
		RecordedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("SubmitSwing failed: %v", err)
	}
	if submission.AnalysisID != "an-1" {
		t.Errorf("expected analysis ID an-1, got %q", submission.AnalysisID)
	}
}

func TestClient_UploadVideo(t *testing.T) {
	payload := []byte("fake-video-bytes")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/sessions/s1/video" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Content-Type") != "application/octet-stream" {
			t.Errorf("unexpected content type %q", r.Header.Get("Content-Type"))
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != string(payload) {
			t.Errorf("body mismatch: got %d bytes", len(body))
		}

		json.NewEncoder(w).Encode(VideoUpload{
			SessionID: "s1",
			VideoURL:  "https://cdn.swinglab.app/s1.mp4",
			SizeBytes: int64(len(payload)),
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "")

	upload, err := client.UploadVideo(context.Background(), "s1", payload)
	if err != nil {
		t.Fatalf("UploadVideo failed: %v", err)
	}
	if upload.SizeBytes != int64(len(payload)) {
		t.Errorf("expected %d bytes, got %d", len(payload), upload.SizeBytes)
	}
}

func TestClient_GetFeedback_NotReady(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")

	feedback, err := client.GetFeedback(context.Background(), "an-1")
	if err != nil {
		t.Fatalf("expected absence, got error: %v", err)
	}
	if feedback != nil {
		t.Errorf("expected nil feedback, got %+v", feedback)
	}
}

func TestClient_GetCoachingTips(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("level") != "Beginner" || r.URL.Query().Get("club") != "driver" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode([]CoachingTip{
			{ID: "tip-1", Title: "Grip", Level: "Beginner", ClubType: "driver"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "")

	tips, err := client.GetCoachingTips(context.Background(), "Beginner", "driver")
	if err != nil {
		t.Fatalf("GetCoachingTips failed: %v", err)
	}
	if len(tips) != 1 || tips[0].ID != "tip-1" {
		t.Errorf("unexpected tips: %+v", tips)
	}
}

func TestClient_GetLeaderboard(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Leaderboard{
			Category:  "drive_distance",
			Timeframe: "weekly",
			Entries:   []LeaderboardEntry{{Rank: 1, UserID: "u9", Score: 98}},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "")

	board, err := client.GetLeaderboard(context.Background(), "drive_distance", "weekly")
	if err != nil {
		t.Fatalf("GetLeaderboard failed: %v", err)
	}
	if len(board.Entries) != 1 || board.Entries[0].Rank != 1 {
		t.Errorf("unexpected leaderboard: %+v", board)
	}
}

func TestClient_ErrorClassification(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		check      func(t *testing.T, err error)
	}{
		{
			name:       "unauthorized",
			statusCode: http.StatusUnauthorized,
			check: func(t *testing.T, err error) {
				if !errors.Is(err, ErrUnauthorized) {
					t.Errorf("expected ErrUnauthorized, got %v", err)
				}
			},
		},
		{
			name:       "rate limited",
			statusCode: http.StatusTooManyRequests,
			check: func(t *testing.T, err error) {
				if !errors.Is(err, ErrRateLimited) {
					t.Errorf("expected ErrRateLimited, got %v", err)
				}
			},
		},
		{
			name:       "server error",
			statusCode: http.StatusServiceUnavailable,
			check: func(t *testing.T, err error) {
				var serverErr *ServerError
				if !errors.As(err, &serverErr) {
					t.Fatalf("expected ServerError, got %v", err)
				}
				if serverErr.StatusCode != http.StatusServiceUnavailable {
					t.Errorf("expected status 503, got %d", serverErr.StatusCode)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))
			defer server.Close()

			client := NewClient(server.URL, "")
			_, err := client.SubmitSwing(context.Background(), SubmitSwingRequest{})
			if err == nil {
				t.Fatal("expected an error")
			}
			tt.check(t, err)
		})
	}
}

func TestClient_SyncProgress(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/v1/users/u1/progress" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")

	err := client.SyncProgress(context.Background(), ProgressSnapshot{UserID: "u1", TotalSwings: 10})
	if err != nil {
		t.Fatalf("SyncProgress failed: %v", err)
	}
}
