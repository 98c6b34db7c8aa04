package clash

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clashberry/internal/config"
)

const warBody = `{
	"state": "inWar",
	"teamSize": 15,
	"warType": "regular",
	"cwlRound": null,
	"timeRemaining": "3h 20m",
	"timeLabel": "remaining",
	"clan": {"tag": "#ABC123", "name": "Berry Pickers", "badge": "b.png", "stars": 12, "attacks": 8, "destructionPercentage": 45.5, "members": []},
	"opponent": {"tag": "#XYZ789", "name": "Lemon Squad", "badge": "l.png", "stars": 10, "attacks": 9, "destructionPercentage": 40.1, "members": []}
}`

// newTestServer serves a fixed status and body and records the request path
func newTestServer(t *testing.T, status int, body string, path *string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if path != nil {
			*path = r.URL.EscapedPath()
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:5000/")

	if client.baseURL != "http://localhost:5000" {
		t.Errorf("Expected trailing slash trimmed, got '%s'", client.baseURL)
	}

	if client.client.Timeout != 30*time.Second {
		t.Errorf("Expected timeout 30s, got %v", client.client.Timeout)
	}

	if client.apiCallCount != 0 {
		t.Errorf("Expected API call count 0, got %d", client.apiCallCount)
	}
}

func TestNewClientWithConfig(t *testing.T) {
	client := NewClientWithConfig("http://localhost:5000", config.DefaultHTTPClientConfig.WithTimeout(2*time.Second))

	if client.client.Timeout != 2*time.Second {
		t.Errorf("Expected timeout 2s, got %v", client.client.Timeout)
	}
}

func TestAPICallCounter(t *testing.T) {
	client := NewClient("http://localhost:5000")

	if count := client.GetAPICallCount(); count != 0 {
		t.Errorf("Expected initial count 0, got %d", count)
	}

	client.IncrementAPICall()
	client.IncrementAPICall()
	if count := client.GetAPICallCount(); count != 2 {
		t.Errorf("Expected count 2 after increments, got %d", count)
	}

	client.ResetAPICallCount()
	if count := client.GetAPICallCount(); count != 0 {
		t.Errorf("Expected count 0 after reset, got %d", count)
	}
}

func TestGetWarData(t *testing.T) {
	var path string
	server := newTestServer(t, http.StatusOK, warBody, &path)
	client := NewClient(server.URL)

	resp, err := client.GetWarData(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if path != "/api/war/%23ABC123" {
		t.Errorf("Expected escaped path /api/war/%%23ABC123, got %s", path)
	}
	if resp.State != "inWar" || resp.TeamSize != 15 {
		t.Errorf("Unexpected war response %+v", resp)
	}
	if resp.Clan == nil || resp.Clan.Tag != "#ABC123" || resp.Opponent == nil || resp.Opponent.Tag != "#XYZ789" {
		t.Errorf("Expected both clans decoded, got %+v / %+v", resp.Clan, resp.Opponent)
	}
	if resp.TimeRemaining == nil || *resp.TimeRemaining != "3h 20m" {
		t.Errorf("Expected time remaining '3h 20m', got %v", resp.TimeRemaining)
	}
	if client.GetAPICallCount() != 1 {
		t.Errorf("Expected 1 API call, got %d", client.GetAPICallCount())
	}
}

func TestGetWarDataErrorMapping(t *testing.T) {
	testCases := []struct {
		name         string
		status       int
		body         string
		expectedKind ErrorKind
		expectedKey  string
	}{
		{"AccessDenied", http.StatusForbidden, `{"reason":"accessDenied","message":"private"}`, KindAccessDenied, "private_war_log"},
		{"LegacyPrivateWarLog", http.StatusForbidden, `{"error":"private_war_log","message":"This clan has a private war log.","clan":{"tag":"#ABC123","name":"Berry","badge":""}}`, KindAccessDenied, "private_war_log"},
		{"ForbiddenOtherReason", http.StatusForbidden, `{"reason":"invalidIp","message":"nope"}`, KindServer, "server_error"},
		{"NotFound", http.StatusNotFound, `{"reason":"notFound","message":"Clan not found"}`, KindNotFound, "clan_not_found"},
		{"NotFoundWithoutBody", http.StatusNotFound, ``, KindNotFound, "clan_not_found"},
		{"LegacyNotInWar", http.StatusNotFound, `{"error":"not_in_war","message":"This clan is not currently in a war."}`, KindNoWar, "not_in_war"},
		{"ServerError", http.StatusInternalServerError, `{"error":"server_error","message":"boom"}`, KindServer, "server_error"},
		{"BadGateway", http.StatusBadGateway, `<html>bad gateway</html>`, KindServer, "server_error"},
		{"TooManyRequests", http.StatusTooManyRequests, `{}`, KindServer, "server_error"},
		{"MalformedSuccessBody", http.StatusOK, `{"state": 12`, KindParse, "parse_error"},
		{"WrongSchema", http.StatusOK, `{"teamSize": "fifteen"}`, KindParse, "parse_error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := newTestServer(t, tc.status, tc.body, nil)
			client := NewClient(server.URL)

			_, err := client.GetWarData(context.Background(), "#ABC123")
			if err == nil {
				t.Fatal("Expected an error, got nil")
			}

			var fetchErr *FetchError
			if !errors.As(err, &fetchErr) {
				t.Fatalf("Expected *FetchError, got %T", err)
			}
			if fetchErr.Kind != tc.expectedKind {
				t.Errorf("Expected kind %v, got %v", tc.expectedKind, fetchErr.Kind)
			}
			if fetchErr.Kind.MessageKey() != tc.expectedKey {
				t.Errorf("Expected message key %q, got %q", tc.expectedKey, fetchErr.Kind.MessageKey())
			}
			if fetchErr.StatusCode != tc.status {
				t.Errorf("Expected status %d, got %d", tc.status, fetchErr.StatusCode)
			}
		})
	}
}

func TestGetWarDataKeepsErrorClan(t *testing.T) {
	body := `{"error":"private_war_log","message":"This clan has a private war log.","clan":{"tag":"#ABC123","name":"Berry","badge":"b.png"}}`
	server := newTestServer(t, http.StatusForbidden, body, nil)

	_, err := NewClient(server.URL).GetWarData(context.Background(), "#ABC123")

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("Expected *FetchError, got %v", err)
	}
	if fetchErr.Clan == nil || fetchErr.Clan.Name != "Berry" {
		t.Errorf("Expected clan info from error body, got %+v", fetchErr.Clan)
	}
	if fetchErr.Message != "This clan has a private war log." {
		t.Errorf("Unexpected message %q", fetchErr.Message)
	}
}

func TestGetWarDataTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewClient(url).GetWarData(context.Background(), "#ABC123")

	if KindOf(err) != KindTransport {
		t.Errorf("Expected KindTransport, got %v (%v)", KindOf(err), err)
	}
}

func TestGetWarDataCanceledContext(t *testing.T) {
	server := newTestServer(t, http.StatusOK, warBody, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(server.URL).GetWarData(ctx, "#ABC123")

	if KindOf(err) != KindTransport {
		t.Errorf("Expected KindTransport, got %v", KindOf(err))
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected error chain to contain context.Canceled, got %v", err)
	}
}

func TestGetWarDataEmptyTag(t *testing.T) {
	client := NewClient("http://localhost:5000")

	_, err := client.GetWarData(context.Background(), "   ")

	if !errors.Is(err, ErrEmptyClanTag) {
		t.Errorf("Expected ErrEmptyClanTag, got %v", err)
	}
	if client.GetAPICallCount() != 0 {
		t.Errorf("Expected no API call, got %d", client.GetAPICallCount())
	}
}

func TestGetClanInfo(t *testing.T) {
	var path string
	body := `{"tag":"#ABC123","name":"Berry Pickers","badge":"b.png","level":12,"members":48,"isWarLogPublic":true}`
	server := newTestServer(t, http.StatusOK, body, &path)

	info, err := NewClient(server.URL).GetClanInfo(context.Background(), "#abc123")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if path != "/api/clan/%23ABC123" {
		t.Errorf("Expected escaped path /api/clan/%%23ABC123, got %s", path)
	}
	if info.Level != 12 || info.MemberCount != 48 || !info.IsWarLogPublic {
		t.Errorf("Unexpected clan info %+v", info)
	}
}

func TestGetClanInfoNotFound(t *testing.T) {
	server := newTestServer(t, http.StatusNotFound, `{"error":"clan_not_found","message":"Clan not found"}`, nil)

	_, err := NewClient(server.URL).GetClanInfo(context.Background(), "#NOPE")

	if KindOf(err) != KindNotFound {
		t.Errorf("Expected KindNotFound, got %v", KindOf(err))
	}
}
