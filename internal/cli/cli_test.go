package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"quoteportal/internal/portal"

	"github.com/stretchr/testify/require"
)

// fakeBackend serves one quote record and records status writes.
type fakeBackend struct {
	quote  map[string]any
	role   string
	writes []string
	fail   bool
}

func (b *fakeBackend) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	write := func(w http.ResponseWriter, status int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}
	mux.HandleFunc("/api/login", func(w http.ResponseWriter, r *http.Request) {
		write(w, http.StatusOK, map[string]any{"success": true, "role": b.role})
	})
	mux.HandleFunc("/api/requestquote-getitems/abc", func(w http.ResponseWriter, r *http.Request) {
		write(w, http.StatusOK, map[string]any{"success": true, "quote": b.quote})
	})
	status := func(key, field string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			b.writes = append(b.writes, field+"="+body[key])
			if b.fail {
				write(w, http.StatusOK, map[string]any{"success": false, "message": "Failed to update status"})
				return
			}
			b.quote[field] = body[key]
			write(w, http.StatusOK, map[string]any{"success": true, "quote": b.quote})
		}
	}
	mux.HandleFunc("/api/update-quote-status/abc", status("status", "status"))
	mux.HandleFunc("/api/update-tracking-status/abc", status("status", "trackingStatus"))
	mux.HandleFunc("/api/update-payment-status/abc", status("paymentStatus", "paymentStatus"))
	return mux
}

func newBackend(role string) *fakeBackend {
	return &fakeBackend{
		role:  role,
		quote: map[string]any{"_id": "abc", "name": "Ana", "status": "Pending", "trackingStatus": "Ordered", "paymentStatus": "Pending"},
	}
}

func run(t *testing.T, b *fakeBackend, args ...string) (string, error) {
	t.Helper()
	srv := httptest.NewServer(b.handler(t))
	t.Cleanup(srv.Close)

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--api", srv.URL + "/api", "--email", "admin@example.com", "--password", "x", "--admin"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestApproveQuote(t *testing.T) {
	b := newBackend("admin")
	out, err := run(t, b, "quotes", "approve", "abc")
	require.NoError(t, err)
	require.Equal(t, []string{"status=Approved"}, b.writes)
	require.Contains(t, out, "Pending -> ✔ Approved")
}

func TestRevokeNotOfferedFromPending(t *testing.T) {
	b := newBackend("admin")
	_, err := run(t, b, "quotes", "revoke", "abc")
	require.ErrorIs(t, err, portal.ErrActionNotOffered)
	require.Empty(t, b.writes)
}

func TestTrackingNext(t *testing.T) {
	b := newBackend("admin")
	_, err := run(t, b, "tracking", "next", "abc")
	require.NoError(t, err)
	require.Equal(t, []string{"trackingStatus=In Production"}, b.writes)
}

func TestTrackingPreviousAtFirstStageIsNoop(t *testing.T) {
	b := newBackend("admin")
	out, err := run(t, b, "tracking", "previous", "abc")
	require.NoError(t, err)
	require.Empty(t, b.writes)
	require.Contains(t, out, "unchanged")
}

func TestPaymentToggleFailureIsReported(t *testing.T) {
	b := newBackend("admin")
	b.fail = true
	out, err := run(t, b, "payments", "toggle", "abc")
	require.Error(t, err)
	require.Equal(t, []string{"paymentStatus=Paid"}, b.writes)
	require.Contains(t, out, "rolled back")
	require.Contains(t, out, "Failed to update status")
}

func TestAdminCommandsNeedAdminRole(t *testing.T) {
	b := newBackend("user")
	_, err := run(t, b, "payments", "set", "abc", "Paid")
	require.ErrorIs(t, err, portal.ErrAdminRequired)
	require.Empty(t, b.writes)
}

func TestTrackingShow(t *testing.T) {
	b := newBackend("admin")
	b.quote["trackingStatus"] = "Testing"
	out, err := run(t, b, "tracking", "show", "abc")
	require.NoError(t, err)
	require.True(t, strings.Contains(out, "[>] 🧪 Testing"), out)
	require.Contains(t, out, "[x] 📦 Ordered")
}

func TestPaymentPayload(t *testing.T) {
	raw, err := paymentPayload("", "pix", "buyer@example.com")
	require.NoError(t, err)
	require.JSONEq(t, `{"payment_method_id":"pix","payer":{"email":"buyer@example.com"}}`, string(raw))

	_, err = paymentPayload("{", "", "")
	require.ErrorIs(t, err, portal.ErrInvalidInput)
}
