package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hacklabr/wordpress-linkedin-login/internal/session"
)

type fakeStore struct {
	sessions map[string]*session.Session
	deleted  []string
}

func (f *fakeStore) Create(_ context.Context, s session.Session) error {
	f.sessions[s.SessionID] = &s
	return nil
}

func (f *fakeStore) Get(_ context.Context, id string) (*session.Session, error) {
	return f.sessions[id], nil
}

func (f *fakeStore) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	delete(f.sessions, id)
	return nil
}

func protected(t *testing.T, store session.Store) http.Handler {
	t.Helper()

	mw := NewAuthMiddleware(store)
	return mw.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := UserIDFromContext(r.Context())
		require.True(t, ok)
		_, _ = w.Write([]byte(userID))
	}))
}

func TestRequireAuthAllowsValidSession(t *testing.T) {
	store := &fakeStore{sessions: map[string]*session.Session{
		"sess-1": {SessionID: "sess-1", UserID: "user-1", ExpiresAt: time.Now().Add(time.Hour)},
	}}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "sess-1"})

	protected(t, store).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "user-1", rec.Body.String())
}

func TestRequireAuthRejectsMissingCookie(t *testing.T) {
	store := &fakeStore{sessions: map[string]*session.Session{}}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)

	protected(t, store).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthRejectsUnknownSession(t *testing.T) {
	store := &fakeStore{sessions: map[string]*session.Session{}}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "nope"})

	protected(t, store).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthDeletesExpiredSession(t *testing.T) {
	store := &fakeStore{sessions: map[string]*session.Session{
		"sess-1": {SessionID: "sess-1", UserID: "user-1", ExpiresAt: time.Now().Add(-time.Minute)},
	}}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "sess-1"})

	protected(t, store).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, []string{"sess-1"}, store.deleted)
}
