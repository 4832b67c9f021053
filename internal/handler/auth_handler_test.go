package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"kakao-gateway/config"
	"kakao-gateway/internal/kakao"
	"kakao-gateway/internal/services"
)

func newAuthRouter(authBaseURL, apiBaseURL string) *gin.Engine {
	cfg := &config.Config{
		KakaoClientID:     "client-id",
		KakaoClientSecret: "client-secret",
		KakaoRedirectURI:  "https://app.example/callback",
	}
	client := kakao.NewClient(authBaseURL, apiBaseURL)
	h := NewAuthHandler(services.NewAuthService(client, cfg), nil)

	r := gin.New()
	r.GET("/verify-token", h.VerifyToken)
	r.POST("/oauth/token", h.ExchangeToken)
	r.GET("/friends", h.Friends)
	r.POST("/logout", h.Logout)
	return r
}

func TestExchangeTokenSuccess(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/oauth/token", r.URL.Path)
		require.NoError(t, r.ParseForm())
		require.Equal(t, "the-code", r.PostFormValue("code"))
		require.Equal(t, "client-id", r.PostFormValue("client_id"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"abc","refresh_token":"def"}`))
	}))
	defer upstream.Close()
	r := newAuthRouter(upstream.URL, upstream.URL)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/oauth/token", strings.NewReader(`{"code":"the-code"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"access_token":"abc","refresh_token":"def"}`, rec.Body.String())
}

func TestExchangeTokenMissingCode(t *testing.T) {
	upstream := newCountingUpstream(t, http.StatusOK, `{}`)
	defer upstream.server.Close()
	r := newAuthRouter(upstream.server.URL, upstream.server.URL)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/oauth/token", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Authorization code is required")
	require.Zero(t, upstream.calls)
}

func TestExchangeTokenUpstreamStatusPassthrough(t *testing.T) {
	upstream := newCountingUpstream(t, http.StatusBadRequest, `{"error":"invalid_grant"}`)
	defer upstream.server.Close()
	r := newAuthRouter(upstream.server.URL, upstream.server.URL)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/oauth/token", strings.NewReader(`{"code":"stale"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Failed to fetch access token")
	require.Contains(t, rec.Body.String(), "invalid_grant")
}

func TestVerifyTokenMissingToken(t *testing.T) {
	r := newAuthRouter("http://invalid", "http://invalid")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/verify-token", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Access token is required")
}

func TestVerifyTokenRelay(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/user/access_token_info", r.URL.Path)
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":12345,"expires_in":7100,"app_id":99}`))
	}))
	defer upstream.Close()
	r := newAuthRouter(upstream.URL, upstream.URL)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/verify-token", nil)
	req.Header.Set("Authorization", "Bearer tok")
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"id":12345,"expires_in":7100,"app_id":99}`, rec.Body.String())
}

func TestVerifyTokenUpstreamStatusRelay(t *testing.T) {
	upstream := newCountingUpstream(t, http.StatusUnauthorized, `{"msg":"expired","code":-401}`)
	defer upstream.server.Close()
	r := newAuthRouter(upstream.server.URL, upstream.server.URL)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/verify-token", nil)
	req.Header.Set("Authorization", "Bearer expired")
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "Failed to verify token")
}

func TestFriendsMissingHeader(t *testing.T) {
	r := newAuthRouter("http://invalid", "http://invalid")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/friends", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "Authorization header is missing")
}

func TestFriendsUpstreamUnauthorized(t *testing.T) {
	upstream := newCountingUpstream(t, http.StatusUnauthorized, `{"msg":"token expired","code":-401}`)
	defer upstream.server.Close()
	r := newAuthRouter(upstream.server.URL, upstream.server.URL)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/friends", nil)
	req.Header.Set("Authorization", "Bearer expired")
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "Invalid or expired Kakao access token.")
	require.Contains(t, rec.Body.String(), "token expired")
}

func TestFriendsUpstreamOtherStatus(t *testing.T) {
	upstream := newCountingUpstream(t, http.StatusForbidden, `{"msg":"insufficient scope","code":-402}`)
	defer upstream.server.Close()
	r := newAuthRouter(upstream.server.URL, upstream.server.URL)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/friends", nil)
	req.Header.Set("Authorization", "Bearer tok")
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Contains(t, rec.Body.String(), "Kakao API returned an error.")
}

func TestFriendsTransportFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()
	r := newAuthRouter(upstream.URL, upstream.URL)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/friends", nil)
	req.Header.Set("Authorization", "Bearer tok")
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "Internal server error occurred while fetching friends.")
}

func TestFriendsRelaySuccess(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/api/talk/friends", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"elements":[{"uuid":"f1"}],"total_count":1}`))
	}))
	defer upstream.Close()
	r := newAuthRouter(upstream.URL, upstream.URL)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/friends", nil)
	req.Header.Set("Authorization", "Bearer tok")
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"elements":[{"uuid":"f1"}],"total_count":1}`, rec.Body.String())
}

func TestLogoutMissingToken(t *testing.T) {
	r := newAuthRouter("http://invalid", "http://invalid")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/logout", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Access token is required")
}

func TestLogoutMergesUpstreamBody(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/user/logout", r.URL.Path)
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":9876}`))
	}))
	defer upstream.Close()
	r := newAuthRouter(upstream.URL, upstream.URL)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.Header.Set("Authorization", "Bearer tok")
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Successfully logged out", got["message"])
	require.Equal(t, float64(9876), got["id"])
}

func TestLogoutUpstreamFailure(t *testing.T) {
	upstream := newCountingUpstream(t, http.StatusUnauthorized, `{"msg":"bad token","code":-401}`)
	defer upstream.server.Close()
	r := newAuthRouter(upstream.server.URL, upstream.server.URL)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.Header.Set("Authorization", "Bearer tok")
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "Logout failed")
	require.Contains(t, rec.Body.String(), "bad token")
}
