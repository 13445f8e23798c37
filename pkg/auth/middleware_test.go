package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/chainsafe/marketplace-favorites/pkg/config"
	"github.com/chainsafe/marketplace-favorites/pkg/favorites"
)

const testKid = "test-key"

func newJWKSServer(t *testing.T, key *rsa.PublicKey) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(JWKS{Keys: []JWK{{
			Kid: testKid,
			Kty: "RSA",
			Alg: "RS256",
			N:   base64.RawURLEncoding.EncodeToString(key.N.Bytes()),
			E:   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.E)).Bytes()),
		}}})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func signToken(t *testing.T, key *rsa.PrivateKey, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = testKid
	signed, err := token.SignedString(key)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func newTestAuthenticator(jwksURL string, now time.Time) *Authenticator {
	cfg := &config.AuthConfig{SignatureMaxAge: 5 * time.Minute}
	cfg.JWKS.URL = jwksURL
	cfg.JWKS.Issuer = "issuer"
	cfg.JWKS.AddressClaim = "sub"
	a := NewAuthenticator(cfg, zap.NewNop())
	a.now = func() time.Time { return now }
	return a
}

// echoAddress writes the caller address, or "anonymous".
var echoAddress = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	addr, ok := AddressFromContext(r.Context())
	if !ok {
		addr = "anonymous"
	}
	_, _ = w.Write([]byte(addr))
})

func TestRequireAddress_Signature(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	a := newTestAuthenticator("", now)
	message := MessagePrefix + strconv.FormatInt(now.Unix(), 10)
	sig, addr := signMessage(t, message)

	req := httptest.NewRequest(http.MethodGet, "/v1/lists", nil)
	req.Header.Set(HeaderSignature, sig)
	req.Header.Set(HeaderMessage, message)
	rec := httptest.NewRecorder()
	a.RequireAddress(echoAddress).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec.Body.String() != strings.ToLower(addr) {
		t.Fatalf("expected address %s, got %s", strings.ToLower(addr), rec.Body.String())
	}
}

func TestRequireAddress_Rejections(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	a := newTestAuthenticator("", now)
	stale := MessagePrefix + strconv.FormatInt(now.Add(-time.Hour).Unix(), 10)
	staleSig, _ := signMessage(t, stale)

	tests := []struct {
		name    string
		headers map[string]string
		wantMsg string
	}{
		{"no credentials", nil, "authentication required"},
		{"message without signature", map[string]string{HeaderMessage: stale}, "invalid credentials"},
		{"expired message", map[string]string{HeaderMessage: stale, HeaderSignature: staleSig}, "invalid credentials"},
		{"bearer without jwks", map[string]string{"Authorization": "Bearer abc"}, "invalid credentials"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/lists", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			a.RequireAddress(echoAddress).ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected status 401, got %d", rec.Code)
			}
			var got struct {
				Error string `json:"error"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
				t.Fatalf("failed to decode response JSON: %v", err)
			}
			if got.Error != tt.wantMsg {
				t.Fatalf("expected error %q, got %q", tt.wantMsg, got.Error)
			}
		})
	}
}

func TestOptionalAddress_Anonymous(t *testing.T) {
	a := newTestAuthenticator("", time.Now())

	rec := httptest.NewRecorder()
	a.OptionalAddress(echoAddress).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/picks/stats", nil))

	if rec.Code != http.StatusOK || rec.Body.String() != "anonymous" {
		t.Fatalf("expected anonymous pass-through, got %d %s", rec.Code, rec.Body.String())
	}
}

func TestRequireAddress_BearerToken(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate rsa key: %v", err)
	}
	srv := newJWKSServer(t, &key.PublicKey)
	a := newTestAuthenticator(srv.URL, time.Now())

	const addr = "0xABCDEFabcdef0123456789012345678901234567"
	tests := []struct {
		name       string
		claims     jwt.MapClaims
		wantStatus int
	}{
		{"valid", jwt.MapClaims{"sub": addr, "iss": "issuer", "exp": time.Now().Add(time.Hour).Unix()}, http.StatusOK},
		{"wrong issuer", jwt.MapClaims{"sub": addr, "iss": "other", "exp": time.Now().Add(time.Hour).Unix()}, http.StatusUnauthorized},
		{"expired", jwt.MapClaims{"sub": addr, "iss": "issuer", "exp": time.Now().Add(-time.Hour).Unix()}, http.StatusUnauthorized},
		{"no address", jwt.MapClaims{"sub": "alice", "iss": "issuer"}, http.StatusUnauthorized},
		{"zero address", jwt.MapClaims{"sub": favorites.DefaultListUserAddress, "iss": "issuer", "exp": time.Now().Add(time.Hour).Unix()}, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/lists", nil)
			req.Header.Set("Authorization", "Bearer "+signToken(t, key, tt.claims))
			rec := httptest.NewRecorder()
			a.RequireAddress(echoAddress).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
			if tt.wantStatus == http.StatusOK && rec.Body.String() != strings.ToLower(addr) {
				t.Fatalf("expected address %s, got %s", strings.ToLower(addr), rec.Body.String())
			}
		})
	}
}
