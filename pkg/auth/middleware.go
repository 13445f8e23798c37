package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/chainsafe/marketplace-favorites/pkg/app/errors"
	apphttp "github.com/chainsafe/marketplace-favorites/pkg/app/http"
	"github.com/chainsafe/marketplace-favorites/pkg/config"
)

// Headers carrying a signed authentication message.
const (
	HeaderSignature = "X-Signature"
	HeaderMessage   = "X-Message"
)

var errNoCredentials = errors.New("no credentials")

// Authenticator resolves the caller address of a request from an EIP-191
// signed message or a bearer JWT.
type Authenticator struct {
	jwt    *JWTValidator
	maxAge time.Duration
	now    func() time.Time
	logger *zap.Logger
}

// NewAuthenticator creates an Authenticator from the auth configuration.
func NewAuthenticator(cfg *config.AuthConfig, logger *zap.Logger) *Authenticator {
	a := &Authenticator{
		maxAge: cfg.SignatureMaxAge,
		now:    time.Now,
		logger: logger,
	}
	if cfg.JWKS.URL != "" {
		a.jwt = NewJWTValidator(cfg.JWKS.URL, cfg.JWKS.Issuer, cfg.JWKS.AddressClaim)
	}
	return a
}

// Resolve returns the normalized caller address of r. It returns
// errNoCredentials when r carries neither a signature nor a bearer token.
func (a *Authenticator) Resolve(r *http.Request) (string, error) {
	signature := r.Header.Get(HeaderSignature)
	message := r.Header.Get(HeaderMessage)
	if signature != "" || message != "" {
		if signature == "" || message == "" {
			return "", errors.New("signature and message required")
		}
		if err := CheckMessage(message, a.now(), a.maxAge); err != nil {
			return "", err
		}
		addr, err := VerifyEIP191Signature(message, signature)
		if err != nil {
			return "", err
		}
		if IsZeroAddress(addr.Hex()) {
			return "", errors.New("zero address is not a caller")
		}
		return NormalizeAddress(addr.Hex()), nil
	}

	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || token == "" {
		return "", errNoCredentials
	}
	if !a.jwt.IsConfigured() {
		return "", errors.New("bearer tokens are not accepted")
	}
	return a.jwt.AddressFromToken(r.Context(), token)
}

// RequireAddress rejects requests without valid credentials and stores the
// caller address in the request context.
func (a *Authenticator) RequireAddress(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		addr, err := a.Resolve(r)
		if err != nil {
			a.reject(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithAddress(r.Context(), addr)))
	})
}

// OptionalAddress lets anonymous requests through. Requests carrying invalid
// credentials are still rejected.
func (a *Authenticator) OptionalAddress(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		addr, err := a.Resolve(r)
		switch {
		case errors.Is(err, errNoCredentials):
			next.ServeHTTP(w, r)
		case err != nil:
			a.reject(w, r, err)
		default:
			next.ServeHTTP(w, r.WithContext(WithAddress(r.Context(), addr)))
		}
	})
}

func (a *Authenticator) reject(w http.ResponseWriter, r *http.Request, err error) {
	a.logger.Debug("request authentication failed",
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	msg := "invalid credentials"
	if errors.Is(err, errNoCredentials) {
		msg = "authentication required"
	}
	apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(err, msg))
}
