package auth

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const jwksFetchTimeout = 10 * time.Second

// ErrAddressClaim is returned when a valid token carries no usable address.
var ErrAddressClaim = errors.New("token has no valid address claim")

// JWTValidator validates JWT tokens using JWKS
type JWTValidator struct {
	jwksURL      string
	issuer       string
	addressClaim string
	keys         map[string]*rsa.PublicKey
	keysMu       sync.RWMutex
	client       *http.Client
}

// JWKS represents a JSON Web Key Set
type JWKS struct {
	Keys []JWK `json:"keys"`
}

// JWK represents a JSON Web Key
type JWK struct {
	Kid string `json:"kid"`
	Kty string `json:"kty"`
	Alg string `json:"alg"`
	Use string `json:"use"`
	N   string `json:"n"`
	E   string `json:"e"`
}

// NewJWTValidator creates a validator for tokens signed by keys from jwksURL.
// The caller address is read from addressClaim.
func NewJWTValidator(jwksURL, issuer, addressClaim string) *JWTValidator {
	return &JWTValidator{
		jwksURL:      jwksURL,
		issuer:       issuer,
		addressClaim: addressClaim,
		keys:         make(map[string]*rsa.PublicKey),
		client:       &http.Client{Timeout: jwksFetchTimeout},
	}
}

// IsConfigured returns true if JWKS validation is configured
func (v *JWTValidator) IsConfigured() bool {
	return v != nil && v.jwksURL != ""
}

// ValidateToken validates a JWT token and returns the claims
func (v *JWTValidator) ValidateToken(ctx context.Context, tokenString string) (jwt.MapClaims, error) {
	var opts []jwt.ParserOption
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		kid, ok := token.Header["kid"].(string)
		if !ok {
			return nil, fmt.Errorf("missing kid in token header")
		}
		return v.getKey(ctx, kid)
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid claims type")
	}
	return claims, nil
}

// AddressFromToken validates tokenString and returns the normalized caller address it carries.
func (v *JWTValidator) AddressFromToken(ctx context.Context, tokenString string) (string, error) {
	claims, err := v.ValidateToken(ctx, tokenString)
	if err != nil {
		return "", err
	}
	addr, ok := claims[v.addressClaim].(string)
	if !ok || !ValidateEVMAddress(addr) || IsZeroAddress(addr) {
		return "", ErrAddressClaim
	}
	return NormalizeAddress(addr), nil
}

// getKey retrieves a key by ID, refreshing from JWKS if needed
func (v *JWTValidator) getKey(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	v.keysMu.RLock()
	key, exists := v.keys[kid]
	v.keysMu.RUnlock()
	if exists {
		return key, nil
	}

	if err := v.refreshKeys(ctx); err != nil {
		return nil, err
	}

	v.keysMu.RLock()
	key, exists = v.keys[kid]
	v.keysMu.RUnlock()
	if !exists {
		return nil, fmt.Errorf("key not found: %s", kid)
	}
	return key, nil
}

// refreshKeys fetches and parses the JWKS
func (v *JWTValidator) refreshKeys(ctx context.Context) error {
	if v.jwksURL == "" {
		return fmt.Errorf("JWKS URL not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, jwksFetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.jwksURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch JWKS: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("JWKS endpoint returned status %d", resp.StatusCode)
	}

	var jwks JWKS
	if err := json.NewDecoder(resp.Body).Decode(&jwks); err != nil {
		return fmt.Errorf("failed to decode JWKS: %w", err)
	}

	v.keysMu.Lock()
	defer v.keysMu.Unlock()
	for _, key := range jwks.Keys {
		if key.Kty != "RSA" {
			continue
		}
		pubKey, err := parseRSAPublicKey(key.N, key.E)
		if err != nil {
			continue
		}
		v.keys[key.Kid] = pubKey
	}
	return nil
}

// parseRSAPublicKey parses RSA public key components from base64url-encoded strings
func parseRSAPublicKey(nStr, eStr string) (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(nStr)
	if err != nil {
		return nil, fmt.Errorf("failed to decode modulus: %w", err)
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(eStr)
	if err != nil {
		return nil, fmt.Errorf("failed to decode exponent: %w", err)
	}

	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nBytes),
		E: int(new(big.Int).SetBytes(eBytes).Int64()),
	}, nil
}
