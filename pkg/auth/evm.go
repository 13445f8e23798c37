package auth

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// MessagePrefix starts every signed authentication message: "favorites:<unix seconds>".
const MessagePrefix = "favorites:"

var (
	ErrMalformedMessage = errors.New("malformed authentication message")
	ErrExpiredMessage   = errors.New("authentication message expired")
)

// VerifyEIP191Signature verifies an EIP-191 personal_sign signature
// Returns the recovered Ethereum address if valid
func VerifyEIP191Signature(message, signature string) (common.Address, error) {
	sigBytes, err := hex.DecodeString(strings.TrimPrefix(signature, "0x"))
	if err != nil {
		return common.Address{}, fmt.Errorf("invalid signature hex: %w", err)
	}

	if len(sigBytes) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("invalid signature length: expected %d, got %d", crypto.SignatureLength, len(sigBytes))
	}

	// v can be 0, 1, 27, or 28 - normalize to 0 or 1
	if sigBytes[crypto.RecoveryIDOffset] >= 27 {
		sigBytes[crypto.RecoveryIDOffset] -= 27
	}

	pubKey, err := crypto.SigToPub(eip191Hash(message), sigBytes)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to recover public key: %w", err)
	}
	return crypto.PubkeyToAddress(*pubKey), nil
}

func eip191Hash(message string) []byte {
	prefixed := fmt.Sprintf("\x19Ethereum Signed Message:\n%d%s", len(message), message)
	return crypto.Keccak256([]byte(prefixed))
}

// CheckMessage validates an authentication message issued at most maxAge
// before now. A message issued slightly in the future is tolerated up to maxAge.
func CheckMessage(message string, now time.Time, maxAge time.Duration) error {
	raw, ok := strings.CutPrefix(message, MessagePrefix)
	if !ok {
		return ErrMalformedMessage
	}
	issued, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedMessage, err)
	}

	age := now.Sub(time.Unix(issued, 0))
	if age > maxAge || age < -maxAge {
		return ErrExpiredMessage
	}
	return nil
}

// ValidateEVMAddress checks if a string is a valid EVM address
func ValidateEVMAddress(address string) bool {
	if !strings.HasPrefix(address, "0x") {
		return false
	}
	if len(address) != 42 {
		return false
	}
	_, err := hex.DecodeString(address[2:])
	return err == nil
}

// NormalizeAddress returns the lower-case hex form of an EVM address, the form
// addresses are stored and compared in.
func NormalizeAddress(address string) string {
	return strings.ToLower(common.HexToAddress(address).Hex())
}

// IsZeroAddress reports whether address is the zero address, which owns the
// default list and is never a caller.
func IsZeroAddress(address string) bool {
	return common.HexToAddress(address) == common.Address{}
}
