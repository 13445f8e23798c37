// sign-message prints the authentication headers for a favorites API request.
//
// Usage:
//
//	go run ./cmd/sign-message -key <hex private key>
//
// The key may also be read from FAVORITES_DEV_KEY. Never use a funded key.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/chainsafe/marketplace-favorites/pkg/auth"
)

func main() {
	keyHex := flag.String("key", os.Getenv("FAVORITES_DEV_KEY"), "Hex encoded secp256k1 private key")
	flag.Parse()

	if *keyHex == "" {
		fmt.Fprintln(os.Stderr, "a private key is required (-key or FAVORITES_DEV_KEY)")
		os.Exit(1)
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(*keyHex, "0x"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid private key: %v\n", err)
		os.Exit(1)
	}

	message := auth.MessagePrefix + strconv.FormatInt(time.Now().Unix(), 10)
	hash := crypto.Keccak256([]byte(fmt.Sprintf("\x19Ethereum Signed Message:\n%d%s", len(message), message)))
	sig, err := crypto.Sign(hash, key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to sign message: %v\n", err)
		os.Exit(1)
	}
	sig[crypto.RecoveryIDOffset] += 27

	fmt.Printf("# address %s\n", auth.NormalizeAddress(crypto.PubkeyToAddress(key.PublicKey).Hex()))
	fmt.Printf("%s: %s\n", auth.HeaderMessage, message)
	fmt.Printf("%s: %s\n", auth.HeaderSignature, hexutil.Encode(sig))
}
