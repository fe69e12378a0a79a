package ledger

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // XRPL account IDs are RIPEMD-160 by protocol
)

// xrplAlphabet is the base58 dictionary used by the XRP Ledger. It is not
// the Bitcoin alphabet, so generic base58 codecs cannot produce valid
// seeds or addresses.
const xrplAlphabet = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"

// ed25519SeedPrefix renders as "sEd" once base58check-encoded.
var ed25519SeedPrefix = []byte{0x01, 0xE1, 0x4B}

const (
	accountIDPrefix = 0x00
	seedEntropyLen  = 16
)

// KeyPair holds a wallet's signing identity: the base58check-encoded seed
// (the only value that needs custody), the derived public key and the
// classic address.
type KeyPair struct {
	Seed      string
	PublicKey string // hex, 0xED-prefixed ed25519 key
	Address   string
}

// GenerateKeyPair creates a fresh master key pair entirely locally from
// crypto/rand entropy. Each call is independent: no wallet's key is
// derivable from another's.
func GenerateKeyPair() (*KeyPair, error) {
	entropy := make([]byte, seedEntropyLen)
	if _, err := rand.Read(entropy); err != nil {
		return nil, fmt.Errorf("reading seed entropy: %w", err)
	}
	return keyPairFromEntropy(entropy)
}

// KeyPairFromSeed re-derives the key pair for an existing ed25519 seed.
// Used at startup to resolve the delegate and gas account addresses from
// their configured seeds.
func KeyPairFromSeed(seed string) (*KeyPair, error) {
	payload, err := base58CheckDecode(seed)
	if err != nil {
		return nil, fmt.Errorf("decoding seed: %w", err)
	}
	if len(payload) != len(ed25519SeedPrefix)+seedEntropyLen || !bytes.HasPrefix(payload, ed25519SeedPrefix) {
		return nil, fmt.Errorf("seed is not an ed25519 ledger seed")
	}
	return keyPairFromEntropy(payload[len(ed25519SeedPrefix):])
}

func keyPairFromEntropy(entropy []byte) (*KeyPair, error) {
	// Ledger convention: the ed25519 private scalar is SHA-512Half of the
	// seed entropy.
	digest := sha512.Sum512(entropy)
	priv := ed25519.NewKeyFromSeed(digest[:32])
	pub := priv.Public().(ed25519.PublicKey)

	pubPrefixed := append([]byte{0xED}, pub...)

	return &KeyPair{
		Seed:      base58CheckEncode(append(append([]byte{}, ed25519SeedPrefix...), entropy...)),
		PublicKey: strings.ToUpper(hex.EncodeToString(pubPrefixed)),
		Address:   deriveAddress(pubPrefixed),
	}, nil
}

// deriveAddress computes the classic address for a prefixed public key:
// base58check(0x00 || RIPEMD160(SHA256(pubkey))).
func deriveAddress(pubPrefixed []byte) string {
	sha := sha256.Sum256(pubPrefixed)
	rip := ripemd160.New()
	rip.Write(sha[:])
	accountID := rip.Sum(nil)

	return base58CheckEncode(append([]byte{accountIDPrefix}, accountID...))
}

func checksum(payload []byte) []byte {
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	return second[:4]
}

func base58CheckEncode(payload []byte) string {
	full := append(append([]byte{}, payload...), checksum(payload)...)

	x := new(big.Int).SetBytes(full)
	base := big.NewInt(58)
	mod := new(big.Int)

	var out []byte
	for x.Sign() > 0 {
		x.DivMod(x, base, mod)
		out = append(out, xrplAlphabet[mod.Int64()])
	}
	// Leading zero bytes map to the alphabet's zero digit.
	for _, b := range full {
		if b != 0 {
			break
		}
		out = append(out, xrplAlphabet[0])
	}

	// Reverse.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}

func base58CheckDecode(s string) ([]byte, error) {
	x := big.NewInt(0)
	base := big.NewInt(58)
	for _, r := range s {
		idx := strings.IndexRune(xrplAlphabet, r)
		if idx < 0 {
			return nil, fmt.Errorf("invalid base58 character %q", r)
		}
		x.Mul(x, base)
		x.Add(x, big.NewInt(int64(idx)))
	}

	decoded := x.Bytes()
	// Restore leading zero bytes.
	for _, r := range s {
		if byte(r) != xrplAlphabet[0] {
			break
		}
		decoded = append([]byte{0}, decoded...)
	}

	if len(decoded) < 5 {
		return nil, fmt.Errorf("encoded payload too short")
	}
	payload, check := decoded[:len(decoded)-4], decoded[len(decoded)-4:]
	if !bytes.Equal(check, checksum(payload)) {
		return nil, fmt.Errorf("checksum mismatch")
	}
	return payload, nil
}
