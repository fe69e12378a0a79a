package service

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"
)

// fulfillmentPrefix is the PREIMAGE-SHA-256 framing bytes preceding the
// 32-byte preimage in a fulfillment payload.
var fulfillmentPrefix = []byte{0xA0, 0x20}

const preimageLen = 32

// ConditionService implements ports.ConditionGenerator using
// PREIMAGE-SHA-256 crypto conditions: the condition is the SHA-256 hash
// of a random preimage, the fulfillment reveals the preimage.
type ConditionService struct{}

// NewConditionService creates a ConditionService.
func NewConditionService() *ConditionService {
	return &ConditionService{}
}

// Generate draws a fresh 32-byte preimage and returns the publishable
// condition and the secret fulfillment, both uppercase hex for ledger
// compatibility.
func (s *ConditionService) Generate() (condition, fulfillment string, err error) {
	preimage := make([]byte, preimageLen)
	if _, err := rand.Read(preimage); err != nil {
		return "", "", fmt.Errorf("generating preimage: %w", err)
	}

	digest := sha256.Sum256(preimage)
	payload := append(append([]byte{}, fulfillmentPrefix...), preimage...)

	return strings.ToUpper(hex.EncodeToString(digest[:])),
		strings.ToUpper(hex.EncodeToString(payload)),
		nil
}

// Verify reports whether the fulfillment's embedded preimage hashes to
// the condition. The ledger performs the authoritative check on
// EscrowFinish; this is a local sanity check only.
func (s *ConditionService) Verify(condition, fulfillment string) bool {
	payload, err := hex.DecodeString(fulfillment)
	if err != nil || len(payload) != len(fulfillmentPrefix)+preimageLen {
		return false
	}
	for i, b := range fulfillmentPrefix {
		if payload[i] != b {
			return false
		}
	}

	want, err := hex.DecodeString(condition)
	if err != nil {
		return false
	}
	got := sha256.Sum256(payload[len(fulfillmentPrefix):])
	return subtle.ConstantTimeCompare(got[:], want) == 1
}
