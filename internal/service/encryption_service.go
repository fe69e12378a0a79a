package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	"xrpl-escrow-agent/pkg/apperror"
)

// AESEncryptionService implements ports.EncryptionService using
// AES-256-GCM. GCM authentication means a wrong key or tampered envelope
// fails to open instead of yielding garbage plaintext.
type AESEncryptionService struct {
	key []byte // 32-byte key for AES-256
}

// NewAESEncryptionService creates a new AES-256-GCM encryption service.
// hexKey must be a 64-character hex string (32 bytes decoded).
func NewAESEncryptionService(hexKey string) (*AESEncryptionService, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("decoding AES key: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("AES key must be 32 bytes, got %d", len(key))
	}
	return &AESEncryptionService{key: key}, nil
}

// Encrypt seals plaintext with a fresh random nonce per call.
// Returns hex-encoded string: nonce + ciphertext.
func (s *AESEncryptionService) Encrypt(plaintext string) (string, error) {
	block, err := aes.NewCipher(s.key)
	if err != nil {
		return "", apperror.ErrEncryption(fmt.Errorf("creating cipher: %w", err))
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return "", apperror.ErrEncryption(fmt.Errorf("creating GCM: %w", err))
	}

	nonce := make([]byte, aesGCM.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", apperror.ErrEncryption(fmt.Errorf("generating nonce: %w", err))
	}

	ciphertext := aesGCM.Seal(nonce, nonce, []byte(plaintext), nil)
	return hex.EncodeToString(ciphertext), nil
}

// Decrypt opens a hex-encoded envelope. A malformed envelope or wrong key
// is a data-integrity incident (CRY_001), never an empty secret.
func (s *AESEncryptionService) Decrypt(envelope string) (string, error) {
	ciphertext, err := hex.DecodeString(envelope)
	if err != nil {
		return "", apperror.ErrDecryption(fmt.Errorf("decoding envelope: %w", err))
	}

	block, err := aes.NewCipher(s.key)
	if err != nil {
		return "", apperror.ErrDecryption(fmt.Errorf("creating cipher: %w", err))
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return "", apperror.ErrDecryption(fmt.Errorf("creating GCM: %w", err))
	}

	nonceSize := aesGCM.NonceSize()
	if len(ciphertext) < nonceSize {
		return "", apperror.ErrDecryption(fmt.Errorf("envelope shorter than nonce"))
	}

	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]
	plaintext, err := aesGCM.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", apperror.ErrDecryption(fmt.Errorf("opening envelope: %w", err))
	}

	return string(plaintext), nil
}
