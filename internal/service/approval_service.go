package service

import (
	"context"
	"fmt"
	"time"

	"xrpl-escrow-agent/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
)

// approvalScope is the claim value an export-approval token must carry.
const approvalScope = "master-key-export"

// JWTApprovalVerifier implements ports.ApprovalVerifier against tokens
// issued by the external 2FA/approval collaborator. A token is valid when
// it is signed with the shared secret, unexpired, scoped to key export,
// and its subject matches the client whose key is being exported.
type JWTApprovalVerifier struct {
	secret []byte
	issuer string
}

// NewJWTApprovalVerifier creates a verifier for the given shared secret
// and expected issuer.
func NewJWTApprovalVerifier(secret, issuer string) *JWTApprovalVerifier {
	return &JWTApprovalVerifier{secret: []byte(secret), issuer: issuer}
}

type approvalClaims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

// Verify checks the approval token for the given client.
func (v *JWTApprovalVerifier) Verify(_ context.Context, clientID, token string) error {
	if token == "" {
		return apperror.ErrApprovalRequired(clientID)
	}

	claims := &approvalClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithIssuer(v.issuer), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return apperror.ErrApprovalRequired(clientID)
	}

	if claims.Scope != approvalScope || claims.Subject != clientID {
		return apperror.ErrApprovalRequired(clientID)
	}
	return nil
}

// IssueApprovalToken mints a short-lived approval token. Exists for the
// approval collaborator's tooling and for tests; the agent itself only
// verifies.
func (v *JWTApprovalVerifier) IssueApprovalToken(clientID string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, approvalClaims{
		Scope: approvalScope,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   clientID,
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	return token.SignedString(v.secret)
}
