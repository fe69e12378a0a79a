package service

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConditionService_GenerateShape(t *testing.T) {
	svc := NewConditionService()

	condition, fulfillment, err := svc.Generate()
	require.NoError(t, err)

	assert.Len(t, condition, 64)  // hex SHA-256
	assert.Len(t, fulfillment, 68) // hex of A0 20 || 32-byte preimage
	assert.Equal(t, strings.ToUpper(condition), condition)
	assert.Equal(t, strings.ToUpper(fulfillment), fulfillment)
	assert.True(t, strings.HasPrefix(fulfillment, "A020"))
}

func TestConditionService_PreimageHashesToCondition(t *testing.T) {
	svc := NewConditionService()

	condition, fulfillment, err := svc.Generate()
	require.NoError(t, err)

	payload, err := hex.DecodeString(fulfillment)
	require.NoError(t, err)
	digest := sha256.Sum256(payload[2:])
	assert.Equal(t, condition, strings.ToUpper(hex.EncodeToString(digest[:])))

	assert.True(t, svc.Verify(condition, fulfillment))
}

func TestConditionService_GenerateUnique(t *testing.T) {
	svc := NewConditionService()

	c1, f1, err := svc.Generate()
	require.NoError(t, err)
	c2, f2, err := svc.Generate()
	require.NoError(t, err)

	assert.NotEqual(t, c1, c2)
	assert.NotEqual(t, f1, f2)
}

func TestConditionService_VerifyRejects(t *testing.T) {
	svc := NewConditionService()

	condition, fulfillment, err := svc.Generate()
	require.NoError(t, err)
	otherCondition, otherFulfillment, err := svc.Generate()
	require.NoError(t, err)

	assert.False(t, svc.Verify(condition, otherFulfillment))
	assert.False(t, svc.Verify(otherCondition, fulfillment))
	assert.False(t, svc.Verify(condition, "not hex"))
	assert.False(t, svc.Verify(condition, fulfillment[4:])) // missing framing
	assert.False(t, svc.Verify("", fulfillment))
}
