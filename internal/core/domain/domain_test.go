package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWallet_CanDelegateSign(t *testing.T) {
	w := &SegregatedWallet{ClientID: "proj-1", DelegationEnabled: false}
	assert.False(t, w.CanDelegateSign())

	w.DelegationEnabled = true
	assert.True(t, w.CanDelegateSign())
}

func TestEscrow_IsFinal(t *testing.T) {
	e := &Escrow{MilestoneID: "m1", Status: EscrowStatusLocked}
	assert.False(t, e.IsFinal())

	now := time.Now().UTC()
	hash := "ABC123"
	e.Status = EscrowStatusReleased
	e.FinalTxHash = &hash
	e.FinalizedAt = &now
	assert.True(t, e.IsFinal())

	e.Status = EscrowStatusCancelled
	assert.True(t, e.IsFinal())
}
