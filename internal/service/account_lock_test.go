package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccountLocks_SerializesSameAccount(t *testing.T) {
	locks := newAccountLocks()

	var wg sync.WaitGroup
	var inFlight, maxInFlight int
	var mu sync.Mutex

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock("rACCOUNT")
			defer unlock()

			mu.Lock()
			inFlight++
			if inFlight > maxInFlight {
				maxInFlight = inFlight
			}
			mu.Unlock()

			mu.Lock()
			inFlight--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxInFlight)
}

func TestAccountLocks_IndependentAccounts(t *testing.T) {
	locks := newAccountLocks()

	unlockA := locks.Lock("rA")
	// Must not block while rA is held.
	unlockB := locks.Lock("rB")
	unlockB()
	unlockA()

	// Reacquiring after release works.
	unlock := locks.Lock("rA")
	unlock()
}
