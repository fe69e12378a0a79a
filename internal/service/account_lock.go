package service

import "sync"

// accountLocks serializes ledger submissions per source account. Two
// in-flight transactions from the same account race on the account
// sequence number, so read-sequence/build/submit must run under the
// account's lock.
type accountLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newAccountLocks() *accountLocks {
	return &accountLocks{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the lock for an address, creating it on first use.
// The returned function releases it.
func (a *accountLocks) Lock(address string) func() {
	a.mu.Lock()
	l, ok := a.locks[address]
	if !ok {
		l = &sync.Mutex{}
		a.locks[address] = l
	}
	a.mu.Unlock()

	l.Lock()
	return l.Unlock
}
