package usecase

import (
	"sync"

	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/types"
)

// caseLocker serializes read-modify-write cycles per case number. The
// record store reads and writes whole records, so two concurrent actions
// on the same case would otherwise lose updates. Actions on different
// cases proceed in parallel.
type caseLocker struct {
	mu    sync.Mutex
	locks map[types.CaseID]*sync.Mutex
}

func newCaseLocker() *caseLocker {
	return &caseLocker{
		locks: make(map[types.CaseID]*sync.Mutex),
	}
}

func (l *caseLocker) get(id types.CaseID) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}
	return m
}

// Lock acquires the lock for one case and returns the unlock function
func (l *caseLocker) Lock(id types.CaseID) func() {
	m := l.get(id)
	m.Lock()
	return m.Unlock
}

// LockPair acquires the locks for two case numbers in lexicographic
// order, so concurrent renames touching the same pair cannot deadlock.
func (l *caseLocker) LockPair(a, b types.CaseID) func() {
	if a == b {
		return l.Lock(a)
	}
	if b < a {
		a, b = b, a
	}

	first := l.get(a)
	second := l.get(b)
	first.Lock()
	second.Lock()
	return func() {
		second.Unlock()
		first.Unlock()
	}
}
