package usecase

import (
	"hash/fnv"
	"sync"
)

const lockStripes = 64

// sessionLocks serializes read-modify-write cycles on the same session id.
// Ids hash onto a fixed set of mutexes, so unrelated sessions rarely contend
// and nothing has to be cleaned up when a session goes away.
type sessionLocks struct {
	stripes [lockStripes]sync.Mutex
}

func (s *sessionLocks) lock(id string) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	mu := &s.stripes[h.Sum32()%lockStripes]
	mu.Lock()
	return mu.Unlock
}
