package pinger

import "sync"

// hostLimiter caps how many workers hit one remote host at a time. Unlike a
// global cap it blocks, so jobs for a busy host wait instead of being
// dropped.
type hostLimiter struct {
	mu    sync.Mutex
	sems  map[string]chan struct{}
	limit int
}

func newHostLimiter(limit int) *hostLimiter {
	return &hostLimiter{
		sems:  make(map[string]chan struct{}),
		limit: limit,
	}
}

func (l *hostLimiter) sem(host string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	ch, ok := l.sems[host]
	if !ok {
		ch = make(chan struct{}, l.limit)
		l.sems[host] = ch
	}

	return ch
}

func (l *hostLimiter) acquire(host string) {
	l.sem(host) <- struct{}{}
}

func (l *hostLimiter) release(host string) {
	<-l.sem(host)
}
