package rollup

import "fmt"

// MessageQueue resolves the digests of pending cross-domain (L1) messages by
// their global queue index. The batch encoder consumes messages in strictly
// increasing index order.
type MessageQueue interface {
	// NextIndex returns the index the next queued message will receive.
	NextIndex() uint64

	// MessageDigest returns the digest of the message at the given index.
	// It fails with ErrMsgNotFound if index >= NextIndex().
	MessageDigest(index uint64) (Hash, error)
}

// MemoryQueue is an in-memory MessageQueue, append only.
type MemoryQueue struct {
	digests []Hash
}

// Append queues a message digest and returns its index.
func (q *MemoryQueue) Append(digest Hash) uint64 {
	q.digests = append(q.digests, digest)
	return uint64(len(q.digests) - 1)
}

func (q *MemoryQueue) NextIndex() uint64 {
	return uint64(len(q.digests))
}

func (q *MemoryQueue) MessageDigest(index uint64) (Hash, error) {
	if index >= uint64(len(q.digests)) {
		return Hash{}, fmt.Errorf("%w: index %d, next unused %d", ErrMsgNotFound, index, len(q.digests))
	}
	return q.digests[index], nil
}

// AccessController answers whether a principal may drive the state machine.
// Role administration lives outside this module.
type AccessController interface {
	IsAuthorized(principal Address) bool
}

// OperatorSet is a static AccessController backed by a set of addresses.
type OperatorSet map[Address]struct{}

// NewOperatorSet builds an OperatorSet from the given operators.
func NewOperatorSet(operators ...Address) OperatorSet {
	s := make(OperatorSet, len(operators))
	for _, op := range operators {
		s[op] = struct{}{}
	}
	return s
}

func (s OperatorSet) IsAuthorized(principal Address) bool {
	_, ok := s[principal]
	return ok
}
