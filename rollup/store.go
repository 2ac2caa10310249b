package rollup

import "github.com/bits-and-blooms/bitset"

// batchStore is the record registry owned by the Chain: committed batches by
// digest, finalization pointers by index, and the latest-finalized pointer.
// It is not safe for concurrent use; the Chain serializes access.
type batchStore struct {
	batches   map[Hash]*CommittedBatch
	byIndex   map[uint64]Hash
	finalized *bitset.BitSet

	latest      Hash
	latestIndex uint64
	hasLatest   bool
}

func newBatchStore() *batchStore {
	return &batchStore{
		batches:   make(map[Hash]*CommittedBatch),
		byIndex:   make(map[uint64]Hash),
		finalized: bitset.New(64),
	}
}

func (s *batchStore) get(digest Hash) (*CommittedBatch, bool) {
	b, ok := s.batches[digest]
	return b, ok
}

func (s *batchStore) put(digest Hash, b *CommittedBatch) {
	s.batches[digest] = b
}

func (s *batchStore) delete(digest Hash) {
	delete(s.batches, digest)
}

// markFinalized records digest at its index and advances the latest-finalized
// pointer if index exceeds the currently pointed-to index. The pointer never
// regresses.
func (s *batchStore) markFinalized(index uint64, digest Hash) {
	s.byIndex[index] = digest
	s.finalized.Set(uint(index))
	if !s.hasLatest || index > s.latestIndex {
		s.latest = digest
		s.latestIndex = index
		s.hasLatest = true
	}
}

func (s *batchStore) finalizedAt(index uint64) bool {
	return s.finalized.Test(uint(index))
}
