package rollup

import (
	"fmt"
	"io"
	"sort"

	"github.com/fxamacker/cbor/v2"
	"github.com/ronanh/intcomp"
)

const snapshotVersion = 1

// chainSnapshot is the serialized form of the chain state. Records are sorted
// by index then digest so the encoding is deterministic; the finalized index
// set is integer-compressed.
type chainSnapshot struct {
	Version   uint32
	Records   []snapshotRecord
	Finalized []uint64
}

type snapshotRecord struct {
	Digest Hash
	Batch  CommittedBatch
}

// WriteDump serializes the committed batch registry and the finalization
// pointers to w in CBOR. The message queue and access controller are wiring,
// not state, and are not part of the snapshot. The encoding is deterministic:
// two chains with the same state produce the same bytes.
func (c *Chain) WriteDump(w io.Writer) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap := chainSnapshot{Version: snapshotVersion}
	snap.Records = make([]snapshotRecord, 0, len(c.store.batches))
	for digest, b := range c.store.batches {
		snap.Records = append(snap.Records, snapshotRecord{Digest: digest, Batch: *b})
	}
	sort.Slice(snap.Records, func(i, j int) bool {
		ri, rj := &snap.Records[i], &snap.Records[j]
		if ri.Batch.Index != rj.Batch.Index {
			return ri.Batch.Index < rj.Batch.Index
		}
		return ri.Digest.Hex() < rj.Digest.Hex()
	})

	indices := make([]uint64, 0, len(c.store.byIndex))
	for index := range c.store.byIndex {
		indices = append(indices, index)
	}
	sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })
	snap.Finalized = intcomp.CompressUint64(indices, nil)

	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return err
	}
	return enc.NewEncoder(w).Encode(&snap)
}

// ReadDump restores the chain state from a snapshot produced by WriteDump,
// replacing any state the chain holds.
func (c *Chain) ReadDump(r io.Reader) error {
	var snap chainSnapshot
	if err := cbor.NewDecoder(r).Decode(&snap); err != nil {
		return err
	}
	if snap.Version != snapshotVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrSnapshotCorrupted, snap.Version)
	}

	store := newBatchStore()
	finalizedByIndex := make(map[uint64]Hash)
	for i := range snap.Records {
		rec := &snap.Records[i]
		if _, ok := store.batches[rec.Digest]; ok {
			return fmt.Errorf("%w: duplicate record %s", ErrSnapshotCorrupted, rec.Digest.Hex())
		}
		b := rec.Batch
		store.put(rec.Digest, &b)
		if b.Finalized {
			finalizedByIndex[b.Index] = rec.Digest
		}
	}

	// replay finalization in index order; the pointer lands on the highest
	// finalized index as it did on the live chain
	for _, index := range intcomp.UncompressUint64(snap.Finalized, nil) {
		digest, ok := finalizedByIndex[index]
		if !ok {
			return fmt.Errorf("%w: no finalized record at index %d", ErrSnapshotCorrupted, index)
		}
		store.markFinalized(index, digest)
	}

	// every finalized record must have been replayed into the pointer table
	for index := range finalizedByIndex {
		if !store.finalizedAt(index) {
			return fmt.Errorf("%w: finalized record at index %d missing from index list", ErrSnapshotCorrupted, index)
		}
	}

	c.mu.Lock()
	c.store = store
	c.mu.Unlock()
	return nil
}
