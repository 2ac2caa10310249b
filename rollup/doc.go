// Package rollup implements the layer-2 batch commitment protocol: the
// canonical public-input encoding of a batch of blocks and the
// commit / revert / finalize state machine anchoring those batches.
//
// A batch is identified by its public input hash, the keccak digest of a
// fixed-layout serialization of its state roots, block contexts and
// transaction digests. A committed batch becomes immutable once a succinct
// proof attesting to that digest is verified (see the zkproof package).
package rollup
