package rollup

import "errors"

var (
	// ErrEmptyBatch the batch carries no block
	ErrEmptyBatch = errors.New("batch contains no block")

	// ErrTooManyTxs the batch exceeds its fixed transaction capacity
	ErrTooManyTxs = errors.New("batch exceeds transaction capacity")

	// ErrBlockChainBroken consecutive blocks do not chain by hash and number
	ErrBlockChainBroken = errors.New("block contexts do not form a chain")

	// ErrL1MessageCount a block declares more L1 messages than transactions
	ErrL1MessageCount = errors.New("block declares more L1 messages than transactions")

	// ErrTxPayloadCorrupted the packed transaction buffer does not match the declared counts
	ErrTxPayloadCorrupted = errors.New("packed transaction buffer is corrupted")

	// ErrParentMismatch the parent batch does not chain to the submitted batch
	ErrParentMismatch = errors.New("parent batch does not match")

	// ErrDuplicateBatch a batch with the same public input hash is already committed
	ErrDuplicateBatch = errors.New("batch already committed")

	// ErrBatchNotFound no committed batch exists at the given digest
	ErrBatchNotFound = errors.New("batch not found")

	// ErrAlreadyFinalized the batch is finalized and can no longer be reverted
	ErrAlreadyFinalized = errors.New("batch already finalized")

	// ErrGenesisImported the genesis batch was already imported
	ErrGenesisImported = errors.New("genesis batch already imported")

	// ErrInvalidGenesis the genesis batch does not satisfy the genesis shape
	ErrInvalidGenesis = errors.New("invalid genesis batch")

	// ErrUnauthorized the caller is not a designated operator
	ErrUnauthorized = errors.New("caller is not an operator")

	// ErrMsgNotFound the message queue holds no message at the given index
	ErrMsgNotFound = errors.New("no L1 message at index")

	// ErrSnapshotCorrupted the serialized chain state is inconsistent
	ErrSnapshotCorrupted = errors.New("chain snapshot is corrupted")
)
