package zkproof

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// VerifyBatch checks each proof against its instance under the same key, in
// parallel. It returns nil when every pair verifies and the first error
// otherwise.
func VerifyBatch(vk *VerifyingKey, proofs []*Proof, instances []*Instance) error {
	if len(proofs) != len(instances) {
		return fmt.Errorf("%w: %d proofs for %d instances", ErrComputation, len(proofs), len(instances))
	}
	var g errgroup.Group
	for i := range proofs {
		i := i
		g.Go(func() error {
			return Verify(vk, proofs[i], instances[i])
		})
	}
	return g.Wait()
}
