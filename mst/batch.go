package mst

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/alinairsymova/spantree/core"
)

// ComputeBatch computes the MST of every graph concurrently, bounded to
// GOMAXPROCS workers. Each worker runs on its own Clone of algo, so the
// shared instance is never touched. Results preserve input order.
//
// The first computation error aborts the batch and is returned wrapped with
// the failing graph's index.
func ComputeBatch(algo Algorithm, graphs []*core.Graph) ([]*Result, error) {
	if algo == nil {
		return nil, ErrNilAlgorithm
	}

	results := make([]*Result, len(graphs))

	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, g := range graphs {
		i, g := i, g
		eg.Go(func() error {
			res, err := algo.Clone().ComputeMST(g)
			if err != nil {
				return fmt.Errorf("graph %d: %w", i, err)
			}
			results[i] = res

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
