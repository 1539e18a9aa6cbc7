package tiercache_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/tiercache"
)

// Example demonstrates a two-level chain backed by a synthesizing loader.
func Example() {
	ctx := context.Background()

	loader := tiercache.LoaderFunc[string, string](func(_ context.Context, key string) (string, error) {
		return "value-of-" + key, nil
	})

	chain, err := tiercache.New[string, string](loader,
		tiercache.WithLevels(
			tiercache.LevelConfig{Capacity: 1, Policy: tiercache.PolicyLRU},
			tiercache.LevelConfig{Capacity: 2, Policy: tiercache.PolicyLFU},
		),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer chain.Close()

	// Miss everywhere: loaded from the backing store, cached at the top.
	v, err := chain.Get(ctx, "a")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(v)

	// The next write displaces "a" from the top level into the second.
	chain.Put(ctx, "b", "2")

	// Hit at the second level, promoted back to the top.
	v, err = chain.Get(ctx, "a")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(v)

	fmt.Println(chain.NumLevels(), chain.Len())
	// Output:
	// value-of-a
	// value-of-a
	// 2 3
}
