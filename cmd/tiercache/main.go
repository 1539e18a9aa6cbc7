// Command tiercache is an interactive shell around a tiercache.Chain.
//
// It reads commands from stdin, one per line:
//
//	addCacheLevel <capacity> <policy>
//	put <key> <value>
//	get <key>
//	removeCacheLevel <index>
//	displayCache
//	quit
//
// Keys that miss every level are synthesized by a demo loader, so get
// always resolves to a value.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/hupe1980/tiercache"
)

const usage = `commands:
  addCacheLevel <capacity> <policy>   append a level (policy: LRU or LFU)
  put <key> <value>                   insert at the top level
  get <key>                           read through the chain
  removeCacheLevel <index>            remove the level at index
  displayCache                        show every level's contents
  quit                                exit`

func main() {
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	logger := tiercache.NoopLogger()
	if *verbose {
		logger = tiercache.NewTextLogger(slog.LevelDebug)
	}

	// Demo backing store: synthesizes a value for any key.
	loader := tiercache.LoaderFunc[string, string](func(_ context.Context, key string) (string, error) {
		return "generated:" + key, nil
	})

	chain, err := tiercache.New[string, string](loader, tiercache.WithLogger(logger))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer chain.Close()

	fmt.Println(usage)

	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		if !run(ctx, chain, strings.Fields(scanner.Text())) {
			return
		}
	}
}

// run executes one command line. It returns false when the shell should
// exit. Malformed input is rejected with a usage message before the chain
// is touched.
func run(ctx context.Context, chain *tiercache.Chain[string, string], args []string) bool {
	if len(args) == 0 {
		return true
	}

	switch args[0] {
	case "addCacheLevel":
		if len(args) != 3 {
			fmt.Println("usage: addCacheLevel <capacity> <policy>")
			return true
		}
		capacity, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Println("usage: addCacheLevel <capacity> <policy>")
			return true
		}
		policy, err := tiercache.ParsePolicy(args[2])
		if err != nil {
			fmt.Println(err)
			return true
		}
		if err := chain.AddLevel(capacity, policy); err != nil {
			fmt.Println(err)
			return true
		}
		fmt.Printf("added level %d (capacity %d, %s)\n", chain.NumLevels()-1, capacity, policy)

	case "put":
		if len(args) != 3 {
			fmt.Println("usage: put <key> <value>")
			return true
		}
		chain.Put(ctx, args[1], args[2])

	case "get":
		if len(args) != 2 {
			fmt.Println("usage: get <key>")
			return true
		}
		v, err := chain.Get(ctx, args[1])
		if err != nil {
			fmt.Println(err)
			return true
		}
		fmt.Println(v)

	case "removeCacheLevel":
		if len(args) != 2 {
			fmt.Println("usage: removeCacheLevel <index>")
			return true
		}
		index, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Println("usage: removeCacheLevel <index>")
			return true
		}
		if err := chain.RemoveLevel(index); err != nil {
			fmt.Println(err)
			return true
		}
		fmt.Printf("removed level %d\n", index)

	case "displayCache":
		display(chain)

	case "quit":
		return false

	default:
		fmt.Println(usage)
	}

	return true
}

func display(chain *tiercache.Chain[string, string]) {
	snapshots := chain.Snapshot()
	if len(snapshots) == 0 {
		fmt.Println("(no levels)")
		return
	}
	for _, snap := range snapshots {
		fmt.Printf("L%d %s %d/%d:", snap.Index, snap.Policy, len(snap.Entries), snap.Capacity)
		for _, e := range snap.Entries {
			fmt.Printf(" %s=%s", e.Key, e.Value)
		}
		fmt.Println()
	}
}
