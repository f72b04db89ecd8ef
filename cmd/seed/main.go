// Seed program: builds a B+ tree from random keys, deletes a random subset of them,
// verifies the invariants and prints the resulting tree level by level.
// Run: go run ./cmd/seed -order 4 -records 40
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	bplus "BPlusIndex/bplustree"
	"BPlusIndex/cli"

	"github.com/go-faker/faker/v4"
	"go.uber.org/zap"
)

func main() {
	order := flag.Int("order", bplus.DefaultOrder, "Order m of the B+ tree.")
	records := flag.Int("records", 40, "Number of random keys to insert.")
	maxKey := flag.Int("max", 999, "Upper bound of the random keys.")
	deletes := flag.Int("deletes", 10, "Number of inserted keys to delete again.")
	verbose := flag.Bool("v", false, "Log every structural change.")
	flag.Parse()

	logger := zap.NewNop()
	if *verbose {
		var err error
		if logger, err = zap.NewDevelopment(); err != nil {
			log.Fatalf("logger: %v", err)
		}
	}
	defer logger.Sync()

	cfg := bplus.DefaultConfig()
	cfg.Order = *order
	cfg.Logger = logger
	tree, err := bplus.NewBPlusTree(cfg)
	if err != nil {
		log.Fatalf("create tree: %v", err)
	}
	defer tree.Close()

	inserted, err := cli.Seed(tree, *records, *maxKey)
	if err != nil {
		log.Fatalf("seed: %v", err)
	}
	fmt.Printf("Inserted %d keys into an order-%d tree\n", inserted, *order)

	keys := tree.Keys()
	if *deletes > len(keys) {
		*deletes = len(keys)
	}
	if *deletes > 0 {
		picks, err := faker.RandomInt(0, len(keys)-1, *deletes)
		if err != nil {
			log.Fatalf("pick deletes: %v", err)
		}
		for _, i := range picks {
			if err := tree.Delete(keys[i]); err != nil {
				log.Fatalf("delete %d: %v", keys[i], err)
			}
		}
		fmt.Printf("Deleted %d keys\n", len(picks))
	}

	if err := tree.CheckInvariants(); err != nil {
		log.Fatalf("invariants: %v", err)
	}

	fmt.Println()
	if err := tree.DisplayTo(os.Stdout); err != nil {
		log.Fatal(err)
	}

	s := tree.Stats()
	fmt.Printf("\nkeys=%d height=%d nodes=%d splits=%d merges=%d borrows=%d\n",
		s.Keys, s.Height, s.LiveNodes, s.Splits, s.Merges, s.Borrows)
}
