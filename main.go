package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	bplus "BPlusIndex/bplustree"
	"BPlusIndex/cli"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	order     *int
	cacheSize *int64
	logLevel  *string
	seedCount *int
	seedMax   *int
)

func main() {
	setupFlags()

	logger, err := newLogger(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	// Initialize B+ Tree
	cfg := bplus.DefaultConfig()
	cfg.Order = *order
	cfg.ParentCacheSize = *cacheSize
	cfg.Logger = logger
	tree, err := bplus.NewBPlusTree(cfg)
	if err != nil {
		logger.Fatal("create tree", zap.Error(err))
	}
	defer tree.Close()

	if *seedCount > 0 {
		inserted, err := cli.Seed(tree, *seedCount, *seedMax)
		if err != nil {
			logger.Fatal("seed tree", zap.Error(err))
		}
		logger.Info("seeded tree", zap.Int("keys", inserted), zap.Int("height", tree.Height()))
	}

	scanner := bufio.NewScanner(os.Stdin)
	repl := cli.NewCli(scanner, os.Stdout, tree, logger)
	repl.Start()
}

// newLogger builds a console logger; debug level traces every split, borrow and merge.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid -log-level %q", level)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

func setupFlags() {
	order = flag.Int("order", bplus.DefaultOrder, "Order m of the B+ tree (max children per internal node, at least 3).")
	cacheSize = flag.Int64("cache", bplus.DefaultParentCacheSize, "Entries kept in the parent lookup cache, 0 disables it.")
	logLevel = flag.String("log-level", "warn", "Log level: debug, info, warn or error.")
	seedCount = flag.Int("seed", 0, "Insert this many random keys before the prompt starts.")
	seedMax = flag.Int("max", cli.DefaultSeedMax, "Upper bound of the random keys used by -seed.")
	flag.Usage = func() {
		fmt.Println("\nB+ tree CLI\n\nArguments:")
		flag.PrintDefaults()
	}
	flag.Parse()
}
