package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	bplus "BPlusIndex/bplustree"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/go-faker/faker/v4"
	"go.uber.org/zap"
)

// DefaultSeedMax is the upper bound of keys generated by the seed command when none is given.
const DefaultSeedMax = 1000

var (
	okColor    = color.New(color.FgGreen)
	errColor   = color.New(color.FgRed)
	levelColor = color.New(color.FgCyan)
	dimColor   = color.New(color.Faint)
)

type Cli struct {
	scanner *bufio.Scanner
	out     io.Writer
	tree    *bplus.BPlusTree
	logger  *zap.Logger
}

func NewCli(s *bufio.Scanner, out io.Writer, t *bplus.BPlusTree, logger *zap.Logger) *Cli {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cli{scanner: s, out: out, tree: t, logger: logger}
}

// Start runs the read-eval-print loop until EXIT or end of input.
func (c *Cli) Start() {
	c.printHelp()
	c.printPrompt()
	for c.scanner.Scan() {
		if !c.processInput(c.scanner.Text()) {
			return
		}
		c.printPrompt()
	}
	fmt.Fprintln(c.out)
}

func (c *Cli) printHelp() {
	fmt.Fprintf(c.out, `
B+ Tree CLI (order %d)

Available Commands:
  INSERT <key>      (1) Insert a key into the B+ tree
  DELETE <key>      (2) Remove a key from the B+ tree
  DISPLAY           (3) Print the tree level by level
  SEARCH <key>      Look a key up and show its leaf
  STATS             Show node counts and structural work done
  CHECK             Verify the tree invariants
  SEED <n> [max]    Insert n random keys in [0, max]
  HELP              Show this message
  EXIT              (4) Terminate this session
`, c.tree.Order())
}

func (c *Cli) printPrompt() {
	fmt.Fprint(c.out, "> ")
}

// processInput executes one line and reports whether the session should continue.
func (c *Cli) processInput(line string) bool {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return true
	}
	command := strings.ToLower(fields[0])
	switch command {
	default:
		errColor.Fprintf(c.out, "Unknown command \"%s\"\n", command)
	case "insert", "1":
		c.processInsertCommand(fields[1:])
	case "delete", "del", "2":
		c.processDeleteCommand(fields[1:])
	case "display", "3":
		c.processDisplayCommand()
	case "search", "get":
		c.processSearchCommand(fields[1:])
	case "stats":
		c.processStatsCommand()
	case "check":
		c.processCheckCommand()
	case "seed":
		c.processSeedCommand(fields[1:])
	case "help":
		c.printHelp()
	case "exit", "quit", "4":
		return false
	}
	return true
}

// parseKey reads the single integer argument of INSERT, DELETE and SEARCH.
func (c *Cli) parseKey(args []string, usage string) (int, bool) {
	if len(args) != 1 {
		fmt.Fprintf(c.out, "Usage: %s\n", usage)
		return 0, false
	}
	key, err := strconv.Atoi(args[0])
	if err != nil {
		errColor.Fprintf(c.out, "Invalid key %q: not an integer\n", args[0])
		return 0, false
	}
	return key, true
}

func (c *Cli) processInsertCommand(args []string) {
	key, ok := c.parseKey(args, "INSERT <key>")
	if !ok {
		return
	}
	if err := c.tree.Insert(key); err != nil {
		if errors.Is(err, bplus.ErrDuplicateKey) {
			errColor.Fprintln(c.out, "Key already exists!")
			return
		}
		c.logger.Error("insert failed", zap.Int("key", key), zap.Error(err))
		errColor.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	okColor.Fprintf(c.out, "Inserted %d\n", key)
}

func (c *Cli) processDeleteCommand(args []string) {
	key, ok := c.parseKey(args, "DELETE <key>")
	if !ok {
		return
	}
	if err := c.tree.Delete(key); err != nil {
		if errors.Is(err, bplus.ErrKeyNotFound) {
			errColor.Fprintln(c.out, "Key not present!")
			return
		}
		c.logger.Error("delete failed", zap.Int("key", key), zap.Error(err))
		errColor.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	okColor.Fprintf(c.out, "Deleted %d\n", key)
}

func (c *Cli) processSearchCommand(args []string) {
	key, ok := c.parseKey(args, "SEARCH <key>")
	if !ok {
		return
	}
	parent, leaf := c.tree.Search(key)
	if leaf == nil {
		fmt.Fprintln(c.out, "Key not found.")
		return
	}
	fmt.Fprintf(c.out, "Found %d in leaf %s", key, bplus.FormatNode(leaf.Keys()))
	if parent != nil {
		fmt.Fprintf(c.out, " under %s", bplus.FormatNode(parent.Keys()))
	}
	fmt.Fprintln(c.out)
}

func (c *Cli) processDisplayCommand() {
	fmt.Fprintln(c.out)
	for i, level := range c.tree.Levels() {
		dimColor.Fprintf(c.out, "L%d  ", i)
		levelColor.Fprintln(c.out, bplus.FormatLevel(level))
	}
}

func (c *Cli) processStatsCommand() {
	s := c.tree.Stats()
	fmt.Fprintf(c.out, "order:          %d\n", s.Order)
	fmt.Fprintf(c.out, "keys:           %s\n", humanize.Comma(int64(s.Keys)))
	fmt.Fprintf(c.out, "height:         %d\n", s.Height)
	fmt.Fprintf(c.out, "nodes:          %s (%s leaves, %s internal)\n",
		humanize.Comma(int64(s.LiveNodes)), humanize.Comma(int64(s.Leaves)), humanize.Comma(int64(s.InternalNodes)))
	fmt.Fprintf(c.out, "splits/merges:  %s / %s\n", humanize.Comma(int64(s.Splits)), humanize.Comma(int64(s.Merges)))
	fmt.Fprintf(c.out, "borrows:        %s\n", humanize.Comma(int64(s.Borrows)))
	fmt.Fprintf(c.out, "root collapses: %s\n", humanize.Comma(int64(s.RootCollapses)))
	fmt.Fprintf(c.out, "parent cache:   %s hits, %s misses\n",
		humanize.Comma(int64(s.ParentCacheHits)), humanize.Comma(int64(s.ParentCacheMisses)))
}

func (c *Cli) processCheckCommand() {
	if err := c.tree.CheckInvariants(); err != nil {
		c.logger.Error("invariant check failed", zap.Error(err))
		errColor.Fprintf(c.out, "Tree is corrupt: %v\n", err)
		return
	}
	okColor.Fprintln(c.out, "Tree OK")
}

func (c *Cli) processSeedCommand(args []string) {
	if len(args) < 1 || len(args) > 2 {
		fmt.Fprintln(c.out, "Usage: SEED <n> [max]")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n <= 0 {
		errColor.Fprintf(c.out, "Invalid count %q\n", args[0])
		return
	}
	maxKey := DefaultSeedMax
	if len(args) == 2 {
		if maxKey, err = strconv.Atoi(args[1]); err != nil || maxKey < 0 {
			errColor.Fprintf(c.out, "Invalid max %q\n", args[1])
			return
		}
	}
	inserted, err := Seed(c.tree, n, maxKey)
	if err != nil {
		errColor.Fprintf(c.out, "Seed failed: %v\n", err)
		return
	}
	okColor.Fprintf(c.out, "Seeded %s keys (%s requested)\n", humanize.Comma(int64(inserted)), humanize.Comma(int64(n)))
}

// Seed inserts up to n distinct random keys drawn from [0, maxKey] and returns how many were new.
func Seed(t *bplus.BPlusTree, n, maxKey int) (int, error) {
	keys, err := faker.RandomInt(0, maxKey, n)
	if err != nil {
		return 0, errors.Wrap(err, "generate seed keys")
	}
	inserted := 0
	for _, k := range keys {
		if err := t.Insert(k); err != nil {
			if errors.Is(err, bplus.ErrDuplicateKey) {
				continue
			}
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}
