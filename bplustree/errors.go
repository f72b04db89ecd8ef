package bplus

import "github.com/cockroachdb/errors"

var (
	ErrDuplicateKey  = errors.New("key already exists")
	ErrKeyNotFound   = errors.New("key not present")
	ErrInvalidOrder  = errors.New("invalid tree order")
	ErrInvalidConfig = errors.New("invalid tree config")
	ErrCorruptTree   = errors.New("tree invariant violated")
)

// corruptf tags an integrity failure with the node it was found on.
func corruptf(n *Node, format string, args ...interface{}) error {
	return errors.Wrapf(ErrCorruptTree, "node %d (%s): "+format, append([]interface{}{n.id, n.nodeType}, args...)...)
}
