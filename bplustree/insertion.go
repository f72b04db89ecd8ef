package bplus

import (
	"github.com/cockroachdb/errors"
)

// Insert adds key to the tree. A key that is already present is rejected with ErrDuplicateKey
// and the tree is left untouched.
func (t *BPlusTree) Insert(key int) error {
	if _, leaf := t.Search(key); leaf != nil {
		return errors.Wrapf(ErrDuplicateKey, "insert %d", key)
	}

	// If tree is empty
	if t.root.isEmpty() {
		t.root.insertKey(key)
		return nil
	}

	//find leaf
	parent, leaf := t.findLeaf(key)
	if !leaf.isFull() {
		leaf.insertKey(key)
		return nil
	}

	t.splitLeaf(parent, leaf, key)
	return nil
}
