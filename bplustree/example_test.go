package bplus_test

import (
	"fmt"
	"os"

	bplus "BPlusIndex/bplustree"
)

func ExampleBPlusTree() {
	tree, err := bplus.New(4)
	if err != nil {
		panic(err)
	}
	defer tree.Close()

	for _, k := range []int{10, 20, 5, 6, 12, 30, 7, 17} {
		if err := tree.Insert(k); err != nil {
			fmt.Println(err)
		}
	}
	if err := tree.Insert(12); err != nil {
		fmt.Println(err)
	}

	for _, id := range []int{12, 99} {
		if _, leaf := tree.Search(id); leaf != nil {
			fmt.Printf("Found %d in %v\n", id, leaf.Keys())
		} else {
			fmt.Printf("Key %d not found\n", id)
		}
	}

	_ = tree.DisplayTo(os.Stdout)
	// Output:
	// insert 12: key already exists
	// Found 12 in [10 12 17]
	// Key 99 not found
	// [ 10 20 ]
	// [ 5 6 7 ]    [ 10 12 17 ]    [ 20 30 ]
}
