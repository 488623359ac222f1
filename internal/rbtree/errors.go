package rbtree

import "errors"

// Errors returned by tree operations. None of them leaves the tree
// modified.
var (
	ErrDuplicateKey   = errors.New("key already present")
	ErrKeyNotFound    = errors.New("key not found")
	ErrEmptyTree      = errors.New("tree is empty")
	ErrNegativeKey    = errors.New("key must be non-negative")
	ErrRankOutOfRange = errors.New("rank out of range")
)
