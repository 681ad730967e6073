package catalog

// Package catalog owns the ordered, in-memory gallery. The record list is only
// ever replaced, never edited in place: favorite toggling builds a new slice
// with one new record and broadcasts a deep-copied snapshot to subscribers.
