package model

// Package model defines the domain data structures shared across the app:
// media records and the enumerations used to categorise and lay them out.
// Records are plain values; the catalog hands out deep copies only.
