package repository

import "errors"

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., memory) inside this directory.

// ErrNotFound is returned by implementations when the referenced identifier
// is absent from the store.
var ErrNotFound = errors.New("record not found")
