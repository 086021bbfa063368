// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package inmemorystore provides the registration store: a thread-safe,
// in-memory mapping from canonical string keys to values.
//
// # Characteristics
//
//   - **Unique keys:** Set on an existing key replaces the value in place.
//   - **Total operations:** Get reports a miss with a boolean, Delete of an
//     absent key is a no-op. Nothing in this package returns an error.
//   - **Shared values:** the store holds one reference per value. Replacing or
//     deleting an entry drops only that reference, so a value a caller
//     obtained earlier stays valid.
//
// # Concurrency Model
//
// Registration is write-rare and lookup-heavy: values are installed during
// startup and read for every element of every parsed document. The store
// therefore uses a sync.RWMutex. Writers (Set, Delete) take the exclusive
// lock, readers (Get, Len, Keys, Clone) the shared lock. No operation blocks
// beyond the critical section, so none takes a context.
package inmemorystore
