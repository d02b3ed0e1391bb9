// Package linear assigns boxes disjoint offset ranges in a linear buffer.
//
// A Concatenation is an append-only ledger: every pushed box receives the
// range [next, next+size) and the cursor advances. Nothing is ever removed
// or reordered, mirroring how discretization blocks are appended to a
// shared dataset as they are discovered.
//
// Thread Safety:
//   - Linearization is an immutable value and safe to share.
//   - Concatenation is NOT thread-safe: PushBack requires a single writer
//     or external locking.
package linear
