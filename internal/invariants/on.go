//go:build invariants

package invariants

// Enabled makes every mutation of a tree verify the structure of the whole
// tree and panic on the first violation. It is expensive and meant for
// tests: go test -tags invariants ./...
const Enabled = true
