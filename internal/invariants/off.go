//go:build !invariants

// Package invariants switches on expensive structural verification.
package invariants

const Enabled = false
