package model

// Package model defines domain data structures used across the app: viewer
// state, status and fit-mode enums, and library entries. Structures are
// plain values designed for explicit state transitions.
