package platform

// Package platform contains OS/platform integration: filesystem helpers,
// renamed-file lookup and OS open/reveal for documents.
