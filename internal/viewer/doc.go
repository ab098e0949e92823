package viewer

// Package viewer implements the paged document viewer state machine: page
// navigation, zoom and fit calculation, render-queue serialization, and
// keyboard, wheel, resize and visibility handling. It is independent of the
// UI toolkit; widgets are injected through Elements and all asynchronous work
// goes through a Scheduler so that every state transition runs on one loop.
