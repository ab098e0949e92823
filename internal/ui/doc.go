package ui

// Package ui contains the Fyne-based user interface for the application.
// It binds the viewer state machine to Fyne widgets and renders the page view,
// toolbar, banners, library panel and settings. All UI strings are localized
// via Localization.
