package ui

// Package ui contains the Fyne-based desktop user interface for the dashboard.
// It wires user interactions to the page controllers of package view and
// renders trends, niches, SEO previews, orders, the design vault and the
// seasonal calendar. All UI strings are localized via Localization.
