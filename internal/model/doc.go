// Package model defines the data structures the dashboard works with:
// trends, niche validations and design ideas, vault entries, orders,
// Shopify products, calendar events, and the scrape job state. Structures
// decode directly from backend JSON and carry the pure derivations the
// pages render (filters, margins, urgency buckets, cost summaries).
package model
