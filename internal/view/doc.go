// Package view holds the per-page view state of the dashboard and the
// controllers that drive it.
//
// Every page owns its state. A fetch cycle goes through Resource, which
// clears the previous error, sets loading, and on settle applies either the
// data or the error. Responses of superseded cycles are dropped. Local
// copies of backend entities change only after the backend confirmed the
// change. Cross-page hand-offs go through the Navigator as one-shot seeds.
//
// Controllers are safe for use from UI callbacks and network goroutines.
// Their blocking methods take a context and are meant to run off the UI
// goroutine.
package view
