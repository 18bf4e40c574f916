// Package fakebackend serves canned dashboard data over the real endpoint
// surface, including a scripted scrape event stream. It backs the client
// tests and the offline demo server.
package fakebackend
