// Package app wires the application together: configuration, logging,
// services, middleware chain, routes, and graceful shutdown. It is the only
// package that knows about every other layer.
package app
