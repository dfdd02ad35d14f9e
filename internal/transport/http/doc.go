// Package http provides the HTTP transport layer: thin chi handlers that
// decode fully specified view requests, hand them to the services layer, and
// render whatever the pipeline returns. Handlers hold no view state of their
// own, and every failure renders as a typed "cannot display" payload rather
// than an empty chart.
package http
