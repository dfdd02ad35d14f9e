// Package services implements the host boundary between HTTP handlers and the
// data-view pipeline. It owns the loaded table snapshot and the secondary
// production record set, caching the load step strictly on source identity
// (path plus content hash) so repeated view requests never re-parse an
// unchanged source. A fresh load fully replaces the snapshot; the pipeline
// itself only ever sees an immutable table.
package services
