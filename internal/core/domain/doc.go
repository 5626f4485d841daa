// Package domain defines the core entities of the tatt search client.
//
// This package is the innermost layer of the hexagonal architecture.
// It has NO external dependencies and defines the fundamental types:
//
//   - SearchQuery: The canonical in-memory search request
//   - Season: A story-arc filter from the fixed catalogue
//   - Location: The navigable address the query is mirrored into
//   - EpisodeResult / SearchResponse: The wire shapes of the search service
//   - ResultSet: The aggregated, paginated display model
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
