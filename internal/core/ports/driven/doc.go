// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - SearchAPI: The remote transcript search service
//   - Navigator: Address read/push with change notifications
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - AnalyticsSink: Fire-and-forget search submission events
//   - HistoryStore: Persistent search history
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
