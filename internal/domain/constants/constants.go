// Package constants holds identifiers shared across layers.
package constants

// Pub/Sub providers selectable through configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Reconciliation modes, recorded in logs and published events.
const (
	ReconcileModeBatch  = "batch"
	ReconcileModeInline = "inline"
	ReconcileModeSingle = "single"
)
