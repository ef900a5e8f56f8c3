package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// State store providers.
const (
	StoreProviderBlob     = "blob"
	StoreProviderPostgres = "postgres"
	StoreProviderRemote   = "remote"
)

// Snapshot defaults.
const (
	DefaultSnapshotKey = "db.json"
	DefaultBlobURL     = "file:///var/lib/crm"
)
