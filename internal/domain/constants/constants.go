// Package constants defines shared application-level constants.
package constants

const (
	// EnvDevelop marks the development environment.
	EnvDevelop = "develop"
	// EnvProduction marks the production environment.
	EnvProduction = "production"
)

const (
	// PubSubProviderLocal publishes integration messages over local HTTP for development.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes integration messages through Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

const (
	// RoleAdmin is required for catalog and discount management operations.
	RoleAdmin = "admin"
	// RoleCustomer is the default role for marketplace users.
	RoleCustomer = "customer"
)
