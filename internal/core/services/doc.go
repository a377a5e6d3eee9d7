// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate calls to
// driven ports (adapters): the pipeline service builds the dataset,
// the query service searches and resolves it.
package services
