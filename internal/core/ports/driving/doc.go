// Package driving defines the interfaces external actors use to
// drive the core.
//
// These are the "driving" or "primary" ports in hexagonal
// architecture. The CLI adapter calls these; services implement them.
package driving
