// Package file implements a TOML-backed configuration store kept in
// the user's gregdex directory.
package file
