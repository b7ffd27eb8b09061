// Package cli constructs the brandbot command-line interface, wiring the Cobra
// command hierarchy to the configuration loader, the structured logger, and the
// brand, migration, and audit packages.
package cli
