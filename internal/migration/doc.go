// Package migration describes how a prior brand identity maps onto the current one.
//
// A Manifest is the single versioned source for the legacy tokens the auditor hunts
// for and for the rules that suppress known false positives. Each replacement names
// the field of the current brand record that supersedes the legacy value.
package migration
