// Package audit scans directory trees for leftover references to a prior brand.
//
// Service walks each root depth-first through an afero filesystem, matches every line
// of text-like files against the legacy tokens of a migration manifest, suppresses
// known false positives, and prints a human-readable report. CommandBuilder wires the
// workflow into a cobra command whose error result doubles as the pass/fail signal.
package audit
