// Package basisio reads and writes lattice bases.
//
// Three encodings are supported:
//
//	text   "rows cols" header line, then one whitespace-separated row per line
//	json   {"rows": 2, "cols": 2, "basis": [[1, 1], [-1, 2]]}
//	yaml   the same document in YAML
//
// Open and Create pick the encoding from the file extension and stream
// through zstd when the name ends in ".zst" (e.g. "basis.json.zst").
package basisio
