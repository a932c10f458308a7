// Package stationstats computes per-station minimum, mean and maximum
// temperatures over very large measurement files.
//
// data:
//
//	Tamale;27.5
//	Bergen;9.6
//	Lodwar;37.1
//	Whitehorse;-3.8
//	Ouarzazate;19.1
//
// The file is mapped into memory as one immutable buffer, cut into one
// range per worker on record boundaries, aggregated in parallel with no
// shared mutable state, then merged and printed as a single sorted line:
//
//	{Bergen=9.6/9.6/9.6, Lodwar=37.1/37.1/37.1, ...}
//
// Temperatures carry exactly one fractional digit and are handled as
// integer tenths throughout; no float parsing happens on the hot path.
package stationstats
