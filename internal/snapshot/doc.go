// Package snapshot reads the variable snapshots produced by the legacy make
// evaluator and by the new configuration engine.
//
// Both sides share one schema, written as TOML or msgpack:
//
//	[[var]]
//	name  = "PRODUCT_PACKAGES"
//	type  = "list"              # optional: scalar|list
//	file  = "device/acme/product.mk"
//	line  = 12
//	words = ["Settings", "Camera"]
//
// A variable carries exactly one of value (a string), words (strings that
// inherit the variable's position) or items (tables of value/file/line).
// Problems inside a readable snapshot are reported as diag.SnapshotAnomaly;
// unreadable files are returned as errors.
package snapshot
