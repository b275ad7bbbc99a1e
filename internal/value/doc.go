// Package value models build variable values the way the legacy Make
// evaluator sees them.
//
// A Str is an immutable string tagged with the position it was read from.
// A Value is either a scalar Str or an ordered list of Strs. Both shapes
// normalize to a single canonical Str: whitespace runs collapse to one
// space, ends are trimmed, and empty list elements disappear. Two values are
// semantically equal when their normalized texts are equal; positions never
// take part in comparisons.
//
// Absence is modelled explicitly with Normalized so that "unset" and "set to
// the empty string" stay distinguishable all the way to the report.
package value
