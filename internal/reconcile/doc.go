// Package reconcile compares the variables computed by the legacy make
// evaluator with the ones computed by the new configuration engine.
//
// Inclusion is decided on raw text: a name is examined when it was added,
// when its raw text changed, or when it disappeared from the computed side.
// A removed variable is treated as a transition to the empty string, not to
// unset. Equality of examined names is then decided on normalized text, so
// whitespace-only differences vanish while reordered list elements do not.
package reconcile
