// Package rules holds the per-record translation checks and the engine that
// applies them in order.
//
// A rule inspects one record and returns zero or more messages. The two
// structural rules (whitespace-only and missing translation) stop the
// remaining rules for that record; every other rule is independent.
package rules
