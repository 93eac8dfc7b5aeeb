// Package validation builds form.ValidateFunc implementations from per-field
// rules (required, length bounds, patterns, cross-field equality, markup
// checks). Length rules count characters, not bytes.
package validation
