// Package rules decides which artists fanbox-dl processes.
//
// Rules come from a line-oriented file: each line is an exclude pattern,
// a leading '!' marks an include (override) pattern, blank lines and
// '#' comments are skipped. A missing file is an empty rule set, not an
// error.
//
// Patterns support four wildcard forms: "*" matches everything,
// "*sub*" matches containment, "*suffix" and "prefix*" match ends,
// anything else matches exactly. A pattern is tried against all four of
// an artist's identifiers (name, plan title, user id, creator id).
//
// Precedence, strictly in this order: any include match keeps the artist
// (even against a blanket "*" exclude); a literal "*" exclude skips;
// any exclude match skips; otherwise the artist is kept.
package rules
