// Package resolver applies resolution actions to duplicate groups.
//
// The first member of a group (the primary) is never touched. Every other
// member gets the requested action: reported, deleted, moved into a target
// directory, or replaced by a hard link to the primary. Failures are
// file-granular; a group is always processed to completion and the per-file
// outcomes are returned in a report.
//
// Interactive and batch use are composed, not separate engines: a Decider
// supplies the action for each group immediately before it is processed,
// and FixedDecider turns that exchange into a batch pass.
package resolver
