// Package diff computes the edit instructions needed to turn one flat
// key/value mapping into another, and applies saved instruction lists.
//
// A Session walks every key of the two mappings in a deterministic order,
// resolves each one into at most one Instruction (interactively or via
// auto-accept), and returns the accepted list. Apply later interprets such
// a list against an arbitrary target mapping under permission flags. The
// split exists because the mapping usually stands in for something with
// side effects (rows in a store), so changes must be reviewable and
// selectively suppressible rather than blindly performed.
//
// Key responsibilities:
//   - Classify keys into common / only-in-A / only-in-B groups
//   - Resolve each key's before/after values into an instruction
//   - Apply an instruction list to a target mapping under Permissions
package diff
