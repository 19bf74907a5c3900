// Package decode turns a satisfying CNF model back into a per-cell
// (label, direction type) grid, and detects any cycle components the
// encoding's purely-local degree constraints could not rule out.
//
// Decode is a straightforward inverse of the one-hot encoding: scan each
// cell's value (and, if free, direction) variables and record whichever one
// the model set true. It is also where an encoder bug would first become
// visible — if a cell's value or direction variables are not exactly
// one-hot true in a purportedly satisfying model, Decode returns
// ErrNotOneHot rather than silently picking one.
//
// DetectCycles walks the decoded path graph from each label's endpoint;
// any cell left unvisited afterward lies on a cycle, which is turned into
// a blocking clause forbidding that exact combination of direction
// choices. This is the classical lazy-counterexample pattern:
// local consistency is cheap to encode directly, global reachability is
// not, so global violations are discovered after the fact and forbidden
// one at a time.
package decode
