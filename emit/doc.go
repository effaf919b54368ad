// Package emit pretty-prints a *node.Node back to text: a fixed
// two-space indent step, leading and inline comments restored at the
// position the parser found them, and multiline strings always
// rendered as literal block scalars regardless of how the source that
// produced them was written.
package emit
