// Package node defines the tree shape parsed documents are built from and
// emitted from.
//
// A Node is a value plus optional leading and inline comments. A Value is
// exactly one of String, Mapping, or Sequence: there is no implicit typing
// and no other variant. Ownership is tree-shaped — no node appears in more
// than one tree, and there are no back-references from child to parent.
package node
