// Package parse builds a *node.Node tree from source text: a recursive,
// indentation-driven structural parser with an interwoven comment
// collector that attaches pending comment blocks to the next node
// produced and routes document-trailing comments to the root's inline
// slot.
package parse
