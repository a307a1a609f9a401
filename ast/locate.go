package ast

// NodeCovering returns the deepest node in the tree rooted at root whose range includes offset, where a node's range
// includes both its start and end offsets. When more than one child of a node includes offset, the first in source
// order is chosen. It returns nil if offset lies outside of root.
func NodeCovering(root Node, offset int) Node {
	if offset < root.Offset() || offset > root.End() {
		return nil
	}
	current := root
	for {
		next := childCovering(current, offset)
		if next == nil {
			return current
		}
		current = next
	}
}

func childCovering(node Node, offset int) Node {
	for _, child := range Children(node) {
		if child.Offset() > offset {
			return nil
		}
		if offset <= child.End() {
			return child
		}
	}
	return nil
}
