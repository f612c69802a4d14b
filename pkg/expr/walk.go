package expr

// CollectInternal returns every internal (non-leaf) node of the tree in
// pre-order. The returned nodes alias the tree, so SetChild on any of them
// edits root in place. A leaf root yields an empty slice.
func CollectInternal(root Expr) []Expr {
	var result []Expr
	collectInternalHelper(root, &result)
	return result
}

func collectInternalHelper(node Expr, result *[]Expr) {
	if node.IsLeaf() {
		return
	}
	*result = append(*result, node)
	for i := 0; i < node.NumChildren(); i++ {
		collectInternalHelper(node.Child(i), result)
	}
}

