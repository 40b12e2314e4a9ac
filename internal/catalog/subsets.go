package catalog

// Featured returns up to n popular tools in catalog order.
func Featured(c Catalog, n int) []Tool {
	return firstN(c.Tools, n, func(t Tool) bool { return t.IsPopular })
}

// Newest returns up to n tools flagged new in catalog order.
func Newest(c Catalog, n int) []Tool {
	return firstN(c.Tools, n, func(t Tool) bool { return t.IsNew })
}

// Related returns up to n other tools sharing tool's category name.
func Related(c Catalog, tool Tool, n int) []Tool {
	return firstN(c.Tools, n, func(t Tool) bool {
		return t.Category == tool.Category && t.ID != tool.ID
	})
}

// CountByCategory returns the number of tools per category name.
func CountByCategory(c Catalog) map[string]int {
	out := make(map[string]int, len(c.Categories))
	for _, t := range c.Tools {
		out[t.Category]++
	}
	return out
}

func firstN(tools []Tool, n int, keep func(Tool) bool) []Tool {
	out := make([]Tool, 0, max(n, 0))
	if n <= 0 {
		return out
	}
	for _, t := range tools {
		if !keep(t) {
			continue
		}
		out = append(out, t)
		if len(out) == n {
			break
		}
	}
	return out
}
