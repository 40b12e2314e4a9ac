package catalog

import "fmt"

// IssueKind classifies a Validate finding.
type IssueKind string

const (
	IssueUnknownCategory   IssueKind = "unknown_category"
	IssueDuplicateTool     IssueKind = "duplicate_tool_id"
	IssueDuplicateCategory IssueKind = "duplicate_category_id"
	IssueDuplicateName     IssueKind = "duplicate_category_name"
	IssueRatingRange       IssueKind = "rating_out_of_range"
	IssueReviewCount       IssueKind = "negative_review_count"
	IssueMissingID         IssueKind = "missing_id"
)

// Issue describes a record that breaks a catalog invariant.
type Issue struct {
	Kind   IssueKind `json:"kind"`
	ID     string    `json:"id"`
	Detail string    `json:"detail"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s %s: %s", i.Kind, i.ID, i.Detail)
}

// Validate reports invariant violations without modifying the catalog.
// Tools whose category is unknown are still served but never match a
// category filter.
func (c Catalog) Validate() []Issue {
	var issues []Issue

	names := make(map[string]struct{}, len(c.Categories))
	catIDs := make(map[string]struct{}, len(c.Categories))
	for _, cat := range c.Categories {
		if cat.ID == "" {
			issues = append(issues, Issue{Kind: IssueMissingID, Detail: fmt.Sprintf("category %q has no id", cat.Name)})
		} else if _, dup := catIDs[cat.ID]; dup {
			issues = append(issues, Issue{Kind: IssueDuplicateCategory, ID: cat.ID, Detail: "category id appears more than once"})
		}
		catIDs[cat.ID] = struct{}{}
		if _, dup := names[cat.Name]; dup {
			issues = append(issues, Issue{Kind: IssueDuplicateName, ID: cat.ID, Detail: fmt.Sprintf("category name %q appears more than once", cat.Name)})
		}
		names[cat.Name] = struct{}{}
	}

	toolIDs := make(map[string]struct{}, len(c.Tools))
	for _, t := range c.Tools {
		if t.ID == "" {
			issues = append(issues, Issue{Kind: IssueMissingID, Detail: fmt.Sprintf("tool %q has no id", t.Name)})
		} else if _, dup := toolIDs[t.ID]; dup {
			issues = append(issues, Issue{Kind: IssueDuplicateTool, ID: t.ID, Detail: "tool id appears more than once"})
		}
		toolIDs[t.ID] = struct{}{}
		if _, ok := names[t.Category]; !ok {
			issues = append(issues, Issue{Kind: IssueUnknownCategory, ID: t.ID, Detail: fmt.Sprintf("category %q matches no category name", t.Category)})
		}
		if t.Rating < 0 || t.Rating > 5 {
			issues = append(issues, Issue{Kind: IssueRatingRange, ID: t.ID, Detail: fmt.Sprintf("rating %.2f outside 0-5", t.Rating)})
		}
		if t.ReviewCount < 0 {
			issues = append(issues, Issue{Kind: IssueReviewCount, ID: t.ID, Detail: fmt.Sprintf("review count %d", t.ReviewCount)})
		}
	}
	return issues
}
