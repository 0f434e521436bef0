package ledger

// Removal reasons returned by ShouldRemove
const (
	RemovalReasonThreshold = "report_threshold"
	RemovalReasonUnengaged = "unengaged_reports"
	RemovalReasonRatio     = "report_like_ratio"
)

// ShouldRemove classifies a post as removed from its raw report and like
// counts. It is a pure read-time rule: reportPost never consults it, and the
// stored ledger rows are untouched by the outcome, so the policy can be
// recomputed retroactively over historical counts. Report type and reason are
// intentionally ignored.
//
// A post is removed once any of these hold:
//   - at least 5 reports, regardless of engagement
//   - no likes and at least 3 reports
//   - at least twice as many reports as likes
func ShouldRemove(reportCount, likeCount int64) (bool, string) {
	if reportCount >= 5 {
		return true, RemovalReasonThreshold
	}
	if likeCount == 0 && reportCount >= 3 {
		return true, RemovalReasonUnengaged
	}
	if likeCount > 0 && reportCount >= 2*likeCount {
		return true, RemovalReasonRatio
	}
	return false, ""
}
