package course

import "math"

// DefaultPassingScore is the quiz pass threshold (percent).
const DefaultPassingScore = 60

// Progress computes the user's completion percentage of a course from its
// content list and activity logs: round(completed/total*100). A course with no
// content is 0% complete. Logs belonging to other users or referencing content
// outside the course are ignored.
func Progress(userID int, c Course) int {
	total := len(c.Content)
	if total == 0 {
		return 0
	}

	ids := make(map[int]struct{}, total)
	for _, cc := range c.Content {
		ids[cc.ID] = struct{}{}
	}

	completed := make(map[int]struct{}, total)
	for _, l := range c.ActivityLogs {
		if l.UserID != userID || l.Status != StatusCompleted {
			continue
		}
		if _, ok := ids[l.ContentID]; ok {
			completed[l.ContentID] = struct{}{}
		}
	}
	return int(math.Round(float64(len(completed)) / float64(total) * 100))
}

// IsQuizPassed reports whether round(score/total*100) meets the passing score.
// A zero-question quiz can never pass.
func IsQuizPassed(score, total int, passingScore ...int) bool {
	passing := DefaultPassingScore
	if len(passingScore) > 0 {
		passing = passingScore[0]
	}
	if total <= 0 {
		return false
	}
	pct := int(math.Round(float64(score) / float64(total) * 100))
	return pct >= passing
}

// Stats aggregates dashboard figures over an already-fetched course list.
type Stats struct {
	Total       int `json:"total"`
	Enrolled    int `json:"enrolled"`
	InProgress  int `json:"inProgress"`
	Completed   int `json:"completed"`
	AvgProgress int `json:"avgProgress"`
}

func ComputeStats(userID int, courses []Course) Stats {
	var s Stats
	s.Total = len(courses)
	if s.Total == 0 {
		return s
	}

	var progressSum int
	for _, c := range courses {
		switch c.EnrollmentStatus(userID) {
		case StatusEnrolled:
			s.Enrolled++
		case StatusInProgress:
			s.InProgress++
		case StatusCompleted:
			s.Completed++
		}
		progressSum += Progress(userID, c)
	}
	s.AvgProgress = int(math.Round(float64(progressSum) / float64(s.Total)))
	return s
}
