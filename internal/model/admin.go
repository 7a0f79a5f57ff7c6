package model

import "github.com/google/uuid"

// AdminStats is the dashboard rollup. AvgCompletion is the mean of
// per-enrollment progress percentages; an enrollment without a progress row
// counts as zero.
type AdminStats struct {
	TotalCourses     int64 `json:"total_courses"`
	ActiveStudents   int64 `json:"active_students"`
	TotalEnrollments int64 `json:"total_enrollments"`
	AvgCompletion    int   `json:"avg_completion"`
}

// CourseProgressSummary is one row of a student's per-course breakdown.
type CourseProgressSummary struct {
	CourseID        uuid.UUID `json:"course_id"`
	CourseTitle     string    `json:"course_title"`
	Progress        int       `json:"progress"`
	CompletedTopics int       `json:"completed_topics"`
	TotalTopics     int       `json:"total_topics"`
}

// StudentSummary is one row of the admin student table.
type StudentSummary struct {
	User
	EnrollmentCount int                      `json:"enrollment_count"`
	AvgProgress     int                      `json:"avg_progress"`
	CourseProgress  []*CourseProgressSummary `json:"course_progress"`
}

// StudentDetail is the admin drill-down for a single student.
type StudentDetail struct {
	User
	Enrollments  []*EnrollmentWithCourse  `json:"enrollments"`
	StudyUpdates []*StudyUpdateWithCourse `json:"study_updates"`
}
