package dto

// ListCoursesRequest filters the catalog by exact department match.
type ListCoursesRequest struct {
	Department string `form:"department"`
}

// EnrollRequest enrolls the current user into a course.
type EnrollRequest struct {
	CourseID int64 `json:"course_id" binding:"required"`
}

// EnrollResponse reports the enrollment outcome. AlreadyEnrolled marks the
// soft-failure case: nothing changed, but the request is not an error.
type EnrollResponse struct {
	CourseID        int64 `json:"course_id"`
	Enrolled        bool  `json:"enrolled"`
	AlreadyEnrolled bool  `json:"already_enrolled"`
}
