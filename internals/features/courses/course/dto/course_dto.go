package dto

type CreateCourseRequest struct {
	CourseTitle       string `json:"course_title" validate:"required,min=3,max=255"`
	CourseDescription string `json:"course_description"`
	CourseInstructor  string `json:"course_instructor" validate:"max=100"`
}

type UpdateCourseRequest struct {
	CourseTitle       *string `json:"course_title" validate:"omitempty,min=3,max=255"`
	CourseDescription *string `json:"course_description"`
	CourseInstructor  *string `json:"course_instructor" validate:"omitempty,max=100"`
}
