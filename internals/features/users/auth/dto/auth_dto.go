package dto

type RegisterStudentRequest struct {
	StudentName     string `json:"student_name" validate:"required,min=3,max=100"`
	StudentEmail    string `json:"student_email" validate:"required,email"`
	StudentPassword string `json:"student_password" validate:"required,min=6"`
}

type LoginStudentRequest struct {
	StudentEmail    string `json:"student_email" validate:"required,email"`
	StudentPassword string `json:"student_password" validate:"required"`
}

type LoginAdminRequest struct {
	AdminUsername string `json:"admin_username" validate:"required"`
	AdminPassword string `json:"admin_password" validate:"required"`
}

type LoginGoogleRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}
