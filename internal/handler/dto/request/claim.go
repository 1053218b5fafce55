package request

type ClaimRequest struct {
	StudentName  string `json:"student_name" binding:"required"`
	StudentEmail string `json:"student_email" binding:"required,email"`
}
