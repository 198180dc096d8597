package handler

type createStudentRequest struct {
	Name        string `json:"name"          validate:"required"`
	Email       string `json:"email"         validate:"required,email"`
	RegNumber   string `json:"reg_number"    validate:"required"`
	Semester    string `json:"semester"      validate:"required,oneof=I II"`
	YearOfStudy int    `json:"year_of_study" validate:"required,min=1,max=6"`
	Course      string `json:"course"        validate:"required"`
	Gender      string `json:"gender"`
	Programme   string `json:"programme"     validate:"omitempty,oneof=Day Evening"`
	FeesBalance int64  `json:"fees_balance"  validate:"min=0"`
	Faculty     string `json:"faculty"       validate:"required"`
	Department  string `json:"department"    validate:"required"`
}

type createInvigilatorRequest struct {
	Name         string `json:"name"          validate:"required"`
	Email        string `json:"email"         validate:"required,email"`
	StaffNumber  string `json:"staff_number"  validate:"required"`
	Department   string `json:"department"    validate:"required"`
	Faculty      string `json:"faculty"       validate:"required"`
	AcademicYear string `json:"academic_year" validate:"required"`
	Semester     string `json:"semester"      validate:"required,oneof=I II"`
}
