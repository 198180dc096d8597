package memory

import "github.com/kyambogo/exam-permit-system/internal/core/domain"

// SeedPermits returns the demo permits matching the seeded student roster.
// Tracy's permit stays pending because of her outstanding fees balance.
func SeedPermits() []*domain.Permit {
	return []*domain.Permit{
		{
			ID:            "P2025-0001",
			StudentName:   "Asiimire Tracy",
			StudentNumber: "S123456",
			RegNumber:     "23/U/DCE/04387/PD",
			Gender:        "Female",
			Programme:     "Day",
			YearOfStudy:   2,
			Campus:        "Kyambogo Main",
			Semester:      "I",
			AcademicYear:  "2024/2025",
			Faculty:       "Science and Technology",
			Department:    "Computer Science",
			CourseName:    "Bachelor of Computer Science",
			CourseUnits: []domain.CourseUnit{
				{Code: "CSC2101", Name: "Data Structures and Algorithms", CreditUnits: 4, Category: "CORE"},
				{Code: "CSC2103", Name: "Database Systems", CreditUnits: 3, Category: "CORE"},
				{Code: "CSC2105", Name: "Operating Systems", CreditUnits: 3, Category: "CORE"},
			},
			ExamDate: "2025-05-12",
			Status:   domain.PermitPending,
			PhotoURL: "https://images.unsplash.com/photo-1649972904349-6e44c42644a7",
		},
		{
			ID:            "P2025-0002",
			StudentName:   "Mubiru Timothy",
			StudentNumber: "S234567",
			RegNumber:     "21/U/ITD/3925/PD",
			Gender:        "Male",
			Programme:     "Day",
			YearOfStudy:   2,
			Campus:        "Kyambogo Main",
			Semester:      "I",
			AcademicYear:  "2024/2025",
			Faculty:       "Science and Technology",
			Department:    "Information Technology",
			CourseName:    "Bachelor in Information Technology and Computing",
			CourseUnits: []domain.CourseUnit{
				{Code: "ITC2102", Name: "Web Systems and Technologies", CreditUnits: 4, Category: "CORE"},
				{Code: "ITC2104", Name: "Computer Networks", CreditUnits: 3, Category: "CORE"},
				{Code: "ITC2106", Name: "Systems Analysis and Design", CreditUnits: 3, Category: "ELECTIVE"},
			},
			ExamDate: "2025-05-12",
			Status:   domain.PermitValid,
		},
		{
			ID:            "P2025-0003",
			StudentName:   "Twijukye David",
			StudentNumber: "S345678",
			RegNumber:     "21/U/BBA/3345/PD",
			Gender:        "Male",
			Programme:     "Evening",
			YearOfStudy:   2,
			Campus:        "Kyambogo Main",
			Semester:      "I",
			AcademicYear:  "2024/2025",
			Faculty:       "Business and Management",
			Department:    "Business Administration",
			CourseName:    "Bachelor in Business Administration",
			CourseUnits: []domain.CourseUnit{
				{Code: "BBA2101", Name: "Financial Accounting II", CreditUnits: 4, Category: "CORE"},
				{Code: "BBA2103", Name: "Business Law", CreditUnits: 3, Category: "CORE"},
				{Code: "BBA2105", Name: "Marketing Principles", CreditUnits: 3, Category: "CORE", Retake: true},
			},
			ExamDate: "2025-05-13",
			Status:   domain.PermitValid,
		},
		{
			ID:            "P2025-0004",
			StudentName:   "Muyingo Cynthia",
			StudentNumber: "S456789",
			RegNumber:     "21/U/ARC/38005/PD",
			Gender:        "Female",
			Programme:     "Day",
			YearOfStudy:   2,
			Campus:        "Kyambogo Main",
			Semester:      "I",
			AcademicYear:  "2024/2025",
			Faculty:       "Engineering",
			Department:    "Architecture",
			CourseName:    "Bachelor in Architecture",
			CourseUnits: []domain.CourseUnit{
				{Code: "ARC2102", Name: "Architectural Design Studio III", CreditUnits: 5, Category: "CORE"},
				{Code: "ARC2104", Name: "Building Materials", CreditUnits: 3, Category: "CORE"},
			},
			ExamDate: "2025-05-14",
			Status:   domain.PermitValid,
		},
	}
}
