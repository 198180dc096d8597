package directory

import "github.com/kyambogo/exam-permit-system/internal/core/domain"

// Seed returns the demo credential directory shipped with the system: four
// students, two invigilators, and one admin. The plaintext secrets here are
// demo fixtures; they are bcrypt-hashed the moment the directory is built.
func Seed() []SeedEntry {
	return []SeedEntry{
		{
			Secret: "tracy",
			Identity: domain.Identity{
				ID:          "S123456",
				Name:        "Asiimire Tracy",
				Email:       "asiimiretracy@gmail.com",
				Role:        domain.RoleStudent,
				RegNumber:   "23/U/DCE/04387/PD",
				Semester:    "I",
				YearOfStudy: 2,
				Course:      "Bachelor of Computer Science",
				Gender:      "Female",
				Programme:   "Day",
				FeesBalance: 500000,
				PhotoURL:    "https://images.unsplash.com/photo-1649972904349-6e44c42644a7",
				Faculty:     "Science and Technology",
				Department:  "Computer Science",
			},
		},
		{
			Secret: "timothy",
			Identity: domain.Identity{
				ID:          "S234567",
				Name:        "Mubiru Timothy",
				Email:       "mubirutimothy@gmail.com",
				Role:        domain.RoleStudent,
				RegNumber:   "21/U/ITD/3925/PD",
				Semester:    "I",
				YearOfStudy: 2,
				Course:      "Bachelor in Information Technology and Computing",
				Gender:      "Male",
				Programme:   "Day",
				FeesBalance: 0,
				Faculty:     "Science and Technology",
				Department:  "Information Technology",
			},
		},
		{
			Secret: "david",
			Identity: domain.Identity{
				ID:          "S345678",
				Name:        "Twijukye David",
				Email:       "twijukyedavid@gmail.com",
				Role:        domain.RoleStudent,
				RegNumber:   "21/U/BBA/3345/PD",
				Semester:    "I",
				YearOfStudy: 2,
				Course:      "Bachelor in Business Administration",
				Gender:      "Male",
				Programme:   "Evening",
				FeesBalance: 0,
				Faculty:     "Business and Management",
				Department:  "Business Administration",
			},
		},
		{
			Secret: "cynthia",
			Identity: domain.Identity{
				ID:          "S456789",
				Name:        "Muyingo Cynthia",
				Email:       "muyingocynthia@gmail.com",
				Role:        domain.RoleStudent,
				RegNumber:   "21/U/ARC/38005/PD",
				Semester:    "I",
				YearOfStudy: 2,
				Course:      "Bachelor in Architecture",
				Gender:      "Female",
				Programme:   "Day",
				FeesBalance: 0,
				Faculty:     "Engineering",
				Department:  "Architecture",
			},
		},
		{
			Secret: "sophia",
			Identity: domain.Identity{
				ID:           "I789012",
				Name:         "Ms. Nakirayi Sophia",
				Email:        "nakirayisophia@kyu.edu",
				Role:         domain.RoleInvigilator,
				RegNumber:    "24/STAFF/002",
				Department:   "Computer Science",
				Faculty:      "Science and Technology",
				AcademicYear: "2025",
				Semester:     "II",
			},
		},
		{
			Secret: "joel",
			Identity: domain.Identity{
				ID:           "I654321",
				Name:         "Dr. Mugisha Joel",
				Email:        "mugishajoel@kyu.edu",
				Role:         domain.RoleInvigilator,
				RegNumber:    "24/STAFF/001",
				Department:   "Information Technology",
				Faculty:      "Science and Technology",
				AcademicYear: "2025",
				Semester:     "II",
			},
		},
		{
			Secret: "admin",
			Identity: domain.Identity{
				ID:    "A456789",
				Name:  "Admin User",
				Email: "admin@kyu.edu",
				Role:  domain.RoleAdmin,
			},
		},
	}
}
