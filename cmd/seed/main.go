package main

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/studytrack/studytrack-backend/internal/config"
	"github.com/studytrack/studytrack-backend/internal/database"
	"github.com/studytrack/studytrack-backend/internal/logger"
	"github.com/studytrack/studytrack-backend/internal/model"
	"github.com/studytrack/studytrack-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var btechSubjectsBySemester = map[int][]string{
	1: {
		"Engineering Mathematics I",
		"Engineering Physics / Chemistry",
		"Programming in C",
		"Basic Electrical / Electronics Engineering",
		"Engineering Graphics / Workshop Practice",
		"Communication Skills",
		"Environmental Studies",
	},
	2: {
		"Engineering Mathematics II",
		"Data Structures using C",
		"Digital Logic",
		"Discrete Mathematics",
		"Object-Oriented Programming",
		"Lab Work",
	},
	3: {
		"Computer Organization and Architecture",
		"Data Structures & Algorithms",
		"Operating Systems",
		"Database Management Systems",
		"Software Engineering",
		"Lab Work",
	},
	4: {
		"Theory of Computation",
		"Microprocessors and Interfacing",
		"Design and Analysis of Algorithms",
		"Web Technologies",
		"Computer Networks",
		"Lab Work",
	},
	5: {
		"Compiler Design",
		"Artificial Intelligence",
		"Mobile Computing",
		"Elective I",
		"Computer Graphics",
		"Lab Work",
	},
	6: {
		"Machine Learning",
		"Software Project Management",
		"Information Security",
		"Elective II",
		"Lab Work",
	},
	7: {
		"Major Project Phase I",
		"Internship",
		"Elective III",
		"Seminar",
	},
	8: {
		"Major Project Phase II",
		"Comprehensive Viva",
		"Final Electives",
	},
}

var bcaSubjectsBySemester = map[int][]string{
	1: {
		"Fundamentals of Computers",
		"Programming in C",
		"Mathematics I",
		"Digital Electronics",
		"Communication Skills",
		"Lab Work",
	},
	2: {
		"Data Structures",
		"OOP using C++",
		"Mathematics II",
		"Operating Systems",
		"DBMS",
		"Lab Work",
	},
	3: {
		"Computer Networks",
		"Web Development",
		"Software Engineering",
		"Java Programming",
		"Lab Work",
	},
	4: {
		"Python Programming",
		"Advanced DBMS",
		"Design and Analysis of Algorithms",
		"Operating System Concepts",
		"Lab Work",
	},
	5: {
		"Mobile App Development",
		".NET Programming or PHP",
		"Artificial Intelligence",
		"Mini Project",
		"Lab Work",
	},
	6: {
		"Cloud Computing",
		"Major Project / Internship",
		"Computer Graphics",
		"Seminar",
	},
}

type seedTeacher struct {
	name              string
	email             string
	password          string
	department        string
	teacherCode       string
	assignedCourses   []string
	assignedSemesters []int
}

type seedStudent struct {
	name       string
	email      string
	password   string
	course     string
	semester   int
	enrollment string
}

var seedTeachers = []seedTeacher{
	{
		name:              "Rohit Kumar",
		email:             "rohitkumar@example.edu",
		password:          "teacherpass",
		department:        "CSE/IT",
		teacherCode:       "TCH101",
		assignedCourses:   []string{"BCA", "B.Tech"},
		assignedSemesters: []int{1, 2, 3},
	},
	{
		name:              "Sunita Sharma",
		email:             "sunitasharma@example.edu",
		password:          "teacherpass",
		department:        "CSE/IT",
		teacherCode:       "TCH102",
		assignedCourses:   []string{"B.Tech"},
		assignedSemesters: []int{4, 5, 6},
	},
	{
		name:              "Anil Singh",
		email:             "anilsingh@example.edu",
		password:          "teacherpass",
		department:        "CSE/IT",
		teacherCode:       "TCH103",
		assignedCourses:   []string{"BCA"},
		assignedSemesters: []int{4, 5, 6},
	},
}

var seedStudents = []seedStudent{
	{
		name:       "Karan Verma",
		email:      "karanverma@student.example.edu",
		password:   "studentpass",
		course:     "B.Tech",
		semester:   1,
		enrollment: "ENR203001",
	},
	{
		name:       "Priya Singh",
		email:      "priyasingh@student.example.edu",
		password:   "studentpass",
		course:     "BCA",
		semester:   2,
		enrollment: "ENR203002",
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	userRepo := repository.NewUserRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	teacherRepo := repository.NewTeacherRepository(pool)
	subjectRepo := repository.NewSubjectRepository(pool)
	timetableRepo := repository.NewTimetableRepository(pool)

	fmt.Println("=== Seeding StudyTrack Data ===")

	// Subjects
	count := 0
	for semester, names := range btechSubjectsBySemester {
		for _, name := range names {
			subject := &model.Subject{
				Name:     name,
				Code:     subjectCode(name, "B.Tech", semester),
				Course:   "B.Tech",
				Semester: semester,
			}
			if err := subjectRepo.Create(ctx, subject); err != nil {
				fmt.Printf("Error creating subject %s: %v\n", name, err)
				continue
			}
			count++
		}
	}
	for semester, names := range bcaSubjectsBySemester {
		for _, name := range names {
			subject := &model.Subject{
				Name:     name,
				Code:     subjectCode(name, "BCA", semester),
				Course:   "BCA",
				Semester: semester,
			}
			if err := subjectRepo.Create(ctx, subject); err != nil {
				fmt.Printf("Error creating subject %s: %v\n", name, err)
				continue
			}
			count++
		}
	}
	fmt.Printf("Seeded %d subjects\n", count)

	// Admin identity
	adminHash, err := bcrypt.GenerateFromPassword([]byte("adminpass"), cfg.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash admin password")
	}
	admin := &model.User{
		Name:         "Seed Admin",
		Email:        "admin@example.edu",
		PasswordHash: string(adminHash),
		Role:         model.RoleAdmin,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		fmt.Printf("Error creating admin: %v\n", err)
	} else {
		fmt.Printf("Seeded admin %s\n", admin.Email)
	}

	// Teachers with login identities
	var firstTeachers []*model.Teacher
	for _, t := range seedTeachers {
		hash, err := bcrypt.GenerateFromPassword([]byte(t.password), cfg.BcryptCost)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to hash teacher password")
		}
		user := &model.User{
			Name:         t.name,
			Email:        strings.ToLower(t.email),
			PasswordHash: string(hash),
			Role:         model.RoleTeacher,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			fmt.Printf("Error creating teacher user %s: %v\n", t.email, err)
			continue
		}
		teacher := &model.Teacher{
			UserID:            &user.ID,
			Name:              t.name,
			Email:             user.Email,
			Department:        t.department,
			TeacherCode:       t.teacherCode,
			AssignedCourses:   t.assignedCourses,
			AssignedSemesters: t.assignedSemesters,
		}
		if err := teacherRepo.Create(ctx, teacher); err != nil {
			fmt.Printf("Error creating teacher profile %s: %v\n", t.name, err)
			continue
		}
		firstTeachers = append(firstTeachers, teacher)
	}
	fmt.Printf("Seeded %d teachers\n", len(firstTeachers))

	// Students with login identities
	studentCount := 0
	for _, s := range seedStudents {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), cfg.BcryptCost)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to hash student password")
		}
		user := &model.User{
			Name:         s.name,
			Email:        strings.ToLower(s.email),
			PasswordHash: string(hash),
			Role:         model.RoleStudent,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			fmt.Printf("Error creating student user %s: %v\n", s.email, err)
			continue
		}
		student := &model.Student{
			UserID:     &user.ID,
			Name:       s.name,
			Enrollment: strings.ToUpper(s.enrollment),
			Course:     s.course,
			Semester:   s.semester,
		}
		if err := studentRepo.Create(ctx, student); err != nil {
			fmt.Printf("Error creating student profile %s: %v\n", s.name, err)
			continue
		}
		studentCount++
	}
	fmt.Printf("Seeded %d students\n", studentCount)

	// One sample timetable slot per course.
	if len(firstTeachers) >= 2 {
		entries := []*model.TimetableEntry{
			{
				Course:      "B.Tech",
				Semester:    1,
				Day:         "Monday",
				Period:      1,
				Subject:     btechSubjectsBySemester[1][0],
				TeacherID:   &firstTeachers[0].ID,
				TeacherName: firstTeachers[0].Name,
			},
			{
				Course:      "BCA",
				Semester:    1,
				Day:         "Monday",
				Period:      1,
				Subject:     bcaSubjectsBySemester[1][0],
				TeacherID:   &firstTeachers[1].ID,
				TeacherName: firstTeachers[1].Name,
			},
		}
		for _, entry := range entries {
			if err := timetableRepo.Create(ctx, entry); err != nil {
				fmt.Printf("Error creating timetable entry: %v\n", err)
			}
		}
		fmt.Println("Seeded timetable entries")
	}

	fmt.Println("\nSeed completed!")
}

// subjectCode derives a short unique code from the subject name, course
// prefix and semester, e.g. "Programming in C" / BCA / 1 -> "BC_PIC1".
func subjectCode(name, course string, semester int) string {
	var initials strings.Builder
	for _, word := range strings.FieldsFunc(name, func(r rune) bool {
		return r == ' ' || r == '/' || r == '-' || r == '(' || r == ')'
	}) {
		initials.WriteRune(unicode.ToUpper(rune(word[0])))
	}

	var prefix strings.Builder
	for _, r := range course {
		if unicode.IsLetter(r) {
			prefix.WriteRune(unicode.ToUpper(r))
		}
		if prefix.Len() == 2 {
			break
		}
	}

	return fmt.Sprintf("%s_%s%d", prefix.String(), initials.String(), semester)
}
