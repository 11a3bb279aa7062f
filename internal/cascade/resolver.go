// Package cascade maintains a layered form selection (course, then
// semester, then subject or teacher) where each layer's options depend on
// every layer above it. Changing a layer clears everything below it, and a
// fetch result only commits if no upstream layer changed while the fetch
// was in flight.
package cascade

import (
	"context"
	"errors"
	"sync"

	"github.com/studytrack/studytrack-backend/internal/catalog"
	"github.com/studytrack/studytrack-backend/internal/model"
)

// ErrUnknownCourse is returned when a course has no catalog entry.
var ErrUnknownCourse = errors.New("unknown course")

// ErrNoCourse is returned when a downstream layer is set before its parents.
var ErrNoCourse = errors.New("no course selected")

// SubjectSource fetches the subject options for a (course, semester) scope.
type SubjectSource interface {
	Subjects(ctx context.Context, course string, semester int) ([]model.Subject, error)
}

// TeacherSource fetches the teacher options for a course.
type TeacherSource interface {
	Teachers(ctx context.Context, course string) ([]model.Teacher, error)
}

// Selection is the current partial tuple. A later field never holds a value
// inconsistent with the earlier ones: every upstream change eagerly resets
// everything downstream.
type Selection struct {
	Course    string
	Semester  int // 0 when unset
	Subject   string
	TeacherID int // 0 when unset
}

// Snapshot is a copy of the resolver state handed to callers.
type Snapshot struct {
	Selection       Selection
	SemesterOptions []int
	SubjectOptions  []model.Subject
	TeacherOptions  []model.Teacher
	Err             error
}

// Resolver drives the cascading selection. Safe for concurrent use; each
// option fetch is stamped with the selection version current when it was
// issued and is discarded if the selection moved on before it returned.
type Resolver struct {
	catalog  *catalog.Catalog
	subjects SubjectSource
	teachers TeacherSource

	mu              sync.Mutex
	version         uint64
	selection       Selection
	semesterOptions []int
	subjectOptions  []model.Subject
	teacherOptions  []model.Teacher
	err             error
}

// NewResolver creates a Resolver over the given catalog and option sources.
func NewResolver(cat *catalog.Catalog, subjects SubjectSource, teachers TeacherSource) *Resolver {
	return &Resolver{catalog: cat, subjects: subjects, teachers: teachers}
}

// SetCourse selects a course: semester, subject and teacher reset, the
// semester options recompute from the catalog, and the teacher options for
// the course are fetched. Any previous error is cleared.
func (r *Resolver) SetCourse(ctx context.Context, course string) error {
	semesters, ok := r.catalog.Semesters(course)
	if !ok {
		return ErrUnknownCourse
	}

	r.mu.Lock()
	r.version++
	v := r.version
	r.selection = Selection{Course: course}
	r.semesterOptions = semesters
	r.subjectOptions = nil
	r.teacherOptions = nil
	r.err = nil
	r.mu.Unlock()

	teachers, err := r.teachers.Teachers(ctx, course)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.version != v {
		// The selection moved on while the fetch was in flight; a stale
		// option list must not overwrite the newer state.
		return nil
	}
	if err != nil {
		r.teacherOptions = nil
		r.err = err
		return err
	}
	r.teacherOptions = teachers
	return nil
}

// SetSemester selects a semester under the current course and fetches the
// subject options for the (course, semester) pair. Subject and teacher
// selections reset; teacher options (scoped to the course only) survive.
func (r *Resolver) SetSemester(ctx context.Context, semester int) error {
	r.mu.Lock()
	if r.selection.Course == "" {
		r.mu.Unlock()
		return ErrNoCourse
	}
	if !containsInt(r.semesterOptions, semester) {
		r.mu.Unlock()
		return ErrUnknownCourse
	}
	r.version++
	v := r.version
	course := r.selection.Course
	r.selection.Semester = semester
	r.selection.Subject = ""
	r.selection.TeacherID = 0
	r.subjectOptions = nil
	r.err = nil
	r.mu.Unlock()

	subjects, err := r.subjects.Subjects(ctx, course, semester)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.version != v {
		return nil
	}
	if err != nil {
		// Surface once, no automatic retry; the option list stays empty.
		r.subjectOptions = nil
		r.err = err
		return err
	}
	r.subjectOptions = subjects
	return nil
}

// SetSubject selects a subject. Leaf layer: nothing cascades below it.
func (r *Resolver) SetSubject(subject string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.selection.Course == "" || r.selection.Semester == 0 {
		return ErrNoCourse
	}
	r.version++
	r.selection.Subject = subject
	r.err = nil
	return nil
}

// SetTeacher selects a teacher. Leaf layer: nothing cascades below it.
func (r *Resolver) SetTeacher(teacherID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.selection.Course == "" {
		return ErrNoCourse
	}
	r.version++
	r.selection.TeacherID = teacherID
	r.err = nil
	return nil
}

// Snapshot returns a copy of the current selection, options and error.
func (r *Resolver) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Snapshot{
		Selection:       r.selection,
		SemesterOptions: append([]int(nil), r.semesterOptions...),
		SubjectOptions:  append([]model.Subject(nil), r.subjectOptions...),
		TeacherOptions:  append([]model.Teacher(nil), r.teacherOptions...),
		Err:             r.err,
	}
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
