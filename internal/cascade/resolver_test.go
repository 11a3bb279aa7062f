package cascade

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/studytrack/studytrack-backend/internal/catalog"
	"github.com/studytrack/studytrack-backend/internal/model"
)

type fakeSubjects struct {
	subjects []model.Subject
	err      error
	onFetch  func()
	calls    int
}

func (f *fakeSubjects) Subjects(ctx context.Context, course string, semester int) ([]model.Subject, error) {
	f.calls++
	if f.onFetch != nil {
		f.onFetch()
	}
	return f.subjects, f.err
}

type fakeTeachers struct {
	teachers []model.Teacher
	err      error
}

func (f *fakeTeachers) Teachers(ctx context.Context, course string) ([]model.Teacher, error) {
	return f.teachers, f.err
}

func testResolver(subjects *fakeSubjects, teachers *fakeTeachers) *Resolver {
	cat := catalog.New(map[string]int{"BCA": 6, "B.Tech": 8})
	return NewResolver(cat, subjects, teachers)
}

func TestSetCourseComputesSemesterOptions(t *testing.T) {
	r := testResolver(&fakeSubjects{}, &fakeTeachers{
		teachers: []model.Teacher{{ID: 1, Name: "Rohit Kumar"}},
	})

	if err := r.SetCourse(context.Background(), "BCA"); err != nil {
		t.Fatalf("SetCourse(BCA) error: %v", err)
	}
	snap := r.Snapshot()
	if want := []int{1, 2, 3, 4, 5, 6}; !reflect.DeepEqual(snap.SemesterOptions, want) {
		t.Errorf("SemesterOptions = %v, want %v", snap.SemesterOptions, want)
	}
	if len(snap.TeacherOptions) != 1 {
		t.Errorf("TeacherOptions = %v, want one teacher", snap.TeacherOptions)
	}

	if err := r.SetCourse(context.Background(), "B.Tech"); err != nil {
		t.Fatalf("SetCourse(B.Tech) error: %v", err)
	}
	snap = r.Snapshot()
	if want := []int{1, 2, 3, 4, 5, 6, 7, 8}; !reflect.DeepEqual(snap.SemesterOptions, want) {
		t.Errorf("SemesterOptions = %v, want %v", snap.SemesterOptions, want)
	}
}

func TestSetCourseUnknown(t *testing.T) {
	r := testResolver(&fakeSubjects{}, &fakeTeachers{})
	if err := r.SetCourse(context.Background(), "MBA"); !errors.Is(err, ErrUnknownCourse) {
		t.Errorf("SetCourse(MBA) error = %v, want ErrUnknownCourse", err)
	}
}

func TestUpstreamChangeResetsDownstream(t *testing.T) {
	subjects := &fakeSubjects{subjects: []model.Subject{{ID: 1, Name: "DBMS"}}}
	r := testResolver(subjects, &fakeTeachers{teachers: []model.Teacher{{ID: 7}}})
	ctx := context.Background()

	if err := r.SetCourse(ctx, "BCA"); err != nil {
		t.Fatal(err)
	}
	if err := r.SetSemester(ctx, 2); err != nil {
		t.Fatal(err)
	}
	if err := r.SetSubject("DBMS"); err != nil {
		t.Fatal(err)
	}
	if err := r.SetTeacher(7); err != nil {
		t.Fatal(err)
	}

	// Changing the course clears every downstream layer and its options.
	if err := r.SetCourse(ctx, "B.Tech"); err != nil {
		t.Fatal(err)
	}
	snap := r.Snapshot()
	if snap.Selection.Semester != 0 || snap.Selection.Subject != "" || snap.Selection.TeacherID != 0 {
		t.Errorf("downstream selection not reset: %+v", snap.Selection)
	}
	if len(snap.SubjectOptions) != 0 {
		t.Errorf("SubjectOptions = %v, want empty", snap.SubjectOptions)
	}

	// Changing the semester clears the subject and teacher selections.
	if err := r.SetSemester(ctx, 3); err != nil {
		t.Fatal(err)
	}
	if err := r.SetSubject("OS"); err != nil {
		t.Fatal(err)
	}
	if err := r.SetSemester(ctx, 4); err != nil {
		t.Fatal(err)
	}
	snap = r.Snapshot()
	if snap.Selection.Subject != "" {
		t.Errorf("Subject = %q, want reset", snap.Selection.Subject)
	}
}

func TestSemesterOutsideCourseRange(t *testing.T) {
	r := testResolver(&fakeSubjects{}, &fakeTeachers{})
	ctx := context.Background()

	if err := r.SetSemester(ctx, 1); !errors.Is(err, ErrNoCourse) {
		t.Errorf("SetSemester before course error = %v, want ErrNoCourse", err)
	}

	if err := r.SetCourse(ctx, "BCA"); err != nil {
		t.Fatal(err)
	}
	if err := r.SetSemester(ctx, 7); !errors.Is(err, ErrUnknownCourse) {
		t.Errorf("SetSemester(7) under BCA error = %v, want ErrUnknownCourse", err)
	}
}

func TestStaleFetchDiscarded(t *testing.T) {
	ctx := context.Background()
	subjects := &fakeSubjects{subjects: []model.Subject{{ID: 1, Name: "Stale Subject"}}}
	r := testResolver(subjects, &fakeTeachers{})

	// While the semester-2 subject fetch is in flight, the course changes.
	// The fetched options must not overwrite the newer state.
	subjects.onFetch = func() {
		subjects.onFetch = nil
		if err := r.SetCourse(ctx, "B.Tech"); err != nil {
			t.Fatal(err)
		}
	}

	if err := r.SetCourse(ctx, "BCA"); err != nil {
		t.Fatal(err)
	}
	if err := r.SetSemester(ctx, 2); err != nil {
		t.Fatal(err)
	}

	snap := r.Snapshot()
	if snap.Selection.Course != "B.Tech" {
		t.Errorf("Course = %q, want B.Tech", snap.Selection.Course)
	}
	if snap.Selection.Semester != 0 {
		t.Errorf("Semester = %d, want 0 after course change", snap.Selection.Semester)
	}
	if len(snap.SubjectOptions) != 0 {
		t.Errorf("SubjectOptions = %v, want stale fetch discarded", snap.SubjectOptions)
	}
}

func TestFetchErrorSurfacesOnce(t *testing.T) {
	ctx := context.Background()
	fetchErr := errors.New("subject source down")
	subjects := &fakeSubjects{err: fetchErr}
	r := testResolver(subjects, &fakeTeachers{})

	if err := r.SetCourse(ctx, "BCA"); err != nil {
		t.Fatal(err)
	}
	if err := r.SetSemester(ctx, 1); !errors.Is(err, fetchErr) {
		t.Fatalf("SetSemester error = %v, want %v", err, fetchErr)
	}

	snap := r.Snapshot()
	if !errors.Is(snap.Err, fetchErr) {
		t.Errorf("Snapshot.Err = %v, want %v", snap.Err, fetchErr)
	}
	if len(snap.SubjectOptions) != 0 {
		t.Errorf("SubjectOptions = %v, want empty on error", snap.SubjectOptions)
	}
	if subjects.calls != 1 {
		t.Errorf("fetch calls = %d, want 1 (no automatic retry)", subjects.calls)
	}

	// A fresh selection clears the error.
	subjects.err = nil
	if err := r.SetSemester(ctx, 2); err != nil {
		t.Fatal(err)
	}
	if snap := r.Snapshot(); snap.Err != nil {
		t.Errorf("Snapshot.Err = %v, want nil after recovery", snap.Err)
	}
}
