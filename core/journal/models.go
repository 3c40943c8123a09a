package journal

import "context"

type (
	// Record is one student's attendance/score entry for one lecture.
	// At most one record exists per (LectureID, StudentID) pair.
	Record struct {
		ID         int
		StudentID  int
		LectureID  int
		Attendance bool
		Score      int
	}

	Lecture struct {
		ID       int
		Name     string
		CourseID int
	}

	Student struct {
		ID       int
		FullName string
		Email    string
	}

	Course struct {
		ID         int
		Name       string
		LecturerID int
	}

	Lecturer struct {
		ID       int
		FullName string
		Email    string
	}
)

// RecordInput carries caller-supplied data for saving a journal record.
type RecordInput struct {
	StudentID  int  `json:"student_id" validate:"required,min=1"`
	LectureID  int  `json:"lecture_id" validate:"required,min=1"`
	Attendance bool `json:"attendance"`
	Score      int  `json:"score" validate:"min=0,max=5"`
}

// RecordFilter describes record predicates combined with logical AND.
// A zero field is not filtered on. CourseID matches through the record's lecture.
type RecordFilter struct {
	LectureID int
	StudentID int
	CourseID  int
}

type (
	// Repository persists journal records.
	Repository interface {
		// FilterRecords returns all records matching the filter, in stable retrieval order.
		FilterRecords(ctx context.Context, filter RecordFilter) ([]Record, error)
		// SaveRecord inserts rec when rec.ID == 0, updates it in place otherwise
		// and returns the record's id. It fails with ErrRecordNotFound when an
		// update target no longer exists and ErrInvalidID when rec.ID is negative.
		SaveRecord(ctx context.Context, rec Record) (int, error)
		// GetRecord returns the record with the given id, or nil if absent.
		GetRecord(ctx context.Context, id int) (*Record, error)
		DeleteRecord(ctx context.Context, rec Record) error
	}

	// The directories resolve referenced entities; all lookups return nil
	// (not an error) when no entity carries the given id.

	StudentDirectory interface {
		StudentByID(ctx context.Context, id int) (*Student, error)
		StudentsByIDs(ctx context.Context, ids ...int) ([]Student, error)
	}

	LectureDirectory interface {
		LectureByID(ctx context.Context, id int) (*Lecture, error)
		LecturesByCourse(ctx context.Context, courseID int) ([]Lecture, error)
	}

	CourseDirectory interface {
		CourseByID(ctx context.Context, id int) (*Course, error)
	}

	LecturerDirectory interface {
		LecturerByID(ctx context.Context, id int) (*Lecturer, error)
	}
)
