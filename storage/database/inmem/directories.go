package inmemdb

import (
	"context"
	"sort"

	"github.com/darasa/journal/core/journal"
)

type studentDirectory struct {
	db *DB
}

var _ journal.StudentDirectory = (*studentDirectory)(nil)

func NewStudentDirectory(db *DB) journal.StudentDirectory {
	return &studentDirectory{db: db}
}

func (dir *studentDirectory) StudentByID(ctx context.Context, id int) (*journal.Student, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dir.db.mu.RLock()
	defer dir.db.mu.RUnlock()

	if s, ok := dir.db.students[id]; ok {
		cpy := *s
		return &cpy, nil
	}
	return nil, nil
}

func (dir *studentDirectory) StudentsByIDs(ctx context.Context, ids ...int) ([]journal.Student, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dir.db.mu.RLock()
	defer dir.db.mu.RUnlock()

	students := make([]journal.Student, 0, len(ids))
	for _, id := range ids {
		if s, ok := dir.db.students[id]; ok {
			students = append(students, *s)
		}
	}
	sort.Slice(students, func(i, j int) bool { return students[i].ID < students[j].ID })
	return students, nil
}

type lectureDirectory struct {
	db *DB
}

var _ journal.LectureDirectory = (*lectureDirectory)(nil)

func NewLectureDirectory(db *DB) journal.LectureDirectory {
	return &lectureDirectory{db: db}
}

func (dir *lectureDirectory) LectureByID(ctx context.Context, id int) (*journal.Lecture, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dir.db.mu.RLock()
	defer dir.db.mu.RUnlock()

	if l, ok := dir.db.lectures[id]; ok {
		cpy := *l
		return &cpy, nil
	}
	return nil, nil
}

func (dir *lectureDirectory) LecturesByCourse(ctx context.Context, courseID int) ([]journal.Lecture, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dir.db.mu.RLock()
	defer dir.db.mu.RUnlock()

	lectures := make([]journal.Lecture, 0)
	for _, l := range dir.db.lectures {
		if l.CourseID == courseID {
			lectures = append(lectures, *l)
		}
	}
	sort.Slice(lectures, func(i, j int) bool { return lectures[i].ID < lectures[j].ID })
	return lectures, nil
}

type courseDirectory struct {
	db *DB
}

var _ journal.CourseDirectory = (*courseDirectory)(nil)

func NewCourseDirectory(db *DB) journal.CourseDirectory {
	return &courseDirectory{db: db}
}

func (dir *courseDirectory) CourseByID(ctx context.Context, id int) (*journal.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dir.db.mu.RLock()
	defer dir.db.mu.RUnlock()

	if c, ok := dir.db.courses[id]; ok {
		cpy := *c
		return &cpy, nil
	}
	return nil, nil
}

type lecturerDirectory struct {
	db *DB
}

var _ journal.LecturerDirectory = (*lecturerDirectory)(nil)

func NewLecturerDirectory(db *DB) journal.LecturerDirectory {
	return &lecturerDirectory{db: db}
}

func (dir *lecturerDirectory) LecturerByID(ctx context.Context, id int) (*journal.Lecturer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dir.db.mu.RLock()
	defer dir.db.mu.RUnlock()

	if l, ok := dir.db.lecturers[id]; ok {
		cpy := *l
		return &cpy, nil
	}
	return nil, nil
}
