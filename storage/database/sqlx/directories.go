package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/darasa/journal/core/journal"
)

type (
	studentRow struct {
		ID       int         `db:"id"`
		FullName string      `db:"full_name"`
		Email    null.String `db:"email"`
	}

	lectureRow struct {
		ID       int    `db:"id"`
		Name     string `db:"name"`
		CourseID int    `db:"course_id"`
	}

	courseRow struct {
		ID         int    `db:"id"`
		Name       string `db:"name"`
		LecturerID int    `db:"lecturer_id"`
	}

	lecturerRow struct {
		ID       int         `db:"id"`
		FullName string      `db:"full_name"`
		Email    null.String `db:"email"`
	}
)

type studentDirectory struct {
	db *sqlx.DB
}

var _ journal.StudentDirectory = (*studentDirectory)(nil)

func NewStudentDirectory(db *sqlx.DB) journal.StudentDirectory {
	return &studentDirectory{db: db}
}

func (dir *studentDirectory) StudentByID(ctx context.Context, id int) (*journal.Student, error) {
	var row studentRow
	query := dir.db.Rebind(`SELECT id, full_name, email FROM student WHERE id = ?`)
	if err := dir.db.GetContext(ctx, &row, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, &journal.DataError{Err: errors.Wrap(err, "getting student")}
	}
	return &journal.Student{ID: row.ID, FullName: row.FullName, Email: row.Email.String}, nil
}

func (dir *studentDirectory) StudentsByIDs(ctx context.Context, ids ...int) ([]journal.Student, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`SELECT id, full_name, email FROM student WHERE id IN (?) ORDER BY id`, ids)
	if err != nil {
		return nil, &journal.DataError{Err: errors.Wrap(err, "getting students")}
	}
	var rows []studentRow
	if err = dir.db.SelectContext(ctx, &rows, dir.db.Rebind(query), args...); err != nil {
		return nil, &journal.DataError{Err: errors.Wrap(err, "getting students")}
	}
	students := make([]journal.Student, 0, len(rows))
	for _, row := range rows {
		students = append(students, journal.Student{ID: row.ID, FullName: row.FullName, Email: row.Email.String})
	}
	return students, nil
}

type lectureDirectory struct {
	db *sqlx.DB
}

var _ journal.LectureDirectory = (*lectureDirectory)(nil)

func NewLectureDirectory(db *sqlx.DB) journal.LectureDirectory {
	return &lectureDirectory{db: db}
}

func (dir *lectureDirectory) LectureByID(ctx context.Context, id int) (*journal.Lecture, error) {
	var row lectureRow
	query := dir.db.Rebind(`SELECT id, name, course_id FROM lecture WHERE id = ?`)
	if err := dir.db.GetContext(ctx, &row, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, &journal.DataError{Err: errors.Wrap(err, "getting lecture")}
	}
	return &journal.Lecture{ID: row.ID, Name: row.Name, CourseID: row.CourseID}, nil
}

func (dir *lectureDirectory) LecturesByCourse(ctx context.Context, courseID int) ([]journal.Lecture, error) {
	var rows []lectureRow
	query := dir.db.Rebind(`SELECT id, name, course_id FROM lecture WHERE course_id = ? ORDER BY id`)
	if err := dir.db.SelectContext(ctx, &rows, query, courseID); err != nil {
		return nil, &journal.DataError{Err: errors.Wrap(err, "getting lectures")}
	}
	lectures := make([]journal.Lecture, 0, len(rows))
	for _, row := range rows {
		lectures = append(lectures, journal.Lecture{ID: row.ID, Name: row.Name, CourseID: row.CourseID})
	}
	return lectures, nil
}

type courseDirectory struct {
	db *sqlx.DB
}

var _ journal.CourseDirectory = (*courseDirectory)(nil)

func NewCourseDirectory(db *sqlx.DB) journal.CourseDirectory {
	return &courseDirectory{db: db}
}

func (dir *courseDirectory) CourseByID(ctx context.Context, id int) (*journal.Course, error) {
	var row courseRow
	query := dir.db.Rebind(`SELECT id, name, lecturer_id FROM course WHERE id = ?`)
	if err := dir.db.GetContext(ctx, &row, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, &journal.DataError{Err: errors.Wrap(err, "getting course")}
	}
	return &journal.Course{ID: row.ID, Name: row.Name, LecturerID: row.LecturerID}, nil
}

type lecturerDirectory struct {
	db *sqlx.DB
}

var _ journal.LecturerDirectory = (*lecturerDirectory)(nil)

func NewLecturerDirectory(db *sqlx.DB) journal.LecturerDirectory {
	return &lecturerDirectory{db: db}
}

func (dir *lecturerDirectory) LecturerByID(ctx context.Context, id int) (*journal.Lecturer, error) {
	var row lecturerRow
	query := dir.db.Rebind(`SELECT id, full_name, email FROM lecturer WHERE id = ?`)
	if err := dir.db.GetContext(ctx, &row, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, &journal.DataError{Err: errors.Wrap(err, "getting lecturer")}
	}
	return &journal.Lecturer{ID: row.ID, FullName: row.FullName, Email: row.Email.String}, nil
}
