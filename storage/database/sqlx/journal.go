package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/darasa/journal/core/journal"
)

type recordRow struct {
	ID         int  `db:"id"`
	StudentID  int  `db:"student_id"`
	LectureID  int  `db:"lecture_id"`
	Attendance bool `db:"attendance"`
	Score      int  `db:"score"`
}

func (row recordRow) toRecord() journal.Record {
	return journal.Record{
		ID:         row.ID,
		StudentID:  row.StudentID,
		LectureID:  row.LectureID,
		Attendance: row.Attendance,
		Score:      row.Score,
	}
}

type recordRepository struct {
	db *sqlx.DB
}

var _ journal.Repository = (*recordRepository)(nil)

func NewRecordRepository(db *sqlx.DB) journal.Repository {
	return &recordRepository{db: db}
}

func (repo *recordRepository) FilterRecords(ctx context.Context, filter journal.RecordFilter) ([]journal.Record, error) {
	query := `SELECT r.id, r.student_id, r.lecture_id, r.attendance, r.score FROM journal_record r`
	where := ""
	args := make([]interface{}, 0, 3)

	and := func(cond string, arg interface{}) {
		if where == "" {
			where = " WHERE " + cond
		} else {
			where += " AND " + cond
		}
		args = append(args, arg)
	}
	if filter.CourseID != 0 {
		query += ` JOIN lecture l ON l.id = r.lecture_id`
		and("l.course_id = ?", filter.CourseID)
	}
	if filter.LectureID != 0 {
		and("r.lecture_id = ?", filter.LectureID)
	}
	if filter.StudentID != 0 {
		and("r.student_id = ?", filter.StudentID)
	}
	query += where + " ORDER BY r.id"

	var rows []recordRow
	if err := repo.db.SelectContext(ctx, &rows, repo.db.Rebind(query), args...); err != nil {
		return nil, &journal.DataError{Err: errors.Wrap(err, "filtering journal records")}
	}
	records := make([]journal.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toRecord())
	}
	return records, nil
}

func (repo *recordRepository) SaveRecord(ctx context.Context, rec journal.Record) (int, error) {
	if rec.ID < 0 {
		return 0, journal.ErrInvalidID
	}

	if rec.ID == 0 {
		query := repo.db.Rebind(
			`INSERT INTO journal_record (student_id, lecture_id, attendance, score) VALUES (?, ?, ?, ?) RETURNING id`)
		var id int
		err := repo.db.QueryRowxContext(ctx, query, rec.StudentID, rec.LectureID, rec.Attendance, rec.Score).Scan(&id)
		if err != nil {
			return 0, &journal.DataError{Err: errors.Wrap(err, "inserting journal record")}
		}
		return id, nil
	}

	query := repo.db.Rebind(
		`UPDATE journal_record SET student_id = ?, lecture_id = ?, attendance = ?, score = ? WHERE id = ?`)
	res, err := repo.db.ExecContext(ctx, query, rec.StudentID, rec.LectureID, rec.Attendance, rec.Score, rec.ID)
	if err != nil {
		return 0, &journal.DataError{Err: errors.Wrap(err, "updating journal record")}
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, &journal.DataError{Err: errors.Wrap(err, "updating journal record")}
	}
	if affected == 0 {
		return 0, journal.ErrRecordNotFound
	}
	return rec.ID, nil
}

func (repo *recordRepository) GetRecord(ctx context.Context, id int) (*journal.Record, error) {
	if id < 0 {
		return nil, journal.ErrInvalidID
	}

	var row recordRow
	query := repo.db.Rebind(`SELECT id, student_id, lecture_id, attendance, score FROM journal_record WHERE id = ?`)
	if err := repo.db.GetContext(ctx, &row, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, &journal.DataError{Err: errors.Wrap(err, "getting journal record")}
	}
	rec := row.toRecord()
	return &rec, nil
}

func (repo *recordRepository) DeleteRecord(ctx context.Context, rec journal.Record) error {
	query := repo.db.Rebind(`DELETE FROM journal_record WHERE id = ?`)
	if _, err := repo.db.ExecContext(ctx, query, rec.ID); err != nil {
		return &journal.DataError{Err: errors.Wrap(err, "deleting journal record")}
	}
	return nil
}
