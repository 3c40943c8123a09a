package inmemdb

import (
	"context"
	"testing"

	"github.com/darasa/journal/core/journal"
)

func openDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	return db
}

func TestRecordRepositorySave(t *testing.T) {
	db := openDB(t)
	repo := NewRecordRepository(db)
	ctx := context.Background()

	id1, err := repo.SaveRecord(ctx, journal.Record{StudentID: 1, LectureID: 1, Attendance: true, Score: 4})
	if err != nil {
		t.Fatalf("SaveRecord() failed: %v", err)
	}
	id2, err := repo.SaveRecord(ctx, journal.Record{StudentID: 2, LectureID: 1, Attendance: false})
	if err != nil {
		t.Fatalf("SaveRecord() failed: %v", err)
	}
	if id1 == id2 {
		t.Errorf("inserts share id %d", id1)
	}

	// update in place
	if _, err = repo.SaveRecord(ctx, journal.Record{ID: id1, StudentID: 1, LectureID: 1, Attendance: true, Score: 5}); err != nil {
		t.Fatalf("SaveRecord() failed: %v", err)
	}
	rec, err := repo.GetRecord(ctx, id1)
	if err != nil {
		t.Fatalf("GetRecord() failed: %v", err)
	}
	if rec == nil || rec.Score != 5 {
		t.Errorf("GetRecord() = %+v, want score 5", rec)
	}

	// update target vanished
	if _, err = repo.SaveRecord(ctx, journal.Record{ID: 42, StudentID: 1, LectureID: 1}); err != journal.ErrRecordNotFound {
		t.Errorf("SaveRecord() error = %v, want ErrRecordNotFound", err)
	}

	// negative id
	if _, err = repo.SaveRecord(ctx, journal.Record{ID: -1}); err != journal.ErrInvalidID {
		t.Errorf("SaveRecord() error = %v, want ErrInvalidID", err)
	}
}

func TestRecordRepositoryGetAndDelete(t *testing.T) {
	db := openDB(t)
	repo := NewRecordRepository(db)
	ctx := context.Background()

	rec, err := repo.GetRecord(ctx, 7)
	if err != nil {
		t.Fatalf("GetRecord() failed: %v", err)
	}
	if rec != nil {
		t.Errorf("GetRecord() = %+v, want nil", rec)
	}

	id, err := repo.SaveRecord(ctx, journal.Record{StudentID: 1, LectureID: 1, Attendance: true, Score: 3})
	if err != nil {
		t.Fatalf("SaveRecord() failed: %v", err)
	}
	if err = repo.DeleteRecord(ctx, journal.Record{ID: id}); err != nil {
		t.Fatalf("DeleteRecord() failed: %v", err)
	}
	if rec, _ = repo.GetRecord(ctx, id); rec != nil {
		t.Errorf("GetRecord() after delete = %+v, want nil", rec)
	}
}

func TestRecordRepositoryFilter(t *testing.T) {
	db := openDB(t)
	db.SetLecture(journal.Lecture{ID: 1, Name: "L1", CourseID: 1})
	db.SetLecture(journal.Lecture{ID: 2, Name: "L2", CourseID: 2})
	repo := NewRecordRepository(db)
	ctx := context.Background()

	seed := []journal.Record{
		{StudentID: 1, LectureID: 1, Attendance: true, Score: 4},
		{StudentID: 1, LectureID: 2, Attendance: true, Score: 5},
		{StudentID: 2, LectureID: 1, Attendance: false},
	}
	for _, rec := range seed {
		if _, err := repo.SaveRecord(ctx, rec); err != nil {
			t.Fatalf("SaveRecord() failed: %v", err)
		}
	}

	tests := []struct {
		name    string
		filter  journal.RecordFilter
		wantLen int
	}{
		{name: "all", filter: journal.RecordFilter{}, wantLen: 3},
		{name: "by lecture", filter: journal.RecordFilter{LectureID: 1}, wantLen: 2},
		{name: "by student", filter: journal.RecordFilter{StudentID: 1}, wantLen: 2},
		{name: "by course through lecture", filter: journal.RecordFilter{CourseID: 2}, wantLen: 1},
		{name: "conjunction", filter: journal.RecordFilter{LectureID: 1, StudentID: 2}, wantLen: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := repo.FilterRecords(ctx, tt.filter)
			if err != nil {
				t.Fatalf("FilterRecords() failed: %v", err)
			}
			if len(records) != tt.wantLen {
				t.Errorf("got %d records, want %d", len(records), tt.wantLen)
			}
		})
	}

	// retrieval order is stable, by id
	records, err := repo.FilterRecords(ctx, journal.RecordFilter{})
	if err != nil {
		t.Fatalf("FilterRecords() failed: %v", err)
	}
	for i := 1; i < len(records); i++ {
		if records[i-1].ID > records[i].ID {
			t.Errorf("records out of order: %+v", records)
		}
	}
}

func TestRecordRepositoryCancelledContext(t *testing.T) {
	db := openDB(t)
	repo := NewRecordRepository(db)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := repo.FilterRecords(ctx, journal.RecordFilter{}); err != context.Canceled {
		t.Errorf("FilterRecords() error = %v, want context.Canceled", err)
	}
	if _, err := repo.SaveRecord(ctx, journal.Record{StudentID: 1, LectureID: 1}); err != context.Canceled {
		t.Errorf("SaveRecord() error = %v, want context.Canceled", err)
	}
}
