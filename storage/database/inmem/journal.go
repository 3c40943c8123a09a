package inmemdb

import (
	"context"
	"sort"

	"github.com/darasa/journal/core/journal"
)

type recordRepository struct {
	db *DB
}

var _ journal.Repository = (*recordRepository)(nil)

func NewRecordRepository(db *DB) journal.Repository {
	return &recordRepository{db: db}
}

func (repo *recordRepository) FilterRecords(ctx context.Context, filter journal.RecordFilter) ([]journal.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	ids := make([]int, 0, len(repo.db.records))
	for id := range repo.db.records {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	records := make([]journal.Record, 0, len(ids))
	for _, id := range ids {
		rec := repo.db.records[id]
		if filter.LectureID != 0 && rec.LectureID != filter.LectureID {
			continue
		}
		if filter.StudentID != 0 && rec.StudentID != filter.StudentID {
			continue
		}
		if filter.CourseID != 0 {
			lecture, ok := repo.db.lectures[rec.LectureID]
			if !ok || lecture.CourseID != filter.CourseID {
				continue
			}
		}
		records = append(records, *rec)
	}
	return records, nil
}

func (repo *recordRepository) SaveRecord(ctx context.Context, rec journal.Record) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if rec.ID < 0 {
		return 0, journal.ErrInvalidID
	}

	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	if rec.ID == 0 {
		repo.db.recordPK++
		rec.ID = repo.db.recordPK
	} else if _, ok := repo.db.records[rec.ID]; !ok {
		return 0, journal.ErrRecordNotFound
	}
	repo.db.records[rec.ID] = &rec
	return rec.ID, nil
}

func (repo *recordRepository) GetRecord(ctx context.Context, id int) (*journal.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if id < 0 {
		return nil, journal.ErrInvalidID
	}

	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	if rec, ok := repo.db.records[id]; ok {
		cpy := *rec
		return &cpy, nil
	}
	return nil, nil
}

func (repo *recordRepository) DeleteRecord(ctx context.Context, rec journal.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	delete(repo.db.records, rec.ID)
	return nil
}
