// Package inmemdb provides an in-memory record store and entity directories.
// It backs tests and the demo mode of the CLI; per-record operations are
// atomic under the store's lock, matching the store contract.
package inmemdb

import (
	"sync"

	"github.com/darasa/journal/core/journal"
)

type DB struct {
	mu       sync.RWMutex
	recordPK int

	records   map[int]*journal.Record
	students  map[int]*journal.Student
	lectures  map[int]*journal.Lecture
	courses   map[int]*journal.Course
	lecturers map[int]*journal.Lecturer
}

func Open() (*DB, error) {
	return &DB{
		records:   make(map[int]*journal.Record),
		students:  make(map[int]*journal.Student),
		lectures:  make(map[int]*journal.Lecture),
		courses:   make(map[int]*journal.Course),
		lecturers: make(map[int]*journal.Lecturer),
	}, nil
}

// Seeding helpers for the read-only entities; entries are stored under their
// own ids.

func (db *DB) SetStudent(s journal.Student) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.students[s.ID] = &s
}

func (db *DB) SetLecture(l journal.Lecture) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.lectures[l.ID] = &l
}

func (db *DB) SetCourse(c journal.Course) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.courses[c.ID] = &c
}

func (db *DB) SetLecturer(l journal.Lecturer) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.lecturers[l.ID] = &l
}
