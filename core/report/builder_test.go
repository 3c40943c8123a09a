package report_test

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/darasa/journal/core"
	"github.com/darasa/journal/core/journal"
	"github.com/darasa/journal/core/report"
	logsvc "github.com/darasa/journal/services/logger"
	inmemdb "github.com/darasa/journal/storage/database/inmem"
)

type nopSender struct{}

func (nopSender) Send(context.Context, string, string) {}

type nopSenderFactory struct{}

func (nopSenderFactory) EmailSender() core.MessageSender { return nopSender{} }
func (nopSenderFactory) SmsSender() core.MessageSender   { return nopSender{} }

func setup(t *testing.T) (*report.Builder, *journal.Service, *inmemdb.DB) {
	t.Helper()
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	logger := logsvc.NewStdLogger(log.New(io.Discard, "", 0))
	svc := journal.NewService(
		&core.Config{SmsAlertRecipient: "+78005553535"},
		inmemdb.NewRecordRepository(db),
		nopSenderFactory{},
		inmemdb.NewLectureDirectory(db),
		inmemdb.NewStudentDirectory(db),
		inmemdb.NewCourseDirectory(db),
		inmemdb.NewLecturerDirectory(db),
		logger,
	)
	builder := report.NewBuilder(
		svc,
		inmemdb.NewStudentDirectory(db),
		inmemdb.NewLectureDirectory(db),
		inmemdb.NewCourseDirectory(db),
	)
	return builder, svc, db
}

func seedPhysics(db *inmemdb.DB) {
	db.SetLecturer(journal.Lecturer{ID: 1, FullName: "John Maxwell", Email: "maxwell@test.test"})
	db.SetCourse(journal.Course{ID: 1, Name: "Physics", LecturerID: 1})
	db.SetLecture(journal.Lecture{ID: 1, Name: "Physics L1", CourseID: 1})
	db.SetLecture(journal.Lecture{ID: 2, Name: "Physics L2", CourseID: 1})
	db.SetStudent(journal.Student{ID: 1, FullName: "A", Email: "a@test.test"})
	db.SetStudent(journal.Student{ID: 2, FullName: "B", Email: "b@test.test"})
	db.SetStudent(journal.Student{ID: 3, FullName: "C", Email: "c@test.test"})
}

func saveRecord(t *testing.T, svc *journal.Service, lectureID, studentID int, attended bool, score int) {
	t.Helper()
	in := journal.RecordInput{StudentID: studentID, LectureID: lectureID, Attendance: attended, Score: score}
	if err := svc.SaveRecord(context.Background(), in); err != nil {
		t.Fatalf("SaveRecord(%+v) failed: %v", in, err)
	}
}

func strPtr(s string) *string    { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestBuilderByLecture(t *testing.T) {
	builder, svc, db := setup(t)
	seedPhysics(db)

	saveRecord(t, svc, 1, 1, false, 0)
	saveRecord(t, svc, 1, 2, true, 4)
	saveRecord(t, svc, 1, 3, true, 5)

	data, err := builder.ByLecture(context.Background(), journal.Lecture{ID: 1, Name: "Physics L1", CourseID: 1})
	if err != nil {
		t.Fatalf("ByLecture() failed: %v", err)
	}

	want := report.Data{
		Header: report.Header{Lecture: strPtr("Physics L1"), Course: "Physics"},
		Records: []report.Record{
			{Student: strPtr("A"), Attendance: false, Score: 0},
			{Student: strPtr("B"), Attendance: true, Score: 4},
			{Student: strPtr("C"), Attendance: true, Score: 5},
		},
		AttendancePercentage: floatPtr(200.0 / 3),
	}
	if !data.Equal(want) {
		t.Errorf("ByLecture() = %+v, want %+v", data, want)
	}
	if data.AverageScore != nil {
		t.Errorf("ByLecture() AverageScore = %v, want nil", *data.AverageScore)
	}
}

func TestBuilderByLectureEmpty(t *testing.T) {
	builder, _, db := setup(t)
	seedPhysics(db)

	data, err := builder.ByLecture(context.Background(), journal.Lecture{ID: 2, Name: "Physics L2", CourseID: 1})
	if err != nil {
		t.Fatalf("ByLecture() failed: %v", err)
	}
	if len(data.Records) != 0 {
		t.Fatalf("got %d records, want 0", len(data.Records))
	}
	if data.AttendancePercentage != nil {
		t.Errorf("AttendancePercentage = %v, want nil", *data.AttendancePercentage)
	}
	if data.AverageScore != nil {
		t.Errorf("AverageScore = %v, want nil", *data.AverageScore)
	}
}

func TestBuilderByLectureMissingCourse(t *testing.T) {
	builder, _, db := setup(t)
	seedPhysics(db)

	_, err := builder.ByLecture(context.Background(), journal.Lecture{ID: 3, Name: "Orphan", CourseID: 99})
	var udErr *journal.UnexpectedDataError
	if !errors.As(err, &udErr) {
		t.Errorf("ByLecture() error = %v, want *journal.UnexpectedDataError", err)
	}
}

func TestBuilderByStudent(t *testing.T) {
	builder, svc, db := setup(t)
	seedPhysics(db)

	saveRecord(t, svc, 1, 1, true, 4)
	saveRecord(t, svc, 2, 1, false, 0)

	data, err := builder.ByStudent(context.Background(),
		journal.Student{ID: 1, FullName: "A"}, journal.Course{ID: 1, Name: "Physics", LecturerID: 1})
	if err != nil {
		t.Fatalf("ByStudent() failed: %v", err)
	}

	want := report.Data{
		Header: report.Header{Student: strPtr("A"), Course: "Physics"},
		Records: []report.Record{
			{Lecture: strPtr("Physics L1"), Attendance: true, Score: 4},
			{Lecture: strPtr("Physics L2"), Attendance: false, Score: 0},
		},
		AverageScore:         floatPtr(2),
		AttendancePercentage: floatPtr(50),
	}
	if !data.Equal(want) {
		t.Errorf("ByStudent() = %+v, want %+v", data, want)
	}
}

func TestBuilderByStudentEmpty(t *testing.T) {
	builder, _, db := setup(t)
	seedPhysics(db)

	data, err := builder.ByStudent(context.Background(),
		journal.Student{ID: 3, FullName: "C"}, journal.Course{ID: 1, Name: "Physics", LecturerID: 1})
	if err != nil {
		t.Fatalf("ByStudent() failed: %v", err)
	}
	if len(data.Records) != 0 {
		t.Fatalf("got %d records, want 0", len(data.Records))
	}
	if data.AverageScore != nil || data.AttendancePercentage != nil {
		t.Errorf("averages = (%v, %v), want both nil", data.AverageScore, data.AttendancePercentage)
	}
}
