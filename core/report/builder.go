package report

import (
	"context"
	"fmt"
	"sort"

	"github.com/darasa/journal/core/journal"
)

// RecordSource feeds journal records into report builders.
// *journal.Service satisfies it.
type RecordSource interface {
	Records(ctx context.Context, lectureID, studentID, courseID int) ([]journal.Record, error)
}

// Builder assembles report Data from journal records and entity directories.
type Builder struct {
	records  RecordSource
	students journal.StudentDirectory
	lectures journal.LectureDirectory
	courses  journal.CourseDirectory
}

func NewBuilder(
	records RecordSource,
	students journal.StudentDirectory,
	lectures journal.LectureDirectory,
	courses journal.CourseDirectory,
) *Builder {
	return &Builder{
		records:  records,
		students: students,
		lectures: lectures,
		courses:  courses,
	}
}

// ByLecture reports every student's attendance/score for one lecture.
// AverageScore stays nil: averaging scores across different students is
// meaningless.
func (b *Builder) ByLecture(ctx context.Context, lecture journal.Lecture) (Data, error) {
	course, err := b.courses.CourseByID(ctx, lecture.CourseID)
	if err != nil {
		return Data{}, &journal.UnexpectedDataError{Msg: "unable to resolve course", Err: err}
	}
	if course == nil {
		return Data{}, &journal.UnexpectedDataError{Msg: fmt.Sprintf("course with id %d does not exist", lecture.CourseID)}
	}

	records, err := b.records.Records(ctx, lecture.ID, 0, 0)
	if err != nil {
		return Data{}, err
	}

	students, err := b.students.StudentsByIDs(ctx, distinctStudentIDs(records)...)
	if err != nil {
		return Data{}, &journal.UnexpectedDataError{Msg: "unable to resolve students", Err: err}
	}
	nameByID := make(map[int]string, len(students))
	for _, s := range students {
		nameByID[s.ID] = s.FullName
	}

	reportRecords := make([]Record, 0, len(records))
	for _, rec := range records {
		name, ok := nameByID[rec.StudentID]
		if !ok {
			return Data{}, &journal.UnexpectedDataError{Msg: fmt.Sprintf("student with id %d does not exist", rec.StudentID)}
		}
		reportRecords = append(reportRecords, Record{
			Student:    &name,
			Attendance: rec.Attendance,
			Score:      rec.Score,
		})
	}

	return Data{
		Header:               Header{Lecture: &lecture.Name, Course: course.Name},
		Records:              reportRecords,
		AttendancePercentage: attendancePercentage(reportRecords),
	}, nil
}

// ByStudent reports one student's attendance/score across all lectures of a
// course, including the score average.
func (b *Builder) ByStudent(ctx context.Context, student journal.Student, course journal.Course) (Data, error) {
	records, err := b.records.Records(ctx, 0, student.ID, course.ID)
	if err != nil {
		return Data{}, err
	}

	lectures, err := b.lectures.LecturesByCourse(ctx, course.ID)
	if err != nil {
		return Data{}, &journal.UnexpectedDataError{Msg: "unable to resolve lectures", Err: err}
	}
	nameByID := make(map[int]string, len(lectures))
	for _, l := range lectures {
		nameByID[l.ID] = l.Name
	}

	reportRecords := make([]Record, 0, len(records))
	for _, rec := range records {
		name, ok := nameByID[rec.LectureID]
		if !ok {
			return Data{}, &journal.UnexpectedDataError{Msg: fmt.Sprintf("lecture with id %d does not exist", rec.LectureID)}
		}
		reportRecords = append(reportRecords, Record{
			Lecture:    &name,
			Attendance: rec.Attendance,
			Score:      rec.Score,
		})
	}

	return Data{
		Header:               Header{Student: &student.FullName, Course: course.Name},
		Records:              reportRecords,
		AverageScore:         averageScore(reportRecords),
		AttendancePercentage: attendancePercentage(reportRecords),
	}, nil
}

func distinctStudentIDs(records []journal.Record) []int {
	seen := make(map[int]struct{}, len(records))
	ids := make([]int, 0, len(records))
	for _, rec := range records {
		if _, ok := seen[rec.StudentID]; !ok {
			seen[rec.StudentID] = struct{}{}
			ids = append(ids, rec.StudentID)
		}
	}
	sort.Ints(ids)
	return ids
}

func attendancePercentage(records []Record) *float64 {
	if len(records) == 0 {
		return nil
	}
	var attended int
	for _, rec := range records {
		if rec.Attendance {
			attended++
		}
	}
	pct := float64(attended) / float64(len(records)) * 100
	return &pct
}

func averageScore(records []Record) *float64 {
	if len(records) == 0 {
		return nil
	}
	var sum int
	for _, rec := range records {
		sum += rec.Score
	}
	avg := float64(sum) / float64(len(records))
	return &avg
}
