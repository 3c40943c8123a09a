package journal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/darasa/journal/core"
)

// missedLecturesThreshold is the number of absences a student may accumulate in
// a course before an absent save starts alerting; alerts fire strictly above it.
const missedLecturesThreshold = 3

// lowScoreThreshold bounds both the saved score and the course average below
// which the low-average alert fires.
const lowScoreThreshold = 4

// Service implements the journal-record save workflow: reference validation,
// upsert by (lecture, student) and threshold-triggered notifications.
type Service struct {
	repo      Repository
	senders   core.SenderFactory
	lectures  LectureDirectory
	students  StudentDirectory
	courses   CourseDirectory
	lecturers LecturerDirectory
	logger    core.Logger

	smsAlertTo string
}

func NewService(
	conf *core.Config,
	repo Repository,
	senders core.SenderFactory,
	lectures LectureDirectory,
	students StudentDirectory,
	courses CourseDirectory,
	lecturers LecturerDirectory,
	logger core.Logger,
) *Service {
	return &Service{
		repo:       repo,
		senders:    senders,
		lectures:   lectures,
		students:   students,
		courses:    courses,
		lecturers:  lecturers,
		logger:     logger,
		smsAlertTo: conf.SmsAlertRecipient,
	}
}

// SaveRecord validates references, upserts the record keyed by
// (LectureID, StudentID) and fires threshold notifications off the student's
// post-save record set for the lecture's course.
//
// The save succeeds or fails on the persistence steps alone; notification
// transport failures are swallowed by the senders.
func (svc *Service) SaveRecord(ctx context.Context, in RecordInput) error {
	if err := core.Validate.StructCtx(ctx, in); err != nil {
		return core.TranslateValidationErrors(err)
	}

	lecture, err := svc.lectures.LectureByID(ctx, in.LectureID)
	if err != nil {
		return &UnexpectedDataError{Msg: "unable to resolve lecture", Err: err}
	}
	if lecture == nil {
		return &ReferenceNotFoundError{Ref: "lecture"}
	}
	student, err := svc.students.StudentByID(ctx, in.StudentID)
	if err != nil {
		return &UnexpectedDataError{Msg: "unable to resolve student", Err: err}
	}
	if student == nil {
		return &ReferenceNotFoundError{Ref: "student"}
	}

	opID := uuid.New()
	svc.logger.Info(fmt.Sprintf("saving journal record (lecture=%d student=%d) op=%s", in.LectureID, in.StudentID, opID))

	// upsert key: the existing record's id, or 0 to insert
	existing, err := svc.repo.FilterRecords(ctx, RecordFilter{LectureID: in.LectureID, StudentID: in.StudentID})
	if err != nil {
		svc.logger.Error(fmt.Sprintf("unable to get journal records op=%s", opID), err)
		return &UnexpectedDataError{Msg: "unable to get journal records", Err: err}
	}
	var id int
	if len(existing) > 0 {
		id = existing[0].ID
	}

	rec := Record{
		ID:         id,
		StudentID:  in.StudentID,
		LectureID:  in.LectureID,
		Attendance: in.Attendance,
		Score:      in.Score,
	}
	if _, err = svc.repo.SaveRecord(ctx, rec); err != nil {
		// ErrRecordNotFound is unexpected here: existence was just confirmed,
		// so only a racing delete can produce it.
		svc.logger.Error(fmt.Sprintf("unable to save journal record op=%s", opID), err)
		return &UnexpectedDataError{Msg: "unable to save journal record", Err: err}
	}

	// thresholds are computed from the full post-save record set
	records, err := svc.Records(ctx, 0, in.StudentID, lecture.CourseID)
	if err != nil {
		return err
	}

	var missed int
	for _, r := range records {
		if !r.Attendance {
			missed++
		}
	}
	if !in.Attendance && missed > missedLecturesThreshold {
		course, lecturer, err := svc.resolveCourseLecturer(ctx, lecture.CourseID)
		if err != nil {
			return err
		}
		emailSender := svc.senders.EmailSender()
		emailSender.Send(ctx,
			fmt.Sprintf("Student %s missed %d lectures in course '%s'!", student.FullName, missed, course.Name),
			lecturer.Email)
		emailSender.Send(ctx,
			fmt.Sprintf("You missed %d lectures in course '%s'!", missed, course.Name),
			student.Email)
	}

	if len(records) > 0 {
		var sum int
		for _, r := range records {
			sum += r.Score
		}
		avg := float64(sum) / float64(len(records))
		if in.Score < lowScoreThreshold && avg < lowScoreThreshold {
			course, err := svc.resolveCourse(ctx, lecture.CourseID)
			if err != nil {
				return err
			}
			svc.senders.SmsSender().Send(ctx,
				fmt.Sprintf("Your average mark in course '%s' is %v.", course.Name, avg),
				svc.smsAlertTo)
		}
	}
	return nil
}

// Records returns journal records filtered by any of lectureID, studentID and
// courseID; a zero argument is not filtered on. When lectureID is given it
// takes precedence and courseID is ignored.
func (svc *Service) Records(ctx context.Context, lectureID, studentID, courseID int) ([]Record, error) {
	filter := RecordFilter{StudentID: studentID}
	if lectureID != 0 {
		filter.LectureID = lectureID
	} else if courseID != 0 {
		filter.CourseID = courseID
	}

	records, err := svc.repo.FilterRecords(ctx, filter)
	if err != nil {
		svc.logger.Error("unable to get journal records", err)
		return nil, &UnexpectedDataError{Msg: "unable to get journal records", Err: err}
	}
	return records, nil
}

func (svc *Service) resolveCourse(ctx context.Context, courseID int) (*Course, error) {
	course, err := svc.courses.CourseByID(ctx, courseID)
	if err != nil {
		return nil, &UnexpectedDataError{Msg: "unable to resolve course", Err: err}
	}
	if course == nil {
		// referential integrity should make this impossible
		return nil, &UnexpectedDataError{Msg: fmt.Sprintf("course with id %d does not exist", courseID)}
	}
	return course, nil
}

func (svc *Service) resolveCourseLecturer(ctx context.Context, courseID int) (*Course, *Lecturer, error) {
	course, err := svc.resolveCourse(ctx, courseID)
	if err != nil {
		return nil, nil, err
	}
	lecturer, err := svc.lecturers.LecturerByID(ctx, course.LecturerID)
	if err != nil {
		return nil, nil, &UnexpectedDataError{Msg: "unable to resolve lecturer", Err: err}
	}
	if lecturer == nil {
		return nil, nil, &UnexpectedDataError{Msg: fmt.Sprintf("lecturer with id %d does not exist", course.LecturerID)}
	}
	return course, lecturer, nil
}
