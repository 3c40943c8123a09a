package main

import (
	"log"
	"os"

	"github.com/darasa/journal/core"
	"github.com/darasa/journal/core/journal"
	"github.com/darasa/journal/core/report"
	"github.com/darasa/journal/core/report/format"
	logsvc "github.com/darasa/journal/services/logger"
	notifsvc "github.com/darasa/journal/services/notification"
	"github.com/darasa/journal/storage/database"
	inmemdb "github.com/darasa/journal/storage/database/inmem"
	sqlxrepos "github.com/darasa/journal/storage/database/sqlx"
)

var std *log.Logger

func main() {
	defer os.Exit(0)

	std = log.New(os.Stdout, "JOURNAL : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	conf := core.NewConfig()

	var logger core.Logger
	if conf.RollbarToken != "" {
		logger = logsvc.NewRollbarLogger(std, conf)
	} else {
		logger = logsvc.NewStdLogger(std)
	}
	senders := notifsvc.NewFactory(conf, logger)

	var (
		repo      journal.Repository
		students  journal.StudentDirectory
		lectures  journal.LectureDirectory
		courses   journal.CourseDirectory
		lecturers journal.LecturerDirectory
	)
	if conf.Database.Name != "" {
		db, err := database.Open(conf)
		errAndDie(err)
		defer db.Close()
		repo = sqlxrepos.NewRecordRepository(db)
		students = sqlxrepos.NewStudentDirectory(db)
		lectures = sqlxrepos.NewLectureDirectory(db)
		courses = sqlxrepos.NewCourseDirectory(db)
		lecturers = sqlxrepos.NewLecturerDirectory(db)
	} else {
		// no database configured: run against seeded in-memory demo data
		db, err := inmemdb.Open()
		errAndDie(err)
		seedDemo(db)
		repo = inmemdb.NewRecordRepository(db)
		students = inmemdb.NewStudentDirectory(db)
		lectures = inmemdb.NewLectureDirectory(db)
		courses = inmemdb.NewCourseDirectory(db)
		lecturers = inmemdb.NewLecturerDirectory(db)
	}

	svc := journal.NewService(conf, repo, senders, lectures, students, courses, lecturers, logger)

	cli := commandLine{
		svc:      svc,
		builder:  report.NewBuilder(svc, students, lectures, courses),
		registry: format.NewDefaultRegistry(),
		lectures: lectures,
		students: students,
		courses:  courses,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			std.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func seedDemo(db *inmemdb.DB) {
	db.SetLecturer(journal.Lecturer{ID: 1, FullName: "John Maxwell", Email: "j.maxwell@darasa.test"})
	db.SetCourse(journal.Course{ID: 1, Name: "Physics", LecturerID: 1})
	db.SetLecture(journal.Lecture{ID: 1, Name: "Physics L1", CourseID: 1})
	db.SetLecture(journal.Lecture{ID: 2, Name: "Physics L2", CourseID: 1})
	db.SetStudent(journal.Student{ID: 1, FullName: "Alice Carter", Email: "a.carter@darasa.test"})
	db.SetStudent(journal.Student{ID: 2, FullName: "Bob Odhiambo", Email: "b.odhiambo@darasa.test"})
	db.SetStudent(journal.Student{ID: 3, FullName: "Carol Wang", Email: "c.wang@darasa.test"})
}

func errAndDie(err error) {
	if err != nil {
		std.Fatal(err)
	}
}
