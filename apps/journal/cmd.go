package main

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/darasa/journal/core/journal"
	"github.com/darasa/journal/core/report"
	"github.com/darasa/journal/core/report/format"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	svc      *journal.Service
	builder  *report.Builder
	registry *format.Registry
	lectures journal.LectureDirectory
	students journal.StudentDirectory
	courses  journal.CourseDirectory
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  save -lecture ID -student ID [-attended] [-score N] - save a journal record")
	fmt.Println("  report -lecture ID [-format json|xml]               - attendance report for a lecture")
	fmt.Println("  report -student ID -course ID [-format json|xml]    - progress report for a student")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	saveCmd := flag.NewFlagSet("save", flag.ExitOnError)
	saveLecture := saveCmd.Int("lecture", 0, "The lecture id.")
	saveStudent := saveCmd.Int("student", 0, "The student id.")
	saveAttended := saveCmd.Bool("attended", false, "Whether the student attended the lecture.")
	saveScore := saveCmd.Int("score", 0, "The student's score, 0 to 5. Must be 0 when absent.")

	reportCmd := flag.NewFlagSet("report", flag.ExitOnError)
	repLecture := reportCmd.Int("lecture", 0, "Report on this lecture.")
	repStudent := reportCmd.Int("student", 0, "Report on this student. Requires -course.")
	repCourse := reportCmd.Int("course", 0, "The student's course id.")
	repFormat := reportCmd.String("format", format.JSONFormat, "Output format name.")

	switch args[1] {
	case "save":
		if err := saveCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *saveLecture == 0 || *saveStudent == 0 {
			saveCmd.Usage()
			return errHelp
		}
		return cli.save(*saveLecture, *saveStudent, *saveAttended, *saveScore)
	case "report":
		if err := reportCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *repLecture == 0 && (*repStudent == 0 || *repCourse == 0) {
			reportCmd.Usage()
			return errHelp
		}
		return cli.report(*repLecture, *repStudent, *repCourse, *repFormat)
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) save(lectureID, studentID int, attended bool, score int) error {
	return cli.svc.SaveRecord(context.Background(), journal.RecordInput{
		StudentID:  studentID,
		LectureID:  lectureID,
		Attendance: attended,
		Score:      score,
	})
}

func (cli *commandLine) report(lectureID, studentID, courseID int, formatName string) error {
	ctx := context.Background()

	var data report.Data
	if lectureID != 0 {
		lecture, err := cli.lectures.LectureByID(ctx, lectureID)
		if err != nil {
			return err
		}
		if lecture == nil {
			return fmt.Errorf("lecture %d not found", lectureID)
		}
		if data, err = cli.builder.ByLecture(ctx, *lecture); err != nil {
			return err
		}
	} else {
		student, err := cli.students.StudentByID(ctx, studentID)
		if err != nil {
			return err
		}
		if student == nil {
			return fmt.Errorf("student %d not found", studentID)
		}
		course, err := cli.courses.CourseByID(ctx, courseID)
		if err != nil {
			return err
		}
		if course == nil {
			return fmt.Errorf("course %d not found", courseID)
		}
		if data, err = cli.builder.ByStudent(ctx, *student, *course); err != nil {
			return err
		}
	}

	formatter, err := cli.registry.Get(formatName)
	if err != nil {
		return err
	}
	out, err := formatter.FormatReport(data)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
