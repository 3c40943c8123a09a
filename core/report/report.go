package report

import (
	"encoding/xml"
	"math"
)

// floatTolerance bounds the error accepted when comparing the computed
// average/percentage fields, which are not exact decimals.
const floatTolerance = 1e-6

type (
	// Header names the scope of a report. Exactly one of Lecture/Student is set
	// depending on the report shape; the other stays nil and is omitted when
	// serialized.
	Header struct {
		Lecture *string `json:"Lecture,omitempty" xml:"Lecture,omitempty"`
		Student *string `json:"Student,omitempty" xml:"Student,omitempty"`
		Course  string  `json:"Course" xml:"Course"`
	}

	// Record is a single report line. It carries the field complementary to the
	// header: the student name when reporting by lecture, the lecture name when
	// reporting by student.
	Record struct {
		Student    *string `json:"Student,omitempty" xml:"Student,omitempty"`
		Lecture    *string `json:"Lecture,omitempty" xml:"Lecture,omitempty"`
		Attendance bool    `json:"Attendance" xml:"Attendance"`
		Score      int     `json:"Score" xml:"Score"`
	}

	// Data is a derived, read-only attendance/progress view over journal records.
	Data struct {
		XMLName              xml.Name `json:"-" xml:"Report"`
		Header               Header   `json:"Header" xml:"Header"`
		Records              []Record `json:"Records" xml:"Records>Record"`
		AverageScore         *float64 `json:"AverageScore,omitempty" xml:"AverageScore,omitempty"`
		AttendancePercentage *float64 `json:"AttendancePercentage,omitempty" xml:"AttendancePercentage,omitempty"`
	}
)

// Equal reports value equality with floatTolerance on AverageScore and
// AttendancePercentage. XMLName is ignored so that deserialized reports
// compare equal to constructed ones.
func (d Data) Equal(other Data) bool {
	if !d.Header.equal(other.Header) {
		return false
	}
	if len(d.Records) != len(other.Records) {
		return false
	}
	for i := range d.Records {
		if !d.Records[i].equal(other.Records[i]) {
			return false
		}
	}
	return floatsEqual(d.AverageScore, other.AverageScore) &&
		floatsEqual(d.AttendancePercentage, other.AttendancePercentage)
}

func (h Header) equal(other Header) bool {
	return stringsEqual(h.Lecture, other.Lecture) &&
		stringsEqual(h.Student, other.Student) &&
		h.Course == other.Course
}

func (r Record) equal(other Record) bool {
	return stringsEqual(r.Student, other.Student) &&
		stringsEqual(r.Lecture, other.Lecture) &&
		r.Attendance == other.Attendance &&
		r.Score == other.Score
}

func stringsEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func floatsEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return math.Abs(*a-*b) < floatTolerance
}
