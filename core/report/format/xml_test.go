package format

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/darasa/journal/core/report"
)

func TestXMLFormatterOutput(t *testing.T) {
	out, err := XMLFormatter{}.FormatReport(byLectureData())
	if err != nil {
		t.Fatalf("FormatReport() failed: %v", err)
	}

	want := xml.Header + `<Report>
  <Header>
    <Lecture>Physics L1</Lecture>
    <Course>Physics</Course>
  </Header>
  <Records>
    <Record>
      <Student>A</Student>
      <Attendance>false</Attendance>
      <Score>0</Score>
    </Record>
    <Record>
      <Student>B</Student>
      <Attendance>true</Attendance>
      <Score>4</Score>
    </Record>
  </Records>
  <AttendancePercentage>50</AttendancePercentage>
</Report>`
	if out != want {
		diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(want),
			B:        difflib.SplitLines(out),
			FromFile: "want",
			ToFile:   "got",
			Context:  3,
		})
		t.Errorf("FormatReport() mismatch:\n%s", diff)
	}

	// the absent header/record fields leave no trace
	if strings.Contains(out, "<Student></Student>") || strings.Contains(out, "<Lecture></Lecture>") {
		t.Error("nil fields must be omitted, not emitted empty")
	}
	if strings.Contains(out, "AverageScore") {
		t.Error("nil AverageScore must be omitted")
	}
}

func TestXMLFormatterHeaderOrder(t *testing.T) {
	out, err := XMLFormatter{}.FormatReport(byStudentData())
	if err != nil {
		t.Fatalf("FormatReport() failed: %v", err)
	}
	// Student precedes Course, per field declaration order
	if strings.Index(out, "<Student>") > strings.Index(out, "<Course>") {
		t.Errorf("header element order not preserved:\n%s", out)
	}
}

func TestXMLFormatterRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		data report.Data
	}{
		{name: "by lecture", data: byLectureData()},
		{name: "by student", data: byStudentData()},
		{name: "empty records", data: report.Data{Header: report.Header{Student: strPtr("A"), Course: "Physics"}, Records: []report.Record{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := XMLFormatter{}.FormatReport(tt.data)
			if err != nil {
				t.Fatalf("FormatReport() failed: %v", err)
			}
			var got report.Data
			if err := xml.Unmarshal([]byte(out), &got); err != nil {
				t.Fatalf("xml.Unmarshal() failed: %v", err)
			}
			if !got.Equal(tt.data) {
				t.Errorf("round-trip = %+v, want %+v", got, tt.data)
			}
		})
	}
}
