package journal

import (
	"github.com/go-playground/validator/v10"

	"github.com/darasa/journal/core"
)

var (
	absentScoreTag  = "absent_score"
	absentScoreText = "score must be 0 when the student was absent"
)

func init() {
	core.Validate.RegisterStructValidation(recordStructValidation, RecordInput{})
	core.RegisterCustomTranslation(absentScoreTag, absentScoreText)
}

// recordStructValidation enforces Attendance == false => Score == 0.
func recordStructValidation(sl validator.StructLevel) {
	if in, ok := sl.Current().Interface().(RecordInput); ok {
		if !in.Attendance && in.Score != 0 {
			sl.ReportError(in.Score, "score", "Score", absentScoreTag, "")
		}
	}
}
