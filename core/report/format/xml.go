package format

import (
	"encoding/xml"

	"github.com/pkg/errors"

	"github.com/darasa/journal/core/report"
)

// XMLFormatter renders a report as an indented "Report" document: a nested
// "Header", a "Records" container of "Record" elements and the optional
// numeric leaves. Nil fields are omitted, and element order follows field
// declaration order so consumers can compare structurally.
type XMLFormatter struct{}

var _ Formatter = (*XMLFormatter)(nil)

func (XMLFormatter) FormatReport(data report.Data) (string, error) {
	out, err := xml.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "formatting report as xml")
	}
	return xml.Header + string(out), nil
}
