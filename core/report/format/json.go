package format

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/darasa/journal/core/report"
)

// JSONFormatter renders a report as indented JSON with nil fields omitted.
type JSONFormatter struct{}

var _ Formatter = (*JSONFormatter)(nil)

func (JSONFormatter) FormatReport(data report.Data) (string, error) {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "formatting report as json")
	}
	return string(out), nil
}
