// Package format renders reports into named textual wire formats.
package format

import (
	"github.com/darasa/journal/core/report"
)

// Formatter serializes a report into one textual format.
type Formatter interface {
	FormatReport(data report.Data) (string, error)
}

// Built-in formatter names, registered by NewDefaultRegistry.
const (
	JSONFormat = "json"
	XMLFormat  = "xml"
)
