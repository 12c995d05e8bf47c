package output

import (
	"encoding/xml"
	"io"
	"sort"

	"github.com/sambacha/rules-closure/internal/types"
)

// CheckstyleRenderer renders output in Checkstyle XML format
// This format is compatible with many CI/CD tools and code quality platforms
type CheckstyleRenderer struct{}

// checkstyleOutput is the root element for Checkstyle XML
type checkstyleOutput struct {
	XMLName xml.Name         `xml:"checkstyle"`
	Version string           `xml:"version,attr"`
	Files   []checkstyleFile `xml:"file"`
}

// checkstyleFile represents a file element in Checkstyle XML
type checkstyleFile struct {
	Name   string            `xml:"name,attr"`
	Errors []checkstyleError `xml:"error"`
}

// checkstyleError represents an error element in Checkstyle XML
type checkstyleError struct {
	Line     int    `xml:"line,attr"`
	Column   int    `xml:"column,attr"`
	Severity string `xml:"severity,attr"`
	Message  string `xml:"message,attr"`
	Source   string `xml:"source,attr"`
}

// Render writes the check result in Checkstyle XML format
func (r *CheckstyleRenderer) Render(w io.Writer, result *types.CheckResult) error {
	fileMap := make(map[string][]checkstyleError)

	for _, f := range visible(result.Findings, false) {
		filename, line, col := location(f)

		fileMap[filename] = append(fileMap[filename], checkstyleError{
			Line:     line,
			Column:   col,
			Severity: mapToCheckstyleSeverity(f.Outcome),
			Message:  f.Message,
			Source:   "jswarn." + f.Type.Key(),
		})
	}

	filenames := make([]string, 0, len(fileMap))
	for filename := range fileMap {
		filenames = append(filenames, filename)
	}
	sort.Strings(filenames)

	output := checkstyleOutput{
		Version: "1.0",
		Files:   make([]checkstyleFile, 0, len(fileMap)),
	}
	for _, filename := range filenames {
		output.Files = append(output.Files, checkstyleFile{
			Name:   filename,
			Errors: fileMap[filename],
		})
	}

	if _, err := w.Write([]byte(xml.Header)); err != nil {
		return err
	}

	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")
	return encoder.Encode(output)
}

// mapToCheckstyleSeverity maps an outcome to a Checkstyle severity
func mapToCheckstyleSeverity(o types.Outcome) string {
	switch o {
	case types.OutcomeError:
		return "error"
	case types.OutcomeWarn:
		return "warning"
	default:
		return "info"
	}
}
