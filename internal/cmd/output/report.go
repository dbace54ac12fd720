package output

import (
	"fmt"
	"io"

	md "github.com/nao1215/markdown"

	"github.com/agentstation/extcheck/internal/cmd/emoji"
	"github.com/agentstation/extcheck/pkg/constants"
	"github.com/agentstation/extcheck/pkg/extensions"
)

// Report is the serializable form of an extension check.
type Report struct {
	InSync                     bool     `json:"in_sync" yaml:"in_sync"`
	MissingFromContainer       []string `json:"missing_from_container" yaml:"missing_from_container"`
	MissingFromRecommendations []string `json:"missing_from_recommendations" yaml:"missing_from_recommendations"`
}

// NewReport converts a comparison result. Lists are never nil so JSON
// always carries arrays.
func NewReport(r extensions.Result) Report {
	return Report{
		InSync:                     r.InSync(),
		MissingFromContainer:       nonNil(r.MissingFromContainer),
		MissingFromRecommendations: nonNil(r.MissingFromRecommendations),
	}
}

// Result converts the report back to a comparison result.
func (r Report) Result() extensions.Result {
	return extensions.Result{
		MissingFromContainer:       r.MissingFromContainer,
		MissingFromRecommendations: r.MissingFromRecommendations,
	}
}

// Row is one line of the tabular report.
type Row struct {
	Extension   string `json:"extension"`
	MissingFrom string `json:"missing_from"`
	Status      string `json:"status"`
}

// Rows flattens the report for table output. An in-sync report yields a
// single status row.
func (r Report) Rows() []Row {
	if r.InSync {
		return []Row{{Extension: emoji.Optional, MissingFrom: emoji.Optional, Status: emoji.Success + " in sync"}}
	}
	rows := make([]Row, 0, len(r.MissingFromContainer)+len(r.MissingFromRecommendations))
	for _, id := range r.MissingFromContainer {
		rows = append(rows, Row{Extension: id, MissingFrom: constants.DevcontainerDisplayPath, Status: emoji.Error + " missing"})
	}
	for _, id := range r.MissingFromRecommendations {
		rows = append(rows, Row{Extension: id, MissingFrom: constants.ExtensionsDisplayPath, Status: emoji.Error + " missing"})
	}
	return rows
}

// TextFormatter writes the plain report.
type TextFormatter struct{}

// Format implements the Formatter interface for the plain report.
func (f *TextFormatter) Format(w io.Writer, data any) error {
	r, err := asResult(data)
	if err != nil {
		return err
	}
	return extensions.WriteReport(w, r)
}

// MarkdownFormatter writes the report as a markdown document.
type MarkdownFormatter struct{}

// Format implements the Formatter interface for markdown output.
func (f *MarkdownFormatter) Format(w io.Writer, data any) error {
	r, err := asResult(data)
	if err != nil {
		return err
	}

	// Empty PlainText entries are blank lines; the last one ends the
	// document with a newline so appended step summaries stay separate.
	doc := md.NewMarkdown(w).H2("Extension check").PlainText("")
	if r.InSync() {
		return doc.PlainText(extensions.InSyncLine).PlainText("").Build()
	}
	doc.PlainText(extensions.DifferLine)
	section := func(path string, ids []string) {
		if len(ids) == 0 {
			return
		}
		doc.PlainText("").
			H3("Missing from " + md.Code(path)).
			PlainText("").
			BulletList(codeList(ids)...)
	}
	section(constants.DevcontainerDisplayPath, r.MissingFromContainer)
	section(constants.ExtensionsDisplayPath, r.MissingFromRecommendations)
	return doc.PlainText("").Build()
}

func asResult(data any) (extensions.Result, error) {
	switch v := data.(type) {
	case extensions.Result:
		return v, nil
	case Report:
		return v.Result(), nil
	case *Report:
		return v.Result(), nil
	default:
		return extensions.Result{}, fmt.Errorf("unsupported report data %T", data)
	}
}

func codeList(ids []string) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = md.Code(id)
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
