// Package export renders a tag collection as the saved front-end markup
package export

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/lixenwraith/tagboard/tag"
)

var markup = template.Must(template.New("tags").Parse(`<div class="tags">
{{- range .}}
<div class="tag{{if .URL}} has-link{{end}}" style="top: {{.Top}}%; left: {{.Left}}%;" id="{{.ID}}">
{{- if .URL}}<a class="tag-link" href="{{.URL}}">{{end -}}
<div class="tag-handle"></div>
{{- if .URL}}</a>{{end -}}
{{- if .Text}}<span class="tag-tooltip">{{.Text}}</span>{{end -}}
</div>
{{- end}}
</div>
`))

type view struct {
	ID        string
	Top, Left string
	URL, Text string
}

// percent formats a fractional coordinate as a CSS percentage value
func percent(v float64) string {
	return strconv.FormatFloat(v*100, 'f', -1, 64)
}

// Write renders c to w
func Write(w io.Writer, c tag.Collection) error {
	views := make([]view, 0, len(c))
	for _, t := range c {
		views = append(views, view{
			ID:   t.ID,
			Top:  percent(t.Y),
			Left: percent(t.X),
			URL:  t.Link.URL,
			Text: t.Link.Text,
		})
	}
	if err := markup.Execute(w, views); err != nil {
		return fmt.Errorf("render markup: %w", err)
	}
	return nil
}

// Markup renders c to a string
func Markup(c tag.Collection) (string, error) {
	var buf bytes.Buffer
	if err := Write(&buf, c); err != nil {
		return "", err
	}
	return buf.String(), nil
}
