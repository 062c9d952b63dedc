package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/lixenwraith/tagboard/tag"
)

// listTags prints one line per tag: id, percentage position, link
func listTags(w io.Writer, c tag.Collection) {
	if len(c) == 0 {
		fmt.Fprintln(w, "no tags")
		return
	}

	idColor := color.New(color.FgYellow, color.Bold)
	posColor := color.New(color.FgCyan)
	urlColor := color.New(color.FgBlue, color.Underline)
	dimColor := color.New(color.Faint)

	for _, t := range c {
		idColor.Fprint(w, t.ID)
		posColor.Fprintf(w, "  %6.2f%% %6.2f%%", t.X*100, t.Y*100)
		if t.Link.HasURL() {
			fmt.Fprint(w, "  ")
			urlColor.Fprint(w, t.Link.URL)
		} else {
			dimColor.Fprint(w, "  (no link)")
		}
		if t.Link.Text != "" {
			fmt.Fprintf(w, "  %q", t.Link.Text)
		}
		fmt.Fprintln(w)
	}
}
