// Package tag holds the persisted tag model and the pure reducer that produces
// the next collection state for each action
package tag

// Link is the optional destination attached to a tag
// The zero value means no link is attached
type Link struct {
	URL  string `json:"url,omitempty"`
	Text string `json:"text,omitempty"`
}

// IsZero reports whether no link field is set
func (l Link) IsZero() bool {
	return l.URL == "" && l.Text == ""
}

// HasURL reports whether the link points somewhere
func (l Link) HasURL() bool {
	return l.URL != ""
}

// Merge returns l with every key present in p overwritten
func (l Link) Merge(p LinkPatch) Link {
	if p.URL != nil {
		l.URL = *p.URL
	}
	if p.Text != nil {
		l.Text = *p.Text
	}
	return l
}

// LinkPatch is a partial link; nil fields are absent keys
type LinkPatch struct {
	URL  *string
	Text *string
}

// PatchURL returns a patch setting only the url
func PatchURL(url string) LinkPatch {
	return LinkPatch{URL: &url}
}

// PatchText returns a patch setting only the text
func PatchText(text string) LinkPatch {
	return LinkPatch{Text: &text}
}

// PatchLink returns a patch setting both keys from l
func PatchLink(l Link) LinkPatch {
	return LinkPatch{URL: &l.URL, Text: &l.Text}
}

// IsEmpty reports whether the patch carries no keys
func (p LinkPatch) IsEmpty() bool {
	return p.URL == nil && p.Text == nil
}

// Combine returns a patch equivalent to applying p then q
func (p LinkPatch) Combine(q LinkPatch) LinkPatch {
	if q.URL != nil {
		url := *q.URL
		p.URL = &url
	}
	if q.Text != nil {
		text := *q.Text
		p.Text = &text
	}
	return p
}

// Tag is a persisted annotation positioned in fractional container coordinates
type Tag struct {
	ID   string  `json:"id"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Link Link    `json:"link"`
}

// Collection is the ordered tag sequence, in insertion order
// Values are never mutated in place; every action yields a new slice
type Collection []Tag

// Index returns the position of the tag with the given id, or -1
func (c Collection) Index(id string) int {
	for i := range c {
		if c[i].ID == id {
			return i
		}
	}
	return -1
}

// Find returns the tag with the given id
func (c Collection) Find(id string) (Tag, bool) {
	if i := c.Index(id); i >= 0 {
		return c[i], true
	}
	return Tag{}, false
}

// Contains reports whether a tag with the given id exists
func (c Collection) Contains(id string) bool {
	return c.Index(id) >= 0
}

// Clone returns an independent copy
func (c Collection) Clone() Collection {
	if c == nil {
		return nil
	}
	out := make(Collection, len(c))
	copy(out, c)
	return out
}

// Equal compares two collections by contents and order
// nil and empty collections are equal
func Equal(a, b Collection) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
