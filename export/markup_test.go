package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tagboard/tag"
)

func TestMarkupEmpty(t *testing.T) {
	out, err := Markup(nil)
	require.NoError(t, err)
	assert.Equal(t, "<div class=\"tags\">\n</div>\n", out)
}

func TestMarkupPositions(t *testing.T) {
	out, err := Markup(tag.Collection{{ID: "a", X: 0.25, Y: 0.5}})
	require.NoError(t, err)

	assert.Contains(t, out, `<div class="tag" style="top: 50%; left: 25%;" id="a">`)
	assert.Contains(t, out, `<div class="tag-handle"></div>`)
	assert.NotContains(t, out, "has-link")
	assert.NotContains(t, out, "tag-tooltip")
}

func TestMarkupLink(t *testing.T) {
	out, err := Markup(tag.Collection{
		{ID: "a", X: 0, Y: 1, Link: tag.Link{URL: "https://example.com/x", Text: "<b>see</b>"}},
	})
	require.NoError(t, err)

	assert.Contains(t, out, `class="tag has-link"`)
	assert.Contains(t, out, `<a class="tag-link" href="https://example.com/x"><div class="tag-handle"></div></a>`)
	assert.Contains(t, out, `<span class="tag-tooltip">&lt;b&gt;see&lt;/b&gt;</span>`)
	assert.Contains(t, out, `style="top: 100%; left: 0%;"`)
}

func TestMarkupUnsafeURL(t *testing.T) {
	out, err := Markup(tag.Collection{{ID: "a", Link: tag.Link{URL: "javascript:alert(1)"}}})
	require.NoError(t, err)
	assert.NotContains(t, out, "javascript:")
}

func TestMarkupOrder(t *testing.T) {
	out, err := Markup(tag.Collection{{ID: "first"}, {ID: "second"}})
	require.NoError(t, err)
	assert.Less(t, strings.Index(out, `id="first"`), strings.Index(out, `id="second"`))
}
