package markup

import (
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithrel/mdiu/pkg/doc"
)

func mustURL(t *testing.T, s string) *url.URL {
	t.Helper()
	u, err := url.Parse(s)
	require.NoError(t, err)
	return u
}

func kitchenSink(t *testing.T) []doc.Block {
	t.Helper()
	blocks, err := doc.New().
		H1("title").
		H2("section").
		H3("subsection").
		Empty().
		Text("text").
		LinkWithLabel(mustURL(t, "one-link"), "one link").
		Quote("quote").
		Preformatted("@_@").
		Text("more text").
		PreformattedWithAlt("@_@", "emoticon").
		ListItem("one item").
		Link(mustURL(t, "no-text")).
		LinkWithLabel(mustURL(t, "with-text"), "with text").
		ListItem("an item").
		ListItem("another item").
		Build()
	require.NoError(t, err)
	return blocks
}

func TestGemtextKitchenSink(t *testing.T) {
	expected := "# title\n" +
		"## section\n" +
		"### subsection\n" +
		"\n" +
		"text\n" +
		"=> one-link one link\n" +
		"> quote\n" +
		"```\n@_@\n```\n" +
		"more text\n" +
		"```emoticon\n@_@\n```\n" +
		"* one item\n" +
		"=> no-text\n" +
		"=> with-text with text\n" +
		"* an item\n" +
		"* another item\n"

	assert.Equal(t, expected, Gemtext{}.Render(kitchenSink(t)))
}

func TestHTMLKitchenSink(t *testing.T) {
	expected := `<h1>title</h1>
<h2>section</h2>
<h3>subsection</h3>
<p>text</p>
<p><a href="one-link">one link</a></p>
<blockquote>quote</blockquote>
<pre>
@_@
</pre>
<p>more text</p>
<pre>
@_@
</pre>
<li>one item</li>
<ul>
<li><a href="no-text">no-text</a></li>
<li><a href="with-text">with text</a></li>
</ul>
<ul>
<li>an item</li>
<li>another item</li>
</ul>
`
	assert.Equal(t, expected, HTML{}.Render(kitchenSink(t)))
}

func TestMarkdownKitchenSink(t *testing.T) {
	expected := `# title

## section

### subsection

text

[one link](one-link)

> quote

    @_@

more text

    @_@

* one item

* [no-text](no-text)
* [with text](with-text)

* an item
* another item
`
	assert.Equal(t, expected, Markdown{}.Render(kitchenSink(t)))
}

func TestRenderDeterministic(t *testing.T) {
	blocks := kitchenSink(t)
	for _, f := range Formats() {
		t.Run(f.String(), func(t *testing.T) {
			first := Render(f.Formatter(), blocks)
			assert.Equal(t, first, Render(f.Formatter(), blocks))
			assert.Equal(t, first, f.Render(blocks))
			assert.Equal(t, Digest(f.Formatter(), blocks), Digest(f.Formatter(), blocks))
		})
	}
}

func TestRenderConcurrent(t *testing.T) {
	blocks := kitchenSink(t)
	want := HTML{}.Render(blocks)

	var wg sync.WaitGroup
	got := make([]string, 8)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = HTML{}.Render(blocks)
		}(i)
	}
	wg.Wait()
	for _, g := range got {
		assert.Equal(t, want, g)
	}
}

func TestHTMLRunCoalescing(t *testing.T) {
	t.Run("three links share one container", func(t *testing.T) {
		blocks, err := doc.New().
			Text("before").
			Link(mustURL(t, "a")).
			Link(mustURL(t, "b")).
			Link(mustURL(t, "c")).
			Text("after").
			Build()
		require.NoError(t, err)

		out := HTML{}.Render(blocks)
		assert.Equal(t, 1, strings.Count(out, "<ul>"))
		assert.Equal(t, 1, strings.Count(out, "</ul>"))
		open := strings.Index(out, "<ul>")
		closing := strings.Index(out, "</ul>")
		assert.Less(t, open, strings.Index(out, `href="a"`))
		assert.Greater(t, closing, strings.Index(out, `href="c"`))
		assert.Equal(t, 3, strings.Count(out, "<li>"))
	})

	t.Run("isolated link is a paragraph", func(t *testing.T) {
		blocks, err := doc.New().Text("x").Link(mustURL(t, "a")).Text("y").Build()
		require.NoError(t, err)

		out := HTML{}.Render(blocks)
		assert.NotContains(t, out, "<ul>")
		assert.NotContains(t, out, "</ul>")
		assert.Contains(t, out, "<p><a href=\"a\">a</a></p>\n")
	})

	t.Run("link and list runs are tracked separately", func(t *testing.T) {
		blocks, err := doc.New().
			Link(mustURL(t, "a")).
			ListItem("one").
			Link(mustURL(t, "b")).
			ListItem("two").
			Build()
		require.NoError(t, err)

		out := HTML{}.Render(blocks)
		assert.NotContains(t, out, "<ul>")
		assert.Equal(t, 2, strings.Count(out, "<p><a"))
	})

	t.Run("run at end of document is closed", func(t *testing.T) {
		blocks, err := doc.New().ListItem("a").ListItem("b").Build()
		require.NoError(t, err)
		assert.Equal(t, "<ul>\n<li>a</li>\n<li>b</li>\n</ul>\n", HTML{}.Render(blocks))
	})

	t.Run("empty block breaks a run", func(t *testing.T) {
		blocks, err := doc.New().ListItem("a").Empty().ListItem("b").Build()
		require.NoError(t, err)
		assert.Equal(t, "<li>a</li>\n<li>b</li>\n", HTML{}.Render(blocks))
	})
}

func TestHTMLEscapes(t *testing.T) {
	blocks, err := doc.New().
		Text("a < b & c").
		LinkWithLabel(mustURL(t, "/search?q=1&r=2"), `say "hi"`).
		Preformatted("<tag>").
		Build()
	require.NoError(t, err)

	out := HTML{}.Render(blocks)
	assert.Contains(t, out, "<p>a &lt; b &amp; c</p>")
	assert.Contains(t, out, `<a href="/search?q=1&amp;r=2">say &#34;hi&#34;</a>`)
	assert.Contains(t, out, "<pre>\n&lt;tag&gt;\n</pre>")
}

func TestHTMLPreformattedAltIsDropped(t *testing.T) {
	blocks, err := doc.New().PreformattedWithAlt("x", "caption").Build()
	require.NoError(t, err)
	assert.Equal(t, "<pre>\nx\n</pre>\n", HTML{}.Render(blocks))
}

func TestMarkdownRuns(t *testing.T) {
	t.Run("run is separated by one blank line on each side", func(t *testing.T) {
		blocks, err := doc.New().
			Text("before").
			ListItem("a").
			ListItem("b").
			ListItem("c").
			Text("after").
			Build()
		require.NoError(t, err)
		assert.Equal(t, "before\n\n* a\n* b\n* c\n\nafter\n", Markdown{}.Render(blocks))
	})

	t.Run("lone list item is its own paragraph", func(t *testing.T) {
		blocks, err := doc.New().ListItem("only").Build()
		require.NoError(t, err)
		assert.Equal(t, "* only\n", Markdown{}.Render(blocks))
	})

	t.Run("bare link uses uri as label", func(t *testing.T) {
		blocks, err := doc.New().Link(mustURL(t, "gemini://example.org/")).Build()
		require.NoError(t, err)
		assert.Equal(t, "[gemini://example.org/](gemini://example.org/)\n", Markdown{}.Render(blocks))
	})

	t.Run("multi-line preformatted is indented per line", func(t *testing.T) {
		blocks, err := doc.New().Preformatted("a\r\nb\n").Text("t").Build()
		require.NoError(t, err)
		assert.Equal(t, "    a\n    b\n\nt\n", Markdown{}.Render(blocks))
	})
}

func TestEmptyDocument(t *testing.T) {
	assert.Equal(t, "", Gemtext{}.Render(nil))
	assert.Equal(t, "", HTML{}.Render(nil))
	assert.Equal(t, "", Markdown{}.Render(nil))

	onlyEmpty := []doc.Block{doc.Empty{}}
	assert.Equal(t, "\n", Gemtext{}.Render(onlyEmpty))
	assert.Equal(t, "", HTML{}.Render(onlyEmpty))
	assert.Equal(t, "", Markdown{}.Render(onlyEmpty))
}

func TestHeadingLevelClamped(t *testing.T) {
	blocks := []doc.Block{
		doc.Heading{Level: 0, Content: doc.MustContent("low")},
		doc.Heading{Level: 7, Content: doc.MustContent("high")},
	}
	assert.Equal(t, "# low\n### high\n", Gemtext{}.Render(blocks))
	assert.Equal(t, "<h1>low</h1>\n<h3>high</h3>\n", HTML{}.Render(blocks))
}

func TestUncheckedContentRendersVerbatim(t *testing.T) {
	// Invalid content is the caller's problem: it renders, just not as one line.
	blocks := []doc.Block{doc.Text{Content: doc.UncheckedContent("a\nb")}}
	assert.Equal(t, "a\nb\n", Gemtext{}.Render(blocks))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		ok   bool
	}{
		{"gemtext", FormatGemtext, true},
		{".gmi", FormatGemtext, true},
		{"HTML", FormatHTML, true},
		{"htm", FormatHTML, true},
		{"md", FormatMarkdown, true},
		{" markdown ", FormatMarkdown, true},
		{"pdf", FormatGemtext, false},
	}
	for _, tt := range tests {
		got, ok := ParseFormat(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestFormatMetadata(t *testing.T) {
	assert.Equal(t, ".gmi", FormatGemtext.Extension())
	assert.Equal(t, ".html", FormatHTML.Extension())
	assert.Equal(t, ".md", FormatMarkdown.Extension())
	assert.IsType(t, Markdown{}, FormatMarkdown.Formatter())
	assert.IsType(t, Gemtext{}, Format(42).Formatter())
	assert.Equal(t, "unknown", Format(42).String())

	for _, f := range Formats() {
		parsed, ok := ParseFormat(f.String())
		require.True(t, ok)
		assert.Equal(t, f, parsed)
	}
}

func TestSuggest(t *testing.T) {
	assert.Equal(t, []string{"html"}, Suggest("htm"))
	assert.Contains(t, Suggest("mkd"), "markdown")
	assert.Empty(t, Suggest("zzz"))
}

func TestDigest(t *testing.T) {
	blocks := kitchenSink(t)
	assert.Len(t, Digest(HTML{}, blocks), 64)
	assert.NotEqual(t, Digest(HTML{}, blocks), Digest(Markdown{}, blocks))
}
