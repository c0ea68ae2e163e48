package doc

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustURL(t *testing.T, s string) *url.URL {
	t.Helper()
	u, err := url.Parse(s)
	require.NoError(t, err)
	return u
}

func TestDocumentBuild(t *testing.T) {
	blocks, err := New().
		H1("title").
		Text("text").
		LinkWithLabel(mustURL(t, "one-link"), "one link").
		Link(mustURL(t, "bare")).
		ListItem("item").
		Quote("quote").
		PreformattedWithAlt("a\nb", "alt").
		Preformatted("x").
		Empty().
		Build()
	require.NoError(t, err)
	require.Len(t, blocks, 9)

	assert.Equal(t, Heading{Level: LevelOne, Content: MustContent("title")}, blocks[0])
	assert.Equal(t, Text{Content: MustContent("text")}, blocks[1])

	link, ok := blocks[2].(Link)
	require.True(t, ok)
	assert.Equal(t, "one-link", link.URI())
	label, ok := link.Label()
	require.True(t, ok)
	assert.Equal(t, "one link", label.String())

	bare := blocks[3].(Link)
	_, ok = bare.Label()
	assert.False(t, ok)

	pre := blocks[6].(Preformatted)
	assert.Equal(t, "a\nb", pre.Text(), "preformatted text may span lines")
	alt, ok := pre.Alt()
	require.True(t, ok)
	assert.Equal(t, "alt", alt.String())

	assert.Equal(t, KindEmpty, blocks[8].Kind())
}

func TestDocumentValidateFailFast(t *testing.T) {
	d := New().H1("ok").Text("").Quote("bad\nquote")

	err := d.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmpty)

	var be *BlockError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, 1, be.Index)
	assert.Equal(t, KindText, be.Kind)

	blocks, err := d.Build()
	assert.Nil(t, blocks)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestDocumentValidateOptionalFields(t *testing.T) {
	err := New().LinkWithLabel(mustURL(t, "x"), "two\rlines").Validate()
	assert.ErrorIs(t, err, ErrContainsLineBreak)

	err = New().PreformattedWithAlt("multi\nline\nis fine", "").Validate()
	assert.ErrorIs(t, err, ErrEmpty)

	assert.NoError(t, New().Preformatted("multi\nline").Link(mustURL(t, "x")).Validate())
}

func TestDocumentValidateIdempotent(t *testing.T) {
	good := New().H2("section").ListItem("item")
	assert.NoError(t, good.Validate())
	assert.NoError(t, good.Validate())

	bad := New().H3("a\nb")
	first := bad.Validate()
	second := bad.Validate()
	assert.Equal(t, first.Error(), second.Error())
}

func TestDocumentPrefixReuse(t *testing.T) {
	base := New().H1("my site")

	home, err := base.Build()
	require.NoError(t, err)
	article, err := base.H2("my article").Build()
	require.NoError(t, err)
	other, err := base.Text("other").Build()
	require.NoError(t, err)

	assert.Len(t, home, 1)
	assert.Len(t, article, 2)
	assert.Len(t, other, 2)
	assert.Equal(t, KindHeading, article[1].Kind())
	assert.Equal(t, KindText, other[1].Kind(), "appending to a shared prefix must not clobber siblings")
	assert.Equal(t, 1, base.Len())
}

func TestDocumentBuildReturnsCopy(t *testing.T) {
	d := New().Text("a")
	blocks, err := d.Build()
	require.NoError(t, err)
	blocks[0] = Empty{}

	again, err := d.Build()
	require.NoError(t, err)
	assert.Equal(t, KindText, again[0].Kind())
}

func TestDocumentAppendMany(t *testing.T) {
	base := New().H1("title")
	d := base.Append(
		Text{Content: MustContent("a")},
		ListItem{Content: MustContent("b")},
		Empty{},
	)
	assert.Equal(t, 4, d.Len())
	assert.Equal(t, 4, cap(d.blocks), "a batch append allocates once")
	assert.Equal(t, 1, base.Len())

	other := base.Append(Quote{Content: MustContent("q")})
	blocks, err := d.Build()
	require.NoError(t, err)
	assert.Equal(t, []Kind{KindHeading, KindText, KindListItem, KindEmpty},
		[]Kind{blocks[0].Kind(), blocks[1].Kind(), blocks[2].Kind(), blocks[3].Kind()})
	assert.Equal(t, KindQuote, other.blocks[1].Kind())

	assert.Equal(t, 1, base.Append().Len())
}
