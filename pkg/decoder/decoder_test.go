package decoder_test

import (
	"encoding/json"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dusksociety/dsm/pkg/decoder"
	"github.com/dusksociety/dsm/pkg/records"
	"github.com/dusksociety/dsm/pkg/validator"
)

func TestJSON(t *testing.T) {
	t.Run("decodes an object", func(t *testing.T) {
		in, err := decoder.JSON(strings.NewReader(`{"email":"a@b.com","source":"footer","references":["https://x.com"]}`))
		require.NoError(t, err)
		assert.Equal(t, "a@b.com", in["email"])
		assert.Equal(t, []any{"https://x.com"}, in["references"])
	})

	t.Run("keeps numbers as json.Number", func(t *testing.T) {
		in, err := decoder.JSON(strings.NewReader(`{"name":42}`))
		require.NoError(t, err)
		assert.Equal(t, json.Number("42"), in["name"])

		_, err = records.ValidateCreator(in)
		errs := validator.ExtractValidationErrors(err)
		require.NotEmpty(t, errs)
		assert.Equal(t, validator.WrongType, errs[0].Kind)
	})

	t.Run("keeps null", func(t *testing.T) {
		in, err := decoder.JSON(strings.NewReader(`{"source":null}`))
		require.NoError(t, err)
		v, ok := in["source"]
		assert.True(t, ok)
		assert.Nil(t, v)
	})

	for name, body := range map[string]string{
		"array":  `["a@b.com"]`,
		"string": `"a@b.com"`,
		"null":   `null`,
		"number": `12`,
	} {
		t.Run("rejects top-level "+name, func(t *testing.T) {
			_, err := decoder.JSON(strings.NewReader(body))
			assert.ErrorIs(t, err, decoder.ErrNotObject)
		})
	}

	t.Run("rejects malformed JSON", func(t *testing.T) {
		_, err := decoder.JSON(strings.NewReader(`{"email":`))
		assert.ErrorIs(t, err, decoder.ErrFailedToParseJSON)
	})

	t.Run("rejects empty body", func(t *testing.T) {
		_, err := decoder.JSON(strings.NewReader(""))
		assert.ErrorIs(t, err, decoder.ErrFailedToParseJSON)
	})

	t.Run("rejects trailing data", func(t *testing.T) {
		_, err := decoder.JSON(strings.NewReader(`{"email":"a@b.com"} {"email":"c@d.com"}`))
		assert.ErrorIs(t, err, decoder.ErrFailedToParseJSON)
	})

	t.Run("rejects oversized body", func(t *testing.T) {
		body := `{"message":"` + strings.Repeat("a", decoder.DefaultMaxSize) + `"}`
		_, err := decoder.JSON(strings.NewReader(body))
		assert.ErrorIs(t, err, decoder.ErrFailedToParseJSON)
		assert.ErrorIs(t, err, decoder.ErrTooLarge)
	})
}

func TestYAML(t *testing.T) {
	t.Run("decodes a mapping", func(t *testing.T) {
		in, err := decoder.YAML(strings.NewReader(`
type: brand
name: Jane Doe
email: jane@example.com
subject: Music video
message: We would love to shoot our next video with you.
timeline: 2025-03-01
references:
  - https://example.com/a
  - https://example.com/b
`))
		require.NoError(t, err)
		assert.Equal(t, "2025-03-01", in["timeline"])
		assert.Equal(t, []any{"https://example.com/a", "https://example.com/b"}, in["references"])

		b, err := records.ValidateBrief(in)
		require.NoError(t, err)
		assert.Equal(t, "2025-03-01", b.Timeline.OrElse(""))
	})

	t.Run("typed scalars stay typed", func(t *testing.T) {
		in, err := decoder.YAML(strings.NewReader("title: 1999\nimage: https://x.com/a.png\nurl: ~\n"))
		require.NoError(t, err)
		assert.Equal(t, 1999, in["title"])
		assert.Nil(t, in["url"])
	})

	t.Run("resolves aliases", func(t *testing.T) {
		in, err := decoder.YAML(strings.NewReader("a: &x hello\nb: *x\n"))
		require.NoError(t, err)
		assert.Equal(t, "hello", in["b"])
	})

	t.Run("expands merge keys", func(t *testing.T) {
		in, err := decoder.YAML(strings.NewReader(`
base: &b
  email: a@b.com
  source: flyer
<<: *b
source: newsletter
`))
		require.NoError(t, err)
		assert.Equal(t, "a@b.com", in["email"])
		assert.Equal(t, "newsletter", in["source"])
		assert.NotContains(t, in, "<<")

		s, err := records.ValidateSubscriber(in)
		require.NoError(t, err)
		assert.Equal(t, "a@b.com", s.Email)
	})

	t.Run("expands merge sequences in order", func(t *testing.T) {
		in, err := decoder.YAML(strings.NewReader(`
a: &a {title: First}
b: &b {title: Second, image: "https://x.com/a.png"}
<<: [*a, *b]
`))
		require.NoError(t, err)
		assert.Equal(t, "First", in["title"])
		assert.Equal(t, "https://x.com/a.png", in["image"])
	})

	t.Run("rejects duplicate keys", func(t *testing.T) {
		_, err := decoder.YAML(strings.NewReader("email: a@b.com\nemail: c@d.com\n"))
		assert.ErrorIs(t, err, decoder.ErrFailedToParseYAML)
	})

	t.Run("rejects non-string keys", func(t *testing.T) {
		_, err := decoder.YAML(strings.NewReader("email: a@b.com\n1: x\n"))
		assert.ErrorIs(t, err, decoder.ErrFailedToParseYAML)
	})

	t.Run("rejects merge of a scalar", func(t *testing.T) {
		_, err := decoder.YAML(strings.NewReader("<<: nope\n"))
		assert.ErrorIs(t, err, decoder.ErrFailedToParseYAML)
	})

	t.Run("rejects non-mapping document", func(t *testing.T) {
		_, err := decoder.YAML(strings.NewReader("- a\n- b\n"))
		assert.ErrorIs(t, err, decoder.ErrNotObject)
	})

	t.Run("rejects empty document", func(t *testing.T) {
		_, err := decoder.YAML(strings.NewReader(""))
		assert.ErrorIs(t, err, decoder.ErrNotObject)
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		_, err := decoder.YAML(strings.NewReader("a: [1, 2\n"))
		assert.ErrorIs(t, err, decoder.ErrFailedToParseYAML)
	})
}

func TestValues(t *testing.T) {
	t.Run("list fields collect every value", func(t *testing.T) {
		form := url.Values{
			"title":  {"Night Drive"},
			"image":  {"https://cdn.example.com/a.jpg"},
			"tags":   {"film"},
			"tags[]": {"35mm"},
		}

		in, err := decoder.Values(records.KindWork, form)
		require.NoError(t, err)
		assert.Equal(t, "Night Drive", in["title"])
		assert.Equal(t, []string{"film", "35mm"}, in["tags"])

		w, err := records.ValidateWork(in)
		require.NoError(t, err)
		assert.Equal(t, []string{"film", "35mm"}, w.Tags.OrElse(nil))
	})

	t.Run("scalar fields take the first value", func(t *testing.T) {
		in, err := decoder.Values(records.KindSubscriber, url.Values{"email": {"a@b.com", "c@d.com"}})
		require.NoError(t, err)
		assert.Equal(t, "a@b.com", in["email"])
	})

	t.Run("bracket suffix only applies to list fields", func(t *testing.T) {
		in, err := decoder.Values(records.KindSubscriber, url.Values{
			"email":   {"a@b.com"},
			"email[]": {"other@b.com"},
		})
		require.NoError(t, err)
		assert.Equal(t, "a@b.com", in["email"])
		assert.Equal(t, "other@b.com", in["email[]"])

		s, err := records.ValidateSubscriber(in)
		require.NoError(t, err)
		assert.Equal(t, "a@b.com", s.Email)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := decoder.Values("sponsor", url.Values{})
		assert.ErrorIs(t, err, records.ErrUnknownKind)
	})
}

func TestDetectAndDecode(t *testing.T) {
	assert.Equal(t, decoder.FormatYAML, decoder.Detect("brief.yaml"))
	assert.Equal(t, decoder.FormatYAML, decoder.Detect("BRIEF.YML"))
	assert.Equal(t, decoder.FormatJSON, decoder.Detect("brief.json"))
	assert.Equal(t, decoder.FormatJSON, decoder.Detect("-"))

	f, err := decoder.ParseFormat("yml")
	require.NoError(t, err)
	assert.Equal(t, decoder.FormatYAML, f)

	_, err = decoder.ParseFormat("xml")
	assert.ErrorIs(t, err, decoder.ErrUnsupportedFormat)

	in, err := decoder.Decode(decoder.FormatYAML, strings.NewReader("email: a@b.com\n"))
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", in["email"])

	_, err = decoder.Decode("xml", strings.NewReader(""))
	assert.ErrorIs(t, err, decoder.ErrUnsupportedFormat)
}
