package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaFor(t *testing.T) {
	t.Run("singleton types", func(t *testing.T) {
		for _, typ := range []ContentType{"site-settings", "homepage", "about", "menu", "contact", "seo"} {
			schema, ok := SchemaFor(typ)
			require.True(t, ok, "type %s must be defined", typ)
			assert.Equal(t, KindSingleton, schema.Kind)
			assert.Empty(t, schema.ItemsField)
		}
	})

	t.Run("collection field mapping", func(t *testing.T) {
		expect := map[ContentType]string{
			"projects":        "projects",
			"services":        "services",
			"team":            "members",
			"clients":         "clients",
			"blog":            "posts",
			"gallery":         "galleryImages",
			"services-slider": "videos",
			"testimonials":    "testimonials",
			"legal":           "documents",
			"faq":             "items",
		}

		for typ, field := range expect {
			schema, ok := SchemaFor(typ)
			require.True(t, ok, "type %s must be defined", typ)
			assert.Equal(t, KindCollection, schema.Kind)
			assert.Equal(t, field, schema.ItemsField)
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		_, ok := SchemaFor("users")
		assert.False(t, ok)
		assert.False(t, ValidContentType("users"))
	})
}

func TestContentTypes(t *testing.T) {
	types := ContentTypes()
	assert.Len(t, types, 16)
	assert.Contains(t, types, ContentType("projects"))
}

func TestCreateLeadRequest_TrimsInput(t *testing.T) {
	req := CreateLeadRequest{Name: "  Mehmet  ", Phone: " 555 "}
	require.NoError(t, req.Validate())
	assert.Equal(t, "Mehmet", req.Name)
	assert.Equal(t, "555", req.Phone)
}

func TestEmailRegex(t *testing.T) {
	valid := []string{"a@b.co", "info@bosnamedia.com", "x.y+z@sub.domain.org"}
	invalid := []string{"", "plain", "a@b", "a b@c.com", "@c.com"}

	for _, s := range valid {
		assert.True(t, EmailRegex().MatchString(s), "%q should be valid", s)
	}
	for _, s := range invalid {
		assert.False(t, EmailRegex().MatchString(s), "%q should be invalid", s)
	}
}
