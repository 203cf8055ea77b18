package upload

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		mediaType string
		want      string
	}{
		{"image/png", CategoryImage},
		{"image/jpeg", CategoryImage},
		{"video/mp4", CategoryVideo},
		{"audio/mpeg", CategoryAudio},
		{"application/pdf", CategoryPDF},
		{"application/vnd.openxmlformats-officedocument.wordprocessingml.document", CategoryDocument},
		{"application/msword", CategoryDocument},
		{"application/zip", CategoryArchive},
		{"application/x-rar-compressed", CategoryArchive},
		{"text/plain", CategoryOther},
		{"", CategoryOther},
	}

	for _, tc := range cases {
		t.Run(tc.mediaType, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.mediaType))
		})
	}
}

func TestStorageName(t *testing.T) {
	t.Run("preserves extension, replaces base name", func(t *testing.T) {
		name := StorageName("a.PNG")
		assert.True(t, strings.HasSuffix(name, ".PNG"))
		assert.NotEqual(t, "a.PNG", name)
	})

	t.Run("no extension", func(t *testing.T) {
		name := StorageName("README")
		assert.NotContains(t, name, ".")
		assert.NotEmpty(t, name)
	})

	t.Run("ignores client-supplied directories", func(t *testing.T) {
		name := StorageName("../../etc/passwd.txt")
		assert.True(t, strings.HasSuffix(name, ".txt"))
		assert.NotContains(t, name, "/")
	})

	t.Run("unique per call", func(t *testing.T) {
		assert.NotEqual(t, StorageName("a.png"), StorageName("a.png"))
	})
}
