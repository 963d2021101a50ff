package classifiers

import (
	"fmt"
	"testing"

	"asset-log-explorer/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestPathClassifier_Classify(t *testing.T) {
	t.Parallel()

	classifier := NewPathClassifier()

	tests := []struct {
		name     string
		input    string
		expected models.AssetRef
	}{
		{
			name:     "image with dimensions",
			input:    "/images/p1/ds/a1-800x600.jpg",
			expected: models.NewImageRef("p1", "ds", "a1", "800x600", "jpg"),
		},
		{
			name:     "image with query string",
			input:    "/images/p1/production/abc123-1920x1080.png?w=200&fm=webp",
			expected: models.NewImageRef("p1", "production", "abc123", "1920x1080", "png"),
		},
		{
			name:     "image id containing hyphens splits at the last hyphen",
			input:    "/images/p1/ds/image-abc-def-40x40.webp",
			expected: models.NewImageRef("p1", "ds", "image-abc-def", "40x40", "webp"),
		},
		{
			name:     "image without dimensions",
			input:    "/images/p1/ds/a1.gif",
			expected: models.NewImageRef("p1", "ds", "a1", "", "gif"),
		},
		{
			name:     "image without extension",
			input:    "/images/p1/ds/a1-800x600",
			expected: models.NewImageRef("p1", "ds", "a1", "800x600", ""),
		},
		{
			name:     "image with vanity filename",
			input:    "/images/p1/ds/a1-800x600.jpg/my-photo.jpg",
			expected: models.NewImageRef("p1", "ds", "a1", "800x600", "jpg"),
		},
		{
			name:     "absolute image url",
			input:    "https://cdn.sanity.io/images/p1/ds/a1-10x10.svg?dl=1",
			expected: models.NewImageRef("p1", "ds", "a1", "10x10", "svg"),
		},
		{
			name:     "file",
			input:    "/files/p1/ds/f1.pdf",
			expected: models.NewFileRef("p1", "ds", "f1", "pdf"),
		},
		{
			name:     "file with dotted id keeps the final extension",
			input:    "/files/p1/ds/archive.tar.gz",
			expected: models.NewFileRef("p1", "ds", "archive.tar", "gz"),
		},
		{
			name:     "file without extension",
			input:    "/files/p1/ds/README",
			expected: models.NewFileRef("p1", "ds", "README", ""),
		},
		{
			name:     "query",
			input:    "/v1/data/query/production",
			expected: models.NewQueryRef("v1", "production"),
		},
		{
			name:     "query with groq parameters",
			input:    "/v2021-10-21/data/query/staging?query=*%5B_type%3D%3D%22post%22%5D",
			expected: models.NewQueryRef("v2021-10-21", "staging"),
		},
		{
			name:     "image with too few segments",
			input:    "/images/p1/ds",
			expected: models.NewUnclassifiedRef("/images/p1/ds"),
		},
		{
			name:     "file with empty dataset",
			input:    "/files/p1//f1.pdf",
			expected: models.NewUnclassifiedRef("/files/p1//f1.pdf"),
		},
		{
			name:     "image without id",
			input:    "/images/p1/ds/-800x600.jpg",
			expected: models.NewUnclassifiedRef("/images/p1/ds/-800x600.jpg"),
		},
		{
			name:     "query with extra segment",
			input:    "/v1/data/query/production/extra",
			expected: models.NewUnclassifiedRef("/v1/data/query/production/extra"),
		},
		{
			name:     "mutation endpoint",
			input:    "/v1/data/mutate/production",
			expected: models.NewUnclassifiedRef("/v1/data/mutate/production"),
		},
		{
			name:     "root",
			input:    "/",
			expected: models.NewUnclassifiedRef("/"),
		},
		{
			name:     "empty",
			input:    "",
			expected: models.NewUnclassifiedRef(""),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, classifier.Classify(tt.input))
		})
	}
}

func TestPathClassifier_Classify_RecoversImageFieldsVerbatim(t *testing.T) {
	t.Parallel()

	classifier := NewPathClassifier()

	projectIDs := []string{"p1", "abc123xy", "zp7mbokg"}
	datasets := []string{"production", "ds", "staging_2"}
	ids := []string{"a1", "5f3c2b1e9d8a7b6c5d4e3f2a1b0c9d8e7f6a5b4c", "image-with-hyphens"}
	dimensions := []string{"800x600", "1x1", "4032x3024"}
	extensions := []string{"jpg", "png", "webp", "JPG"}

	for _, projectID := range projectIDs {
		for _, dataset := range datasets {
			for _, id := range ids {
				for _, dim := range dimensions {
					for _, ext := range extensions {
						path := fmt.Sprintf("/images/%s/%s/%s-%s.%s", projectID, dataset, id, dim, ext)
						assert.Equal(t, models.NewImageRef(projectID, dataset, id, dim, ext), classifier.Classify(path), path)
					}
				}
			}
		}
	}
}

func TestPathClassifier_Classify_RecoversFileFieldsVerbatim(t *testing.T) {
	t.Parallel()

	classifier := NewPathClassifier()

	projectIDs := []string{"p1", "zp7mbokg"}
	datasets := []string{"production", "ds-2"}
	ids := []string{"f1", "9b8a7c6d5e4f3a2b1c0d", "file-with-hyphens"}
	extensions := []string{"pdf", "mp4", "zip", "Docx"}

	for _, projectID := range projectIDs {
		for _, dataset := range datasets {
			for _, id := range ids {
				for _, ext := range extensions {
					path := fmt.Sprintf("/files/%s/%s/%s.%s", projectID, dataset, id, ext)
					assert.Equal(t, models.NewFileRef(projectID, dataset, id, ext), classifier.Classify(path), path)
				}
			}
		}
	}
}

func TestPathClassifier_Classify_UnrecognisedIsNeverAnError(t *testing.T) {
	t.Parallel()

	classifier := NewPathClassifier()

	inputs := []string{"/favicon.ico", "images", "/images", "//", "?a=b", "/files/p/d/", "not a path at all", "/v1/data/query/"}
	for _, input := range inputs {
		ref := classifier.Classify(input)
		assert.Equal(t, models.KindUnclassified, ref.Kind, input)
		assert.Equal(t, input, ref.RawPath, input)
	}
}
