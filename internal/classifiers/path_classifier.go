package classifiers

import (
	"net/url"
	"strings"

	"asset-log-explorer/internal/models"
)

const (
	segmentImages = "images"
	segmentFiles  = "files"
	segmentData   = "data"
	segmentQuery  = "query"
)

// PathClassifier maps a logged URL to an asset reference. Classification is total: anything that does not
// match a known route becomes an unclassified reference carrying the input verbatim.
//
// Recognised routes (query string and fragment are ignored):
//
//	/images/:projectId/:dataset/:id-:dimensions.:ext[/vanity-name]
//	/files/:projectId/:dataset/:id.:ext[/vanity-name]
//	/:version/data/query/:dataset
//
//go:generate mockgen -source=path_classifier.go -destination=./mocks/path_classifier_mock.go -package=mocks
type PathClassifier interface {
	Classify(rawURL string) models.AssetRef
}

type pathClassifier struct{}

func NewPathClassifier() PathClassifier {
	return &pathClassifier{}
}

func (c *pathClassifier) Classify(rawURL string) models.AssetRef {
	segments := strings.Split(strings.TrimPrefix(pathOf(rawURL), "/"), "/")

	switch {
	case segments[0] == segmentImages:
		if ref, ok := c.classifyImage(segments); ok {
			return ref
		}
	case segments[0] == segmentFiles:
		if ref, ok := c.classifyFile(segments); ok {
			return ref
		}
	case len(segments) == 4 && segments[1] == segmentData && segments[2] == segmentQuery:
		if segments[0] != "" && segments[3] != "" {
			return models.NewQueryRef(segments[0], segments[3])
		}
	}

	return models.NewUnclassifiedRef(rawURL)
}

// classifyImage splits the asset segment at the last "." for the extension and then at the last "-" of the
// remaining name for the dimensions.
func (c *pathClassifier) classifyImage(segments []string) (models.AssetRef, bool) {
	projectID, dataset, asset, ok := assetSegments(segments)
	if !ok {
		return models.AssetRef{}, false
	}

	name, ext := splitExtension(asset)
	id, dimensions := name, ""
	if i := strings.LastIndex(name, "-"); i >= 0 {
		id, dimensions = name[:i], name[i+1:]
	}
	if id == "" {
		return models.AssetRef{}, false
	}

	return models.NewImageRef(projectID, dataset, id, dimensions, ext), true
}

func (c *pathClassifier) classifyFile(segments []string) (models.AssetRef, bool) {
	projectID, dataset, asset, ok := assetSegments(segments)
	if !ok {
		return models.AssetRef{}, false
	}

	id, ext := splitExtension(asset)
	if id == "" {
		return models.AssetRef{}, false
	}

	return models.NewFileRef(projectID, dataset, id, ext), true
}

// assetSegments returns the project, dataset and asset segments of /<kind>/:projectId/:dataset/:asset.
// Segments after the asset are vanity filenames and are ignored.
func assetSegments(segments []string) (projectID, dataset, asset string, ok bool) {
	if len(segments) < 4 {
		return "", "", "", false
	}
	projectID, dataset, asset = segments[1], segments[2], segments[3]
	if projectID == "" || dataset == "" || asset == "" {
		return "", "", "", false
	}
	return projectID, dataset, asset, true
}

// splitExtension splits at the final "."; no "." means no extension.
func splitExtension(segment string) (name, ext string) {
	i := strings.LastIndex(segment, ".")
	if i < 0 {
		return segment, ""
	}
	return segment[:i], segment[i+1:]
}

// pathOf strips scheme, host, query and fragment.
func pathOf(rawURL string) string {
	if strings.Contains(rawURL, "://") {
		if u, err := url.Parse(rawURL); err == nil {
			return u.EscapedPath()
		}
	}
	if i := strings.IndexAny(rawURL, "?#"); i >= 0 {
		return rawURL[:i]
	}
	return rawURL
}
