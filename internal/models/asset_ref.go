package models

import "fmt"

// AssetKind tags the AssetRef variant.
type AssetKind string

const (
	KindImage        AssetKind = "image"
	KindFile         AssetKind = "file"
	KindQuery        AssetKind = "query"
	KindUnclassified AssetKind = "unclassified"
)

// kindOrder fixes the presentation order of kinds.
var kindOrder = map[AssetKind]int{
	KindImage:        0,
	KindFile:         1,
	KindQuery:        2,
	KindUnclassified: 3,
}

// Rank returns the position of the kind in presentation order.
func (k AssetKind) Rank() int {
	if rank, ok := kindOrder[k]; ok {
		return rank
	}
	return len(kindOrder)
}

// Marker is the one-letter kind marker shown in tables.
func (k AssetKind) Marker() string {
	switch k {
	case KindImage:
		return "I"
	case KindFile:
		return "F"
	case KindQuery:
		return "Q"
	default:
		return "?"
	}
}

// Label is the plural display name of the kind.
func (k AssetKind) Label() string {
	switch k {
	case KindImage:
		return "Images"
	case KindFile:
		return "Files"
	case KindQuery:
		return "Queries"
	default:
		return "Other"
	}
}

// AssetRef is the classification result of a URL path. Kind selects which fields are meaningful:
//
//	image:        ProjectID, Dataset, ID, Dimensions, Extension
//	file:         ProjectID, Dataset, ID, Extension
//	query:        Version, Dataset
//	unclassified: RawPath
type AssetRef struct {
	Kind       AssetKind
	ProjectID  string
	Dataset    string
	ID         string
	Dimensions string
	Extension  string
	Version    string
	RawPath    string
}

func NewImageRef(projectID, dataset, id, dimensions, extension string) AssetRef {
	return AssetRef{Kind: KindImage, ProjectID: projectID, Dataset: dataset, ID: id, Dimensions: dimensions, Extension: extension}
}

func NewFileRef(projectID, dataset, id, extension string) AssetRef {
	return AssetRef{Kind: KindFile, ProjectID: projectID, Dataset: dataset, ID: id, Extension: extension}
}

func NewQueryRef(version, dataset string) AssetRef {
	return AssetRef{Kind: KindQuery, Version: version, Dataset: dataset}
}

func NewUnclassifiedRef(rawPath string) AssetRef {
	return AssetRef{Kind: KindUnclassified, RawPath: rawPath}
}

// Key returns the aggregation identity of the reference.
// All unclassified references share one key.
func (r AssetRef) Key() AssetKey {
	switch r.Kind {
	case KindImage, KindFile:
		return AssetKey{Kind: r.Kind, ProjectID: r.ProjectID, Dataset: r.Dataset, ID: r.ID}
	case KindQuery:
		return AssetKey{Kind: KindQuery, Dataset: r.Dataset, ID: r.Version}
	default:
		return AssetKey{Kind: KindUnclassified}
	}
}

// AssetKey identifies one by-asset row.
type AssetKey struct {
	Kind      AssetKind
	ProjectID string
	Dataset   string
	ID        string // asset id, or the API version for queries
}

const unclassifiedKey = "(unclassified)"

// String is the composite key form used for display and for sorting by id.
func (k AssetKey) String() string {
	switch k.Kind {
	case KindImage, KindFile:
		return fmt.Sprintf("%s/%s/%s", k.ProjectID, k.Dataset, k.ID)
	case KindQuery:
		return fmt.Sprintf("query:%s/%s", k.ID, k.Dataset)
	default:
		return unclassifiedKey
	}
}
