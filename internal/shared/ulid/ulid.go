package ulid

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string. Used for ingestion run ids and HTTP request ids.
var NewULID = func() string {
	return ulid.Make().String()
}

// Time returns the creation time encoded in a ULID string, in UTC. Run ids therefore double as the
// time the snapshot was built.
func Time(id string) (time.Time, error) {
	parsed, err := ulid.ParseStrict(id)
	if err != nil {
		return time.Time{}, err
	}
	return ulid.Time(parsed.Time()).UTC(), nil
}
