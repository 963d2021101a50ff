package http

import (
	"net/http"
	"strconv"
	"strings"

	"asset-log-explorer/internal/models"
	"asset-log-explorer/internal/shared/validators"
)

var validate = validators.New()

// listQuery holds the ordering parameters shared by the table endpoints:
// ?sort=id|ext|requests|avg|bandwidth&dir=asc|desc&limit=N
type listQuery struct {
	Sort  string `validate:"omitempty,oneof=id ext requests avg bandwidth"`
	Dir   string `validate:"omitempty,oneof=asc desc"`
	Limit int    `validate:"gte=0,lte=100000"`
}

// listOptions is a validated listQuery with defaults applied.
type listOptions struct {
	Column    models.SortColumn
	Direction models.SortDirection
	Limit     int
}

func parseListQuery(r *http.Request) (listOptions, error) {
	values := r.URL.Query()
	query := listQuery{
		Sort: strings.ToLower(strings.TrimSpace(values.Get("sort"))),
		Dir:  strings.ToLower(strings.TrimSpace(values.Get("dir"))),
	}
	if raw := strings.TrimSpace(values.Get("limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return listOptions{}, errInvalidQuery("limit (integer)", err)
		}
		query.Limit = limit
	}

	if err := validate.Struct(&query); err != nil {
		return listOptions{}, errInvalidQuery(validators.Describe(err), err)
	}

	opts := listOptions{Column: models.SortByBandwidth, Limit: query.Limit}
	if query.Sort != "" {
		opts.Column = models.SortColumn(query.Sort)
	}
	opts.Direction = opts.Column.DefaultDirection()
	if query.Dir != "" {
		opts.Direction = models.SortDirection(query.Dir)
	}
	return opts, nil
}
