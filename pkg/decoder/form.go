package decoder

import (
	"maps"
	"net/url"
	"slices"
	"strings"

	"github.com/dusksociety/dsm/pkg/records"
)

// Values converts URL-encoded form data into an Input for kind.
//
// List fields of the schema collect every value, under either "tags" or
// "tags[]". Every other key takes its first value under its literal name.
// Keys the schema does not declare are passed through and ignored by
// validation.
func Values(kind records.Kind, form url.Values) (records.Input, error) {
	fields, err := records.Schema(kind)
	if err != nil {
		return nil, err
	}

	lists := make(map[string]bool)
	for _, f := range fields {
		if f.Shape == records.ShapeList {
			lists[f.Name] = true
		}
	}

	in := make(records.Input, len(form))
	for _, key := range slices.Sorted(maps.Keys(form)) {
		vals := form[key]
		if name := strings.TrimSuffix(key, "[]"); lists[name] {
			prev, _ := in[name].([]string)
			in[name] = append(prev, vals...)
			continue
		}
		if len(vals) > 0 {
			in[key] = vals[0]
		}
	}
	return in, nil
}
