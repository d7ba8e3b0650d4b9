// Package ids generates sortable unique identifiers for job runs and other
// server-generated records.
package ids

import "github.com/segmentio/ksuid"

func New() string {
	return ksuid.New().String()
}
