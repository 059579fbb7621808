package menu

import (
	"github.com/AvengeMedia/dankwizard/internal/errdefs"
)

// Options is the immutable, ordered list of labels a menu offers.
// Indexes are 1-based to line up with highlight values.
type Options struct {
	labels []string
}

func NewOptions(labels []string) (*Options, error) {
	if len(labels) == 0 {
		return nil, errdefs.NewCustomError(errdefs.ErrTypeEmptyMenu, "menu must offer at least one option")
	}
	return &Options{labels: append([]string(nil), labels...)}, nil
}

// Labels returns a copy of the option labels in display order.
func (o *Options) Labels() []string {
	return append([]string(nil), o.labels...)
}

func (o *Options) Len() int {
	return len(o.labels)
}

// Label returns the label at the 1-based index, or "" when out of range.
func (o *Options) Label(index int) string {
	if index < 1 || index > len(o.labels) {
		return ""
	}
	return o.labels[index-1]
}
