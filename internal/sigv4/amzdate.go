package sigv4

import (
	"fmt"
	"time"
)

// ISO8601Format is the x-amz-date / X-Amz-Date timestamp layout.
const ISO8601Format = "20060102T150405Z"

// dateFormat is the YYYYMMDD portion used in the credential scope.
const dateFormat = "20060102"

// AmzDate is a parsed x-amz-date timestamp, kept alongside its two
// rendered forms since both appear repeatedly while signing.
type AmzDate struct {
	t time.Time
}

// ParseAmzDate parses an ISO-8601-basic timestamp such as
// "20130524T000000Z".
func ParseAmzDate(s string) (AmzDate, error) {
	t, err := time.Parse(ISO8601Format, s)
	if err != nil {
		return AmzDate{}, fmt.Errorf("sigv4: invalid x-amz-date %q: %w", s, err)
	}
	return AmzDate{t: t}, nil
}

// FmtISO8601 renders the full timestamp, e.g. "20130524T000000Z".
func (d AmzDate) FmtISO8601() string { return d.t.Format(ISO8601Format) }

// FmtDate renders the date-only portion, e.g. "20130524".
func (d AmzDate) FmtDate() string { return d.t.Format(dateFormat) }

// Time returns the underlying time.Time in UTC.
func (d AmzDate) Time() time.Time { return d.t.UTC() }
