// internal/nodeid/parser.go
package nodeid

import (
	"fmt"
	"regexp"
	"strings"
)

// segmentRegex matches a single segment of an FQN.
var segmentRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ValidSegment reports whether s can be used as a single FQN segment.
func ValidSegment(s string) bool {
	return s != "-" && segmentRegex.MatchString(s)
}

// Parse converts a dotted string like "analytics.staging.stg_orders" into an FQN.
func Parse(s string) (FQN, error) {
	if s == "" {
		return nil, fmt.Errorf("fqn cannot be empty")
	}

	parts := strings.Split(s, Separator)
	for i, part := range parts {
		if !ValidSegment(part) {
			return nil, fmt.Errorf("invalid segment %q at position %d in fqn %q", part, i, s)
		}
	}
	return FQN(parts), nil
}
