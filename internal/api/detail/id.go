package detail

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cuongbtq/wallpaper-gallery/internal/api/domain"
)

// parseLeadingInt reads the integer prefix of s the way route ids have always
// been read: leading whitespace and a sign are allowed, anything after the
// digits is ignored. "42abc" and "42.0" both yield 42.
func parseLeadingInt(s string) (int64, error) {
	rest := strings.TrimLeft(s, " \t\n\r\f\v")

	sign := ""
	if rest != "" && (rest[0] == '+' || rest[0] == '-') {
		sign, rest = rest[:1], rest[1:]
	}

	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidImageID, s)
	}

	id, err := strconv.ParseInt(sign+rest[:end], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", domain.ErrInvalidImageID, err)
	}
	return id, nil
}
