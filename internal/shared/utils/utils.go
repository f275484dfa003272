package utils

import (
	"strconv"
)

// ParsePathID parses a positive integer path id. Only plain digits are
// accepted, so "+1", "-1" and "1.0" do not match any resource.
func ParsePathID(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
