package server

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const dateOnlyLayout = "2006-01-02"

func queryString(c *gin.Context, key string) string {
	return strings.TrimSpace(c.Query(key))
}

// parseBoolString reads the wire format used by submission forms, where
// booleans travel as the strings "true" and "false".
func parseBoolString(raw string) bool {
	value, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return value
}

func parsePageSize(c *gin.Context) int32 {
	raw := queryString(c, "page_size")
	if raw == "" {
		return 0
	}
	parsed, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || parsed < 0 {
		return 0
	}
	return int32(parsed)
}
