package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// pathID parses the :id route parameter.
func pathID(c *gin.Context) (int, error) {
	return strconv.Atoi(c.Param("id"))
}

// intQuery parses an optional integer query parameter. Returns nil when the
// parameter is absent and an error when it is present but malformed.
func intQuery(c *gin.Context, key string) (*int, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
