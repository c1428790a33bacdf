package handler

import (
	"fmt"
	"strconv"
)

// parseIntParam parses an integer parameter and returns a meaningful error
func parseIntParam(param string, paramName string) (int64, error) {
	val, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: must be an integer", paramName)
	}
	return val, nil
}
