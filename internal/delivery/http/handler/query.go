package handler

import (
	"net/http"
	"strconv"
	"strings"
)

// queryPage reads the page query parameter; anything unusable means page 1.
func queryPage(r *http.Request) int {
	page, err := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get("page")))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func queryInt64(r *http.Request, key string) *int64 {
	value, err := strconv.ParseInt(strings.TrimSpace(r.URL.Query().Get(key)), 10, 64)
	if err != nil {
		return nil
	}
	return &value
}
