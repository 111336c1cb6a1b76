// Package util provides common utility functions.
package util

import (
	"strings"
	"sync"
)

// Ellipsis truncates s to maxLen runes, marking the cut with "...".
func Ellipsis(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[0:maxLen]) + "..."
}

var strBldrPool = &sync.Pool{
	New: func() any {
		sb := new(strings.Builder)
		sb.Grow(64)
		return sb
	},
}

// GetStringBuilder takes a string builder from the pool.
// Return it with [FreeStringBuilder] once the result is taken.
func GetStringBuilder() *strings.Builder {
	return strBldrPool.Get().(*strings.Builder) //nolint:forcetypeassert
}

// FreeStringBuilder resets sb and returns it to the pool.
func FreeStringBuilder(sb *strings.Builder) {
	sb.Reset()
	strBldrPool.Put(sb)
}
