package templates

import (
	"strconv"
	"strings"
)

func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// typedStrings renders "a0 T0, a1 T1, ..." style lists.
func typedStrings(prefix, typePrefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		n := strconv.Itoa(i)
		sb.WriteString(prefix)
		sb.WriteString(n)
		sb.WriteString(" ")
		sb.WriteString(typePrefix)
		sb.WriteString(n)
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// wrapComment renders text as a // comment block wrapped near 77 columns.
func wrapComment(text string) string {
	var sb strings.Builder
	line := "//"
	for _, word := range strings.Fields(text) {
		if len(line)+1+len(word) > 77 {
			sb.WriteString(line)
			sb.WriteString("\n")
			line = "//"
		}
		line += " " + word
	}
	sb.WriteString(line)
	sb.WriteString("\n")
	return sb.String()
}
