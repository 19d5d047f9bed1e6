package postgres

import (
	"strings"
	"time"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE wildcards so a search term matches literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func nullTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return *t
}

func nullBool(b *bool) interface{} {
	if b == nil {
		return nil
	}
	return *b
}

func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
