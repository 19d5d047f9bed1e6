package postgres

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEscapeLike(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain term untouched", "milk", "milk"},
		{"underscore escaped", "a_c", `a\_c`},
		{"percent escaped", "50%", `50\%`},
		{"backslash escaped first", `a\%b`, `a\\\%b`},
		{"empty stays empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, escapeLike(tc.in))
		})
	}
}

func TestNullString(t *testing.T) {
	require.Nil(t, nullString(""))
	require.Equal(t, "milk", nullString("milk"))
}
