package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"alice", "alice"},
		{"_", `\_`},
		{"%", `\%`},
		{"50%_off", `50\%\_off`},
		{`back\slash`, `back\\slash`},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, escapeLike(c.in), c.in)
	}
}
