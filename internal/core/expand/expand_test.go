package expand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpand(t *testing.T) {
	tests := []struct {
		name   string
		html   string
		tokens map[string]string
		want   string
	}{
		{
			name: "empty map returns input unchanged",
			html: `<img src="https://img/a.png">`,
			want: `<img src="https://img/a.png">`,
		},
		{
			name:   "nil map returns input unchanged",
			html:   "<html>Hi</html>",
			tokens: nil,
			want:   "<html>Hi</html>",
		},
		{
			name:   "single token replaced",
			html:   `<img src="https://img/a.png">`,
			tokens: map[string]string{"https://img/a.png": "local_a.png"},
			want:   `<img src="local_a.png">`,
		},
		{
			name:   "every occurrence replaced",
			html:   `<img src="a.png"><img src="a.png">`,
			tokens: map[string]string{"a.png": "b.png"},
			want:   `<img src="b.png"><img src="b.png">`,
		},
		{
			name:   "multiple distinct tokens",
			html:   `<img src="a.png"><link href="s.css">`,
			tokens: map[string]string{"a.png": "x.png", "s.css": "y.css"},
			want:   `<img src="x.png"><link href="y.css">`,
		},
		{
			name:   "unmapped tokens untouched",
			html:   `<img src="a.png"><img src="b.png">`,
			tokens: map[string]string{"a.png": "x.png"},
			want:   `<img src="x.png"><img src="b.png">`,
		},
		{
			name:   "token absent from html is a no-op",
			html:   "<html>Hi</html>",
			tokens: map[string]string{"a.png": "x.png"},
			want:   "<html>Hi</html>",
		},
		{
			name:   "empty html",
			html:   "",
			tokens: map[string]string{"a.png": "x.png"},
			want:   "",
		},
		{
			name:   "replacement value containing another token is not rescanned",
			html:   "start A end",
			tokens: map[string]string{"A": "B", "B": "C"},
			want:   "start B end",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Expand(tt.html, tt.tokens))
		})
	}
}
