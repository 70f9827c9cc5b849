package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "Team lunch", want: "Team lunch"},
		{name: "script tag", input: `Lunch<script>alert('x')</script>`, want: "Lunch"},
		{name: "inline handler", input: `<b onclick="steal()">Party</b>`, want: "Party"},
		{name: "ampersand kept", input: "Q&A session", want: "Q&A session"},
		{name: "apostrophe kept", input: "Bob's party", want: "Bob's party"},
		{name: "surrounding space", input: "  Retro  ", want: "Retro"},
		{name: "comparison without tag", input: "a < b and c > d", want: "a < b and c > d"},
		{name: "tag-like text is markup", input: "a<b and c>d", want: "ad"},
		{name: "escaped markup is not smuggled", input: "Review &lt;div&gt; layout", want: "Review  layout"},
		{name: "double escaped markup", input: "&amp;lt;i&amp;gt;x", want: "x"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Text(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Text(got), "second pass must not change the result")
		})
	}
}
