package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatProperOrder(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "registry surname-first format",
			input: "SMITH, John",
			want:  "JOHN SMITH",
		},
		{
			name:  "middle names preserved in order",
			input: "SMITH, John Andrew",
			want:  "JOHN ANDREW SMITH",
		},
		{
			name:  "honorific before surname",
			input: "DR SMITH, John",
			want:  "JOHN SMITH",
		},
		{
			name:  "honorific in forename segment",
			input: "SMITH, MR John",
			want:  "JOHN SMITH",
		},
		{
			name:  "natural order left unchanged",
			input: "John Smith",
			want:  "JOHN SMITH",
		},
		{
			name:  "no tokens besides honorific",
			input: "MR",
			want:  "",
		},
		{
			name:  "honorific-like surname is kept",
			input: "LORDE, Ella",
			want:  "ELLA LORDE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatProperOrder(tt.input))
		})
	}
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "sorted tokens",
			input: "SMITH, John",
			want:  "JOHN SMITH",
		},
		{
			name:  "prefix stripped",
			input: "MRS Jane DOE",
			want:  "DOE JANE",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeKey(tt.input))
		})
	}
}

// The key must not depend on whether the registry or the search index
// recorded the name.
func TestNormalizeKeyOrderInsensitive(t *testing.T) {
	pairs := [][2]string{
		{"SMITH, John", "John Smith"},
		{"DOE, Jane Mary", "Jane Mary Doe"},
		{"MR SMITH, John", "john smith"},
	}

	for _, pair := range pairs {
		assert.Equal(t, NormalizeKey(pair[0]), NormalizeKey(pair[1]),
			"keys for %q and %q should match", pair[0], pair[1])
	}
}

func TestExtractFirstLast(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantFirst string
		wantLast  string
	}{
		{
			name:      "surname-first registry format",
			input:     "SMITH, John",
			wantFirst: "SMITH",
			wantLast:  "JOHN",
		},
		{
			name:      "natural order",
			input:     "John Smith",
			wantFirst: "JOHN",
			wantLast:  "SMITH",
		},
		{
			name:      "middle tokens ignored",
			input:     "SMITH, John Andrew Michael",
			wantFirst: "SMITH",
			wantLast:  "MICHAEL",
		},
		{
			name:      "single token repeated",
			input:     "Madonna",
			wantFirst: "MADONNA",
			wantLast:  "MADONNA",
		},
		{
			name:      "honorific only",
			input:     "MR MRS",
			wantFirst: "",
			wantLast:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := ExtractFirstLast(tt.input)
			assert.Equal(t, tt.wantFirst, first)
			assert.Equal(t, tt.wantLast, last)
		})
	}
}
