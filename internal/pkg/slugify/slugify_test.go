package slugify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wishwell/wishwell-api/internal/pkg/slugify"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "apostrophe is stripped, punctuation collapses",
			input: "Sarah's Wedding!",
			want:  "sarahs-wedding",
		},
		{
			name:  "typographic apostrophe is stripped",
			input: "Sarah’s Wedding",
			want:  "sarahs-wedding",
		},
		{
			name:  "multiple spaces collapse into one hyphen",
			input: "Big   Birthday   Bash",
			want:  "big-birthday-bash",
		},
		{
			name:  "leading and trailing punctuation trimmed",
			input: "  --Housewarming?!  ",
			want:  "housewarming",
		},
		{
			name:  "digits survive",
			input: "Turning 30",
			want:  "turning-30",
		},
		{
			name:  "already a slug",
			input: "baby-shower",
			want:  "baby-shower",
		},
		{
			name:  "punctuation only",
			input: "!!!",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slugify.Make(tt.input))
		})
	}
}
