package structure

import (
	"testing"

	"github.com/pdiddy/reflow-engine/pkg/types"
)

func TestClassifyListItem(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *types.ListItem
	}{
		{
			name: "dash bullet",
			in:   "- first point",
			want: &types.ListItem{Level: 1, Marker: "-", Text: "first point"},
		},
		{
			name: "asterisk bullet",
			in:   "* another point",
			want: &types.ListItem{Level: 1, Marker: "-", Text: "another point"},
		},
		{
			name: "unicode bullet normalized",
			in:   "• round bullet",
			want: &types.ListItem{Level: 1, Marker: "-", Text: "round bullet"},
		},
		{
			name: "nested bullet two spaces",
			in:   "  ◦ nested point",
			want: &types.ListItem{Level: 2, Marker: "-", Text: "nested point"},
		},
		{
			name: "nested bullet four spaces",
			in:   "    ‣ deeper point",
			want: &types.ListItem{Level: 3, Marker: "-", Text: "deeper point"},
		},
		{
			name: "tab indented bullet",
			in:   "\t- tabbed point",
			want: &types.ListItem{Level: 2, Marker: "-", Text: "tabbed point"},
		},
		{
			name: "numbered with period keeps marker",
			in:   "3. third step",
			want: &types.ListItem{Level: 1, Numbered: true, Marker: "3.", Text: "third step"},
		},
		{
			name: "numbered with parenthesis keeps marker",
			in:   "12) twelfth step",
			want: &types.ListItem{Level: 1, Numbered: true, Marker: "12)", Text: "twelfth step"},
		},
		{name: "plain text", in: "no marker here", want: nil},
		{name: "hyphen without space", in: "-not a bullet", want: nil},
		{name: "empty", in: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyListItem(tt.in)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("ClassifyListItem(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("ClassifyListItem(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}
