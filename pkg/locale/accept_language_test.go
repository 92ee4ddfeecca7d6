package locale_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/httplang/pkg/locale"
)

func TestParseAcceptLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		header    string
		supported []string
		want      string
		wantOK    bool
	}{
		{
			name:      "single supported value",
			header:    "en",
			supported: []string{"en", "ja"},
			want:      "en",
			wantOK:    true,
		},
		{
			name:      "single regional value matches base language",
			header:    "en-US",
			supported: []string{"en", "ja"},
			want:      "en-US",
			wantOK:    true,
		},
		{
			name:      "first supported preference wins in header order",
			header:    "de,en-US;q=0.5",
			supported: []string{"en", "ja"},
			want:      "en-US",
			wantOK:    true,
		},
		{
			name:      "quality values are stripped not ranked",
			header:    "en;q=0.1,ja;q=0.9",
			supported: []string{"en", "ja"},
			want:      "en",
			wantOK:    true,
		},
		{
			name:      "malformed segment does not abort the scan",
			header:    "!!!,ja",
			supported: []string{"en", "ja"},
			want:      "ja",
			wantOK:    true,
		},
		{
			name:      "wildcard is skipped",
			header:    "*,ja;q=0.5",
			supported: []string{"en", "ja"},
			want:      "ja",
			wantOK:    true,
		},
		{
			name:      "wildcard only",
			header:    "*",
			supported: []string{"en", "ja"},
			wantOK:    false,
		},
		{
			name:      "empty header",
			header:    "",
			supported: []string{"en", "ja"},
			wantOK:    false,
		},
		{
			name:      "whitespace only header",
			header:    "   ",
			supported: []string{"en", "ja"},
			wantOK:    false,
		},
		{
			name:      "no supported tag in header",
			header:    "de,fr;q=0.8",
			supported: []string{"en", "ja"},
			wantOK:    false,
		},
		{
			name:      "whitespace around segments",
			header:    " de , ja ; q=0.9 ",
			supported: []string{"en", "ja"},
			want:      "ja",
			wantOK:    true,
		},
		{
			name:      "empty segments are discarded",
			header:    ",,ja",
			supported: []string{"en", "ja"},
			want:      "ja",
			wantOK:    true,
		},
		{
			name:      "oversized header is truncated safely",
			header:    strings.Repeat("de,", 2000) + "ja",
			supported: []string{"en", "ja"},
			wantOK:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := locale.ParseAcceptLanguage(tt.header, supportedSet(tt.supported...))
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				require.Equal(t, tt.want, got.String())
			}
		})
	}
}
