package i18n_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/httplang/pkg/i18n"
	"github.com/dmitrymomot/httplang/pkg/locale"
)

func TestCatalogFormat(t *testing.T) {
	t.Parallel()

	catalog := newTestCatalog(t)
	en := locale.MustParse("en")

	t.Run("plain message", func(t *testing.T) {
		t.Parallel()
		got, err := catalog.Format(en, "greeting", nil)
		require.NoError(t, err)
		require.Equal(t, "Hello World", got)
	})

	t.Run("message with arguments", func(t *testing.T) {
		t.Parallel()
		got, err := catalog.Format(en, "farewell", i18n.M{"name": "Deadpool"})
		require.NoError(t, err)
		require.Equal(t, "Goodbye Deadpool", got)
	})

	t.Run("regional variant resolves via language fallback", func(t *testing.T) {
		t.Parallel()
		got, err := catalog.Format(locale.MustParse("en-GB"), "greeting", nil)
		require.NoError(t, err)
		require.Equal(t, "Hello World", got)
	})

	t.Run("number argument honors number options", func(t *testing.T) {
		t.Parallel()
		got, err := catalog.Format(en, "cart.total", i18n.M{"amount": 1234567.5})
		require.NoError(t, err)
		require.Equal(t, "Total: 1,234,567.5", got)
	})

	t.Run("unknown locale", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.Format(locale.MustParse("de"), "greeting", nil)
		require.ErrorIs(t, err, i18n.ErrLocaleNotFound)
	})

	t.Run("unknown key", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.Format(en, "missing", nil)
		require.ErrorIs(t, err, i18n.ErrKeyNotFound)
	})

	t.Run("key with only attributes has no standalone value", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.Format(en, "attribute", nil)
		require.ErrorIs(t, err, i18n.ErrNoStandaloneValue)
	})
}

func TestCatalogFormatAttr(t *testing.T) {
	t.Parallel()

	catalog := newTestCatalog(t)
	en := locale.MustParse("en")

	t.Run("existing attribute", func(t *testing.T) {
		t.Parallel()
		got, err := catalog.FormatAttr(en, "attribute", "placeholder", nil)
		require.NoError(t, err)
		require.Equal(t, "Email address", got)
	})

	t.Run("missing attribute on known key", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.FormatAttr(en, "attribute", "does_not_exist", nil)
		require.ErrorIs(t, err, i18n.ErrAttributeNotFound)
	})

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.FormatAttr(en, "missing", "placeholder", nil)
		require.ErrorIs(t, err, i18n.ErrKeyNotFound)
	})

	t.Run("empty attribute formats the standalone value", func(t *testing.T) {
		t.Parallel()
		got, err := catalog.FormatAttr(en, "greeting", "", nil)
		require.NoError(t, err)
		require.Equal(t, "Hello World", got)
	})
}

func TestCatalogMissingArgumentIsNonFatal(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	catalog, err := i18n.New(
		i18n.WithMessages(locale.MustParse("en"), map[string]any{
			"farewell": "Goodbye {{name}}",
		}),
		i18n.WithErrorLog(slog.New(slog.NewTextHandler(&buf, nil))),
	)
	require.NoError(t, err)

	got, err := catalog.Format(locale.MustParse("en"), "farewell", nil)
	require.NoError(t, err)
	require.Equal(t, "Goodbye {{name}}", got)
	require.Contains(t, buf.String(), "missing format argument")
	require.Contains(t, buf.String(), "name")
}

func TestCatalogArgumentValueWithBracesNotReported(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	catalog, err := i18n.New(
		i18n.WithMessages(locale.MustParse("en"), map[string]any{
			"farewell": "Goodbye {{name}}",
		}),
		i18n.WithErrorLog(slog.New(slog.NewTextHandler(&buf, nil))),
	)
	require.NoError(t, err)

	got, err := catalog.Format(locale.MustParse("en"), "farewell", i18n.M{"name": "{{literal}}"})
	require.NoError(t, err)
	require.Equal(t, "Goodbye {{literal}}", got)
	require.Empty(t, buf.String())
}

func TestNumberOptionsFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts i18n.NumberOptions
		n    float64
		want string
	}{
		{
			name: "default grouping",
			opts: i18n.DefaultNumberOptions(),
			n:    1234567.89,
			want: "1,234,567.89",
		},
		{
			name: "integer drops fraction",
			opts: i18n.DefaultNumberOptions(),
			n:    42,
			want: "42",
		},
		{
			name: "negative",
			opts: i18n.DefaultNumberOptions(),
			n:    -1234.5,
			want: "-1,234.5",
		},
		{
			name: "european separators",
			opts: i18n.NumberOptions{GroupingSeparator: ".", DecimalSeparator: ",", MaxFractionDigits: 2},
			n:    1234.56,
			want: "1.234,56",
		},
		{
			name: "min fraction digits pads zeros",
			opts: i18n.NumberOptions{DecimalSeparator: ".", MinFractionDigits: 2, MaxFractionDigits: 2},
			n:    5,
			want: "5.00",
		},
		{
			name: "max fraction digits rounds",
			opts: i18n.NumberOptions{DecimalSeparator: ".", MaxFractionDigits: 1},
			n:    2.75,
			want: "2.8",
		},
		{
			name: "negative rounding to zero drops the sign",
			opts: i18n.NumberOptions{DecimalSeparator: ".", MaxFractionDigits: 0},
			n:    -0.4,
			want: "0",
		},
		{
			name: "small negative keeps the sign",
			opts: i18n.DefaultNumberOptions(),
			n:    -0.004,
			want: "-0.004",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, tt.opts.Format(tt.n))
		})
	}
}
