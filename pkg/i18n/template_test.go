package i18n_test

import (
	"html/template"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTemplateFunc(t *testing.T) {
	t.Parallel()

	catalog := newTestCatalog(t)
	fn := catalog.TemplateFunc()

	t.Run("lang and key", func(t *testing.T) {
		t.Parallel()
		got, err := fn("lang", "en", "key", "greeting")
		require.NoError(t, err)
		require.Equal(t, "Hello World", got)
	})

	t.Run("regional lang falls back to base language", func(t *testing.T) {
		t.Parallel()
		got, err := fn("lang", "en-US", "key", "greeting")
		require.NoError(t, err)
		require.Equal(t, "Hello World", got)
	})

	t.Run("string argument passes through", func(t *testing.T) {
		t.Parallel()
		got, err := fn("lang", "en", "key", "farewell", "name", "Deadpool")
		require.NoError(t, err)
		require.Equal(t, "Goodbye Deadpool", got)
	})

	t.Run("number argument is formatted", func(t *testing.T) {
		t.Parallel()
		got, err := fn("lang", "en", "key", "cart.total", "amount", 1234.5)
		require.NoError(t, err)
		require.Equal(t, "Total: 1,234.5", got)
	})

	t.Run("nil argument is absent", func(t *testing.T) {
		t.Parallel()
		got, err := fn("lang", "en", "key", "farewell", "name", nil)
		require.NoError(t, err)
		require.Equal(t, "Goodbye {{name}}", got)
	})

	t.Run("attribute argument", func(t *testing.T) {
		t.Parallel()
		got, err := fn("lang", "en", "key", "attribute", "attribute", "placeholder")
		require.NoError(t, err)
		require.Equal(t, "Email address", got)
	})

	t.Run("missing lang", func(t *testing.T) {
		t.Parallel()
		_, err := fn("key", "greeting")
		require.Error(t, err)
	})

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()
		_, err := fn("lang", "en")
		require.Error(t, err)
	})

	t.Run("invalid lang", func(t *testing.T) {
		t.Parallel()
		_, err := fn("lang", "***", "key", "greeting")
		require.Error(t, err)
	})

	t.Run("odd argument count", func(t *testing.T) {
		t.Parallel()
		_, err := fn("lang", "en", "key")
		require.Error(t, err)
	})

	t.Run("non-string argument name", func(t *testing.T) {
		t.Parallel()
		_, err := fn(42, "en")
		require.Error(t, err)
	})
}

func TestTemplateFuncInTemplate(t *testing.T) {
	t.Parallel()

	catalog := newTestCatalog(t)

	tmpl, err := template.New("page").Funcs(template.FuncMap{
		"t": catalog.TemplateFunc(),
	}).Parse(`{{ t "lang" .Lang "key" "farewell" "name" .Name }}`)
	require.NoError(t, err)

	var sb strings.Builder
	err = tmpl.Execute(&sb, map[string]string{"Lang": "en", "Name": "Deadpool"})
	require.NoError(t, err)
	require.Equal(t, "Goodbye Deadpool", sb.String())

	// ja has no farewell message; the catalog error surfaces through Execute.
	sb.Reset()
	err = tmpl.Execute(&sb, map[string]string{"Lang": "ja", "Name": "太郎"})
	require.Error(t, err)
}
