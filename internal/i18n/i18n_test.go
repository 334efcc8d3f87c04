package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestResolve_FallsBackToEnglish(t *testing.T) {
	for _, code := range []string{"", "  ", "xx", "not a tag"} {
		l := Resolve(code)
		assert.Equal(t, "en", l.Code(), "code %q", code)
		assert.Equal(t, language.English, l.Tag(), "code %q", code)
	}
}

func TestResolve_MatchesRegionalVariants(t *testing.T) {
	assert.Equal(t, "id", Resolve(" ID ").Code())
	assert.Equal(t, "id", Resolve("id-ID").Code())
	assert.Equal(t, "en", Resolve("en-GB").Code())
}

func TestT_TranslatesAndFormats(t *testing.T) {
	en := Resolve("en")
	id := Resolve("id")

	assert.Equal(t, "Products", en.T(KeyProducts))
	assert.Equal(t, "Produk", id.T(KeyProducts))
	assert.Equal(t, "Showing 11 to 20 of 42 results", en.T(KeyShowing, 11, 20, 42))
	assert.Equal(t, "Menampilkan 11 sampai 20 dari 42 hasil", id.T(KeyShowing, 11, 20, 42))
}

func TestCatalog_EveryKeyTranslated(t *testing.T) {
	en := messages["en"]
	for _, code := range Supported() {
		table, ok := messages[code]
		require.True(t, ok, "no messages for %s", code)
		for key := range en {
			_, ok := table[key]
			assert.True(t, ok, "%s missing %s", code, key)
		}
	}
}

func TestNext_Cycles(t *testing.T) {
	assert.Equal(t, "id", Next("en"))
	assert.Equal(t, "en", Next("id"))
	assert.Equal(t, "id", Next("bogus"))
}

func TestZeroLocale(t *testing.T) {
	var l Locale
	assert.Equal(t, "en", l.Code())
	assert.Equal(t, "No data", l.T(KeyNoData))
	assert.Equal(t, "42", l.Number(42))
}
