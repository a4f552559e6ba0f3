package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslator(t *testing.T) {
	nl := New("nl_NL")
	assert.Equal(t, "nl", nl.Lang())
	assert.Equal(t, "Artiesten", nl.T("nav.artists"))
	assert.Equal(t, "Wacht nog 2 seconde(n)...", nl.T("device.waitSeconds", "n", "2"))
	assert.Equal(t, `Weet je zeker dat je "Buds" wilt vergeten?`, nl.T("modal.forgetQuestion", "name", "Buds"))

	en := New("fr")
	assert.Equal(t, "en", en.Lang())
	assert.Equal(t, "Artists", en.T("nav.artists"))
	assert.Equal(t, "no.such.key", en.T("no.such.key"))

	var zero Translator
	assert.Equal(t, "No music", zero.T("panel.noMusic"))
}

func TestCatalogsHaveSameKeys(t *testing.T) {
	for key := range english {
		_, ok := dutch[key]
		assert.True(t, ok, "dutch missing %q", key)
	}
	for key := range dutch {
		_, ok := english[key]
		assert.True(t, ok, "english missing %q", key)
	}
	assert.Equal(t, []string{"en", "nl"}, Languages())
	assert.True(t, Supported(" NL "))
	assert.False(t, Supported("de"))
}
