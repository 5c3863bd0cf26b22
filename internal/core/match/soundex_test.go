package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSoundexClassicVectors(t *testing.T) {
	cases := map[string]string{
		"Robert":   "R163",
		"Rupert":   "R163",
		"Ashcraft": "A261", // H does not separate the two 2-codes
		"Ashcroft": "A261",
		"Tymczak":  "T522",
		"Pfister":  "P236",
		"Jackson":  "J250",
		"Honeyman": "H555",
		"Jon":      "J500",
		"John":     "J500",
	}

	for name, want := range cases {
		assert.Equal(t, want, Soundex(name), "Soundex(%q)", name)
	}
}

func TestSoundexEdgeCases(t *testing.T) {
	assert.Equal(t, "", Soundex(""))
	assert.Equal(t, "", Soundex("123 !?"))
	assert.Equal(t, "A000", Soundex("A"))
	// Non-letter characters are skipped, case does not matter.
	assert.Equal(t, Soundex("O'Brien"), Soundex("obrien"))
	assert.Equal(t, Soundex("SMITH"), Soundex("smith"))
}
