package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const confOverride = `
---
source: https://example.com/menu
timeout: 10s
prices:
  vegetarian: 5
  nonvegetarian: 6
  weeklyspecial: 7
  studentdiscount: 1
...
`

const confBadLocale = `
---
locale:
  weekdays: [Montag, Dienstag]
...
`

func TestLoad(t *testing.T) {
	cnf, errCnf := Load([]byte(confOverride))
	assert.NoError(t, errCnf)
	assert.Equal(t, "https://example.com/menu", cnf.Source)
	assert.Equal(t, Duration(10*time.Second), cnf.Timeout)
	assert.Equal(t, 5, cnf.Prices.Vegetarian)
	// untouched keys keep their defaults
	assert.Equal(t, "Menüplan", cnf.AnchorHeading)
	assert.Equal(t, "Montag", cnf.Locale.Weekdays[0])
	assert.Equal(t, 3, cnf.Locale.Months["maerz"])
}

func TestLoadEmpty(t *testing.T) {
	cnf, errCnf := Load(nil)
	assert.NoError(t, errCnf)
	assert.Equal(t, Default().Source, cnf.Source)
	assert.Len(t, cnf.Locale.Weekdays, 7)
}

func TestLoadBadLocale(t *testing.T) {
	_, errCnf := Load([]byte(confBadLocale))
	assert.Error(t, errCnf)
}
