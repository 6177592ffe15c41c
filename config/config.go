package config

import (
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// Duration lets yaml carry human-readable values like "30s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, errParse := time.ParseDuration(raw)
	if errParse != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, errParse)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Locale carries the language-specific tokens the extraction engine
// matches against. Keeping them here instead of package-level maps lets
// several venue configurations coexist in one process.
type Locale struct {
	// Weekdays in offset order, Monday first.
	Weekdays []string `yaml:"weekdays"`
	// Months maps a lowercase month name to its number 1..12.
	Months map[string]int `yaml:"months"`
}

// Labels are the category names written into the feed.
type Labels struct {
	NonVegetarian string `yaml:"nonvegetarian"`
	Vegetarian    string `yaml:"vegetarian"`
	Vegan         string `yaml:"vegan"`
}

// Prices are whole-currency amounts. Student price is the tier price
// minus the discount.
type Prices struct {
	Vegetarian      int `yaml:"vegetarian"`
	NonVegetarian   int `yaml:"nonvegetarian"`
	WeeklySpecial   int `yaml:"weeklyspecial"`
	StudentDiscount int `yaml:"studentdiscount"`
}

type Config struct {
	Source         string        `yaml:"source"`
	Agent          string        `yaml:"agent"`
	Timeout        Duration      `yaml:"timeout"`
	AnchorHeading  string        `yaml:"anchorheading"`
	SpecialHeading string        `yaml:"specialheading"`
	FeedFile       string        `yaml:"feedfile"`
	Locale         Locale        `yaml:"locale"`
	Labels         Labels        `yaml:"labels"`
	Prices         Prices        `yaml:"prices"`
}

// Default returns the configuration for the akbild cafeteria, the venue
// this scraper was written against.
func Default() *Config {
	return &Config{
		Source:         "https://www.akbild.ac.at/de/universitaet/services/menueplan",
		Agent:          "mensafeed/1.0 (+https://github.com/tileh/mensafeed)",
		Timeout:        Duration(30 * time.Second),
		AnchorHeading:  "Menüplan",
		SpecialHeading: "Wochenteller",
		FeedFile:       "feed/akbild.xml",
		Locale: Locale{
			Weekdays: []string{
				"Montag", "Dienstag", "Mittwoch", "Donnerstag",
				"Freitag", "Samstag", "Sonntag",
			},
			Months: map[string]int{
				"januar":    1,
				"februar":   2,
				"märz":      3,
				"maerz":     3,
				"april":     4,
				"mai":       5,
				"juni":      6,
				"juli":      7,
				"august":    8,
				"september": 9,
				"oktober":   10,
				"november":  11,
				"dezember":  12,
			},
		},
		Labels: Labels{
			NonVegetarian: "Nicht Vegetarisch",
			Vegetarian:    "Vegetarisch",
			Vegan:         "Vegan",
		},
		Prices: Prices{
			Vegetarian:      6,
			NonVegetarian:   7,
			WeeklySpecial:   8,
			StudentDiscount: 2,
		},
	}
}

// Load unmarshals yaml on top of the defaults, so a config file only
// needs to name what differs from the akbild setup.
func Load(yamlBytes []byte) (conf *Config, err error) {
	conf = Default()
	errUnmarshal := yaml.Unmarshal(yamlBytes, conf)
	if errUnmarshal != nil {
		return nil, errUnmarshal
	}
	if len(conf.Locale.Weekdays) != 7 {
		return nil, fmt.Errorf("locale needs 7 weekdays, got %d", len(conf.Locale.Weekdays))
	}
	return conf, nil
}

func Get(filename string) (conf *Config, err error) {
	yamlBytes, errRead := os.ReadFile(filename)
	if errRead != nil {
		return nil, errRead
	}
	return Load(yamlBytes)
}
