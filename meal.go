package mensafeed

import (
	"regexp"
	"strings"

	"github.com/tileh/mensafeed/vo"
)

var (
	reAllergens   = regexp.MustCompile(`\b([A-Z](?:,\s*[A-Z])*)\s*$`)
	reDietLabel   = regexp.MustCompile(`(?i)\((vegan/vegetarisch|vegan|vegetarisch)\)`)
	reParenthetic = regexp.MustCompile(`\s*\([^)]*\)`)
)

// ParseMealText turns one meal's raw display text into a structured
// record. The page appends allergen codes as a trailing run of single
// uppercase letters ("... A, C, G") and marks diet with a parenthetical
// ("(vegan)", "(vegetarisch)", "(vegan/vegetarisch)").
//
// Without a dietary label the meal is non-vegetarian and any
// parentheses stay part of the name. With one, every parenthetical is
// treated as decoration and removed. A dish name that happens to end in
// single capital letters is misread as allergens; the page format
// leaves no way around that.
func ParseMealText(raw string) vo.MealRecord {
	text := strings.TrimSpace(strings.ReplaceAll(raw, " ", " "))

	var allergens []string
	if loc := reAllergens.FindStringIndex(text); loc != nil {
		run := strings.Join(strings.Fields(text[loc[0]:loc[1]]), "")
		allergens = strings.Split(run, ",")
		text = strings.TrimSpace(text[:loc[0]])
	}

	category := vo.CategoryNonVegetarian
	if m := reDietLabel.FindStringSubmatch(text); m != nil {
		if strings.HasPrefix(strings.ToLower(m[1]), "vegan") {
			category = vo.CategoryVegan
		} else {
			category = vo.CategoryVegetarian
		}
		text = strings.TrimSpace(reParenthetic.ReplaceAllString(text, ""))
	}

	return vo.MealRecord{
		Name:      text,
		Category:  category,
		Allergens: allergens,
	}
}

// RenderMealText is the inverse of ParseMealText for names free of
// parentheses and trailing capital-letter runs. Used to round-trip
// records in tests and to rebuild display text for human-facing output.
func RenderMealText(meal vo.MealRecord) string {
	parts := []string{meal.Name}
	switch meal.Category {
	case vo.CategoryVegan:
		parts = append(parts, "(vegan)")
	case vo.CategoryVegetarian:
		parts = append(parts, "(vegetarisch)")
	}
	if len(meal.Allergens) > 0 {
		parts = append(parts, strings.Join(meal.Allergens, ", "))
	}
	return strings.Join(parts, " ")
}
