// Package catalog holds the static, versioned question catalogs. The catalog
// is the sole source of truth for question metadata: stored assessments only
// keep (id, answer) pairs and re-join everything else from here at read time.
package catalog

// Question categories. Closed set; presentation-only metadata (icons, colors)
// is joined by id in the view layer and never lives here.
const (
	CategoryGenderSexuality = "Gender & Sexuality"
	CategoryRaceIdentity    = "Race & Identity"
	CategoryPolitics        = "Political Messaging"
	CategoryReligion        = "Religion & Tradition"
	CategorySocial          = "Social Commentary"
)

// Question is one catalog entry. Ids are stable across catalog revisions and
// never reused or renumbered once published; weight is fixed per id within a
// generation.
type Question struct {
	ID       int     `json:"id"`
	Text     string  `json:"text"`
	Weight   float64 `json:"weight"`
	Category string  `json:"category"`
	// IsAnti flags questions phrased from an "anti-" framing. Cosmetic for
	// the form renderer; does not change scoring sign.
	IsAnti bool `json:"is_anti,omitempty"`
}

// current is the four-point agreement-scale generation.
var current = []Question{
	{ID: 1, Text: "A character's sexual orientation is central to the plot without serving the story", Weight: 0.8, Category: CategoryGenderSexuality},
	{ID: 2, Text: "An established character was gender-swapped from the source material", Weight: 0.7, Category: CategoryGenderSexuality},
	{ID: 3, Text: "Romantic subplots exist solely to showcase diverse relationships", Weight: 0.5, Category: CategoryGenderSexuality},
	{ID: 4, Text: "Traditional masculinity is portrayed as inherently harmful", Weight: 0.7, Category: CategoryGenderSexuality},
	{ID: 5, Text: "Gender identity themes are introduced without narrative purpose", Weight: 0.6, Category: CategoryGenderSexuality},
	{ID: 6, Text: "An established character was race-swapped from the source material", Weight: 0.7, Category: CategoryRaceIdentity},
	{ID: 7, Text: "Casting choices appear driven by quota rather than character", Weight: 0.6, Category: CategoryRaceIdentity},
	{ID: 8, Text: "A historical setting's demographics were altered for modern sensibilities", Weight: 0.8, Category: CategoryRaceIdentity},
	{ID: 9, Text: "Characters of one race are uniformly portrayed as villains or fools", Weight: 0.9, Category: CategoryRaceIdentity},
	{ID: 10, Text: "Dialogue lectures the audience about privilege", Weight: 0.8, Category: CategoryRaceIdentity},
	{ID: 11, Text: "The story pauses for an overt political monologue", Weight: 0.9, Category: CategoryPolitics},
	{ID: 12, Text: "Current political slogans or hashtags appear verbatim", Weight: 0.8, Category: CategoryPolitics},
	{ID: 13, Text: "One side of a contemporary political issue is strawmanned", Weight: 0.7, Category: CategoryPolitics},
	{ID: 14, Text: "Corporations or institutions are villainized solely for ideological effect", Weight: 0.5, Category: CategoryPolitics},
	{ID: 15, Text: "The writing punishes characters for holding traditional views", Weight: 0.6, Category: CategoryPolitics},
	{ID: 16, Text: "Religious believers are portrayed as hypocrites or extremists", Weight: 0.7, Category: CategoryReligion},
	{ID: 17, Text: "Faith traditions are mocked while others are treated reverently", Weight: 0.7, Category: CategoryReligion},
	{ID: 18, Text: "The nuclear family is depicted as oppressive or obsolete", Weight: 0.6, Category: CategoryReligion},
	{ID: 19, Text: "A preachy message overwhelms the entertainment value", Weight: 1.0, Category: CategorySocial},
	{ID: 20, Text: "Plot logic is sacrificed to make a social point", Weight: 0.9, Category: CategorySocial},
	{ID: 21, Text: "Male characters are made incompetent so female characters can excel", Weight: 0.8, Category: CategorySocial},
	{ID: 22, Text: "The marketing leaned on controversy about the show's politics", Weight: 0.4, Category: CategorySocial},
	{ID: 23, Text: "The show openly mocks its own audience for disagreeing", Weight: 0.9, Category: CategorySocial},
	{ID: 24, Text: "The show pushes back against ideological messaging in its genre", Weight: 0.5, Category: CategorySocial, IsAnti: true},
	{ID: 25, Text: "Traditional values are portrayed positively without irony", Weight: 0.4, Category: CategoryReligion, IsAnti: true},
}

// Questions returns the current-generation catalog. Callers get a copy; the
// backing data is immutable at runtime.
func Questions() []Question {
	out := make([]Question, len(current))
	copy(out, current)
	return out
}

// Lookup finds a current-generation question by id.
func Lookup(id int) (Question, bool) {
	return lookup(current, id)
}

// Categories returns the closed category set in display order.
func Categories() []string {
	return []string{
		CategoryGenderSexuality,
		CategoryRaceIdentity,
		CategoryPolitics,
		CategoryReligion,
		CategorySocial,
	}
}

func lookup(qs []Question, id int) (Question, bool) {
	for _, q := range qs {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
