package catalog

// legacy is the earlier yes/no generation. Ids overlap with the current
// catalog where the question survived the rewrite (ids are never reused for
// a different question), so legacy rows still merge against the current
// catalog. Kept for the catalog endpoint and for scoring historical exports.
var legacy = []Question{
	{ID: 1, Text: "A character's sexual orientation is central to the plot", Weight: 0.8, Category: CategoryGenderSexuality},
	{ID: 2, Text: "An established character was gender-swapped", Weight: 0.7, Category: CategoryGenderSexuality},
	{ID: 3, Text: "Romantic subplots exist solely to showcase diverse relationships", Weight: 0.5, Category: CategoryGenderSexuality},
	{ID: 6, Text: "An established character was race-swapped", Weight: 0.7, Category: CategoryRaceIdentity},
	{ID: 7, Text: "Casting choices appear driven by quota rather than character", Weight: 0.6, Category: CategoryRaceIdentity},
	{ID: 8, Text: "A historical setting's demographics were altered", Weight: 0.8, Category: CategoryRaceIdentity},
	{ID: 10, Text: "Dialogue lectures the audience about privilege", Weight: 0.8, Category: CategoryRaceIdentity},
	{ID: 11, Text: "The story pauses for an overt political monologue", Weight: 0.9, Category: CategoryPolitics},
	{ID: 12, Text: "Current political slogans appear verbatim", Weight: 0.8, Category: CategoryPolitics},
	{ID: 13, Text: "One side of a contemporary political issue is strawmanned", Weight: 0.7, Category: CategoryPolitics},
	{ID: 16, Text: "Religious believers are portrayed as hypocrites or extremists", Weight: 0.7, Category: CategoryReligion},
	{ID: 18, Text: "The nuclear family is depicted as oppressive", Weight: 0.6, Category: CategoryReligion},
	{ID: 19, Text: "A preachy message overwhelms the entertainment value", Weight: 1.0, Category: CategorySocial},
	{ID: 20, Text: "Plot logic is sacrificed to make a social point", Weight: 0.9, Category: CategorySocial},
	{ID: 21, Text: "Male characters are made incompetent so female characters can excel", Weight: 0.8, Category: CategorySocial},
}

// LegacyQuestions returns the yes/no-generation catalog.
func LegacyQuestions() []Question {
	out := make([]Question, len(legacy))
	copy(out, legacy)
	return out
}
