package catalog

// Default returns the built-in language catalog and compatibility table.
func Default() *Catalog {
	c, err := New(defaultCategories, defaultPairs)
	if err != nil {
		// The built-in tables are covered by tests; this is unreachable.
		panic(err)
	}
	return c
}

var defaultCategories = []Category{
	{
		Name: "Ancient Languages",
		Languages: []Language{
			{Name: "Latin", Hint: "Systematic word formation and scientific precision"},
			{Name: "Ancient Greek", Hint: "Complex abstract concepts and philosophical depth"},
			{Name: "Sanskrit", Hint: "Rich compound system and spiritual concepts"},
		},
	},
	{
		Name: "Modern Languages",
		Languages: []Language{
			{Name: "German", Hint: "Excellent compound formation and precision"},
			{Name: "Japanese", Hint: "Emotional nuance and harmonious sounds"},
			{Name: "Arabic", Hint: "Poetic roots and abstract concepts"},
			{Name: "Mandarin", Hint: "Concise forms and tonal expression"},
		},
	},
	{
		Name: "Historical Languages",
		Languages: []Language{
			{Name: "Old English", Hint: "Anglo-Saxon strength and earthiness"},
			{Name: "Old Norse", Hint: "Nature and mythological imagery"},
			{Name: "Classical Persian", Hint: "Poetic beauty and emotional depth"},
		},
	},
	{
		Name: "Fictional Languages",
		Languages: []Language{
			{Name: "Elvish (Quenya/Sindarin)", Hint: "Ethereal elegance and nature harmony"},
			{Name: "Klingon", Hint: "Honor-focused and direct expression"},
		},
	},
}

var defaultPairs = []Pair{
	{First: "Latin", Second: "Japanese", Description: "Precision meets emotion - great for technical feelings"},
	{First: "Ancient Greek", Second: "Old Norse", Description: "Philosophical depth with mythological power"},
	{First: "Sanskrit", Second: "Elvish (Quenya/Sindarin)", Description: "Spiritual depth meets natural harmony"},
	{First: "German", Second: "Arabic", Description: "Structural precision meets poetic flow"},
	{First: "Old English", Second: "Classical Persian", Description: "Earthiness meets mystical beauty"},
	{First: "Mandarin", Second: "Klingon", Description: "Subtle tones meet warrior directness"},
	{First: "Latin", Second: "German", Description: "Classical precision with modern compound power"},
	{First: "Japanese", Second: "Elvish (Quenya/Sindarin)", Description: "Emotional subtlety with ethereal beauty"},
	{First: "Sanskrit", Second: "Old Norse", Description: "Ancient wisdom meets primal force"},
	{First: "Arabic", Second: "Classical Persian", Description: "Rich poetic traditions combined"},
	{First: "Ancient Greek", Second: "Elvish (Quenya/Sindarin)", Description: "Philosophical concepts with mythical elegance"},
	{First: "Old English", Second: "Klingon", Description: "Germanic strength meets warrior culture"},
}

// ExamplePrompt is a ready-made emotion description with a recommended
// language pairing, shown in the UI as inspiration.
type ExamplePrompt struct {
	Description string   `json:"description"`
	Languages   []string `json:"languages"`
}

type ExampleGroup struct {
	Theme   string          `json:"theme"`
	Prompts []ExamplePrompt `json:"prompts"`
}

func ExamplePrompts() []ExampleGroup { return exampleGroups }

var exampleGroups = []ExampleGroup{
	{
		Theme: "Contemplative Moments",
		Prompts: []ExamplePrompt{
			{Description: "The peace of watching snow fall in complete silence", Languages: []string{"German", "Japanese"}},
			{Description: "The strange comfort of being alone in a vast library", Languages: []string{"Latin", "Old English"}},
			{Description: "The mysterious feeling of walking through morning mist", Languages: []string{"Old Norse", "Elvish (Quenya/Sindarin)"}},
		},
	},
	{
		Theme: "Social Emotions",
		Prompts: []ExamplePrompt{
			{Description: "The joy of finding someone who shares your obscure interest", Languages: []string{"Ancient Greek", "German"}},
			{Description: "The warmth of laughing at an old memory with a friend", Languages: []string{"Classical Persian", "Sanskrit"}},
			{Description: "The unique bond formed through sharing a meal in silence", Languages: []string{"Japanese", "Arabic"}},
		},
	},
	{
		Theme: "Nostalgic Sentiments",
		Prompts: []ExamplePrompt{
			{Description: "The bittersweet feeling of looking at old photographs", Languages: []string{"Japanese", "Classical Persian"}},
			{Description: "The melancholy of revisiting a place from your childhood", Languages: []string{"German", "Old English"}},
			{Description: "The strange nostalgia for a time you've never experienced", Languages: []string{"Ancient Greek", "Elvish (Quenya/Sindarin)"}},
		},
	},
	{
		Theme: "Modern Life",
		Prompts: []ExamplePrompt{
			{Description: "The satisfaction of closing all browser tabs after finishing a project", Languages: []string{"Latin", "Klingon"}},
			{Description: "The anxiety of hearing your phone buzz during a meeting", Languages: []string{"German", "Mandarin"}},
			{Description: "The relief of finding your keys exactly where you left them", Languages: []string{"Sanskrit", "Old Norse"}},
		},
	},
	{
		Theme: "Nature & Cosmos",
		Prompts: []ExamplePrompt{
			{Description: "The humbling feeling of stargazing on a clear night", Languages: []string{"Ancient Greek", "Elvish (Quenya/Sindarin)"}},
			{Description: "The primal joy of standing in a summer rainstorm", Languages: []string{"Old Norse", "Classical Persian"}},
			{Description: "The profound peace of watching leaves dance in the wind", Languages: []string{"Sanskrit", "Japanese"}},
		},
	},
	{
		Theme: "Creative Moments",
		Prompts: []ExamplePrompt{
			{Description: "The flow state when lost in creating something", Languages: []string{"Ancient Greek", "German"}},
			{Description: "The frustration of having the perfect word on the tip of your tongue", Languages: []string{"Latin", "Arabic"}},
			{Description: "The satisfaction of finally solving a complex puzzle", Languages: []string{"Sanskrit", "Klingon"}},
		},
	},
}
