package generation

// Difficulty is one of five bands, 1 (beginner) through 5 (expert).
type Difficulty int

const (
	MinDifficulty     Difficulty = 1
	MaxDifficulty     Difficulty = 5
	DefaultDifficulty Difficulty = 3
)

// NewDifficulty maps an arbitrary integer onto a band. Values outside [1,5]
// resolve to DefaultDifficulty rather than an error.
func NewDifficulty(level int) Difficulty {
	d := Difficulty(level)
	if !d.Valid() {
		return DefaultDifficulty
	}
	return d
}

// Valid reports whether d is one of the five defined bands.
func (d Difficulty) Valid() bool {
	return d >= MinDifficulty && d <= MaxDifficulty
}

var lessonPhrases = map[Difficulty]string{
	1: "beginner-friendly with simple explanations and basic concepts",
	2: "elementary level with clear examples and step-by-step explanations",
	3: "intermediate level with detailed explanations and practical applications",
	4: "advanced level with complex concepts and in-depth analysis",
	5: "expert level with sophisticated analysis and advanced applications",
}

var quizPhrases = map[Difficulty]string{
	1: "very easy with basic concepts",
	2: "easy with simple applications",
	3: "moderate with practical examples",
	4: "challenging with complex scenarios",
	5: "very difficult with advanced concepts",
}

// LessonPhrase describes the band for lesson prompts.
func (d Difficulty) LessonPhrase() string {
	if p, ok := lessonPhrases[d]; ok {
		return p
	}
	return lessonPhrases[DefaultDifficulty]
}

// QuizPhrase describes the band for quiz prompts.
func (d Difficulty) QuizPhrase() string {
	if p, ok := quizPhrases[d]; ok {
		return p
	}
	return quizPhrases[DefaultDifficulty]
}
