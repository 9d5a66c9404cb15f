package domain

// Difficulty controls generated grid size and word count.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

// HintTier limits how much of the next word a hint reveals.
type HintTier int

const (
	HintFirstLetter HintTier = iota // starting cell of the next word
	HintFirstWord                   // the whole next word and its cells
)
