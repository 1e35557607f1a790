package assistant

import (
	"errors"
	"fmt"
	"strings"
)

type Category string

const (
	CategoryHomework Category = "homework"
	CategoryMental   Category = "mental"
	CategoryGames    Category = "games"
	CategoryGeneral  Category = "general"
)

var ErrUnknownCategory = errors.New("unknown assistant category")

type CategoryInfo struct {
	ID          Category
	Name        string
	Suggestions []string
}

// Categories is the fixed set offered by the chat view, in display order.
var Categories = []CategoryInfo{
	{
		ID:   CategoryHomework,
		Name: "Homework Help",
		Suggestions: []string{
			"Can you help me understand photosynthesis?",
			"I'm stuck on this math problem: 3x + 5 = 17",
			"How do I write a persuasive essay?",
		},
	},
	{
		ID:   CategoryMental,
		Name: "Mental Health",
		Suggestions: []string{
			"I'm feeling stressed about exams",
			"How can I improve my focus while studying?",
			"Tips for balancing school and social life",
		},
	},
	{
		ID:   CategoryGames,
		Name: "Word Games",
		Suggestions: []string{
			"Let's play hangman",
			"Can we do a word association game?",
			"Tell me a riddle to solve",
		},
	},
	{
		ID:   CategoryGeneral,
		Name: "General Chat",
		Suggestions: []string{
			"Tell me something interesting about space",
			"What books would you recommend for a 10th grader?",
			"How can AI help with education?",
		},
	},
}

// ParseCategory maps a label to a Category. Empty input means general.
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return CategoryGeneral, nil
	}
	for _, c := range Categories {
		if string(c.ID) == s {
			return c.ID, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

func SuggestionsFor(c Category) []string {
	for _, info := range Categories {
		if info.ID == c {
			return append([]string(nil), info.Suggestions...)
		}
	}
	return nil
}

var tones = []string{"conversational", "natural", "friendly", "casual", "thoughtful"}

// ToneFor picks the tone label for the given turn number. It only varies the
// wording of replies.
func ToneFor(turn int) string {
	if turn < 0 {
		turn = -turn
	}
	return tones[turn%len(tones)]
}

// Instruction builds the framing sent as chat context for one turn.
func Instruction(c Category, turn int) string {
	tone := ToneFor(turn)
	switch c {
	case CategoryHomework:
		return fmt.Sprintf("You are having a natural conversation with a student who needs help with homework. "+
			"Respond in a %s, helpful way like a real tutor would. Avoid sounding robotic or templated.", tone)
	case CategoryMental:
		return fmt.Sprintf("You're having a supportive conversation with a student about mental wellbeing. "+
			"Be %s and genuine, as if you're a real person having a chat. Show empathy and understanding.", tone)
	case CategoryGames:
		return fmt.Sprintf("You're playing a word game with a friend. Keep the conversation %s and playful. "+
			"Respond like a real person would in a casual game, with natural language and occasional humor.", tone)
	default:
		return fmt.Sprintf("This is a natural, flowing conversation between friends. Respond in a %s, "+
			"casual way without sounding like an AI. Use conversational language, contractions, and a natural speaking style.", tone)
	}
}
