package webhook

import (
	"strings"
	"unicode"
)

var mockReplies = map[string][]string{
	"greetings": {
		"Hello! I'm your fitness assistant. How can I help you today?",
		"Hi there! I'm here to help with your fitness journey. What would you like to know?",
		"Welcome! I'm your fitness coach. Ask me anything about workouts, nutrition, or training tips!",
	},
	"workouts": {
		"For a solid session, try 3-4 sets of 8-12 reps with a moderate weight. Keep your form strict!",
		"Compound lifts like squats, deadlifts and bench press work several muscle groups at once.",
		"New to training? Start with push-ups, squats and planks and build strength gradually.",
	},
	"nutrition": {
		"For muscle gain, aim for 1.6-2.2g of protein per kg of body weight each day, and keep carbs in for energy.",
		"Stay hydrated! Drink water through the day, especially around your workouts.",
		"Build meals from lean protein, complex carbs and healthy fats. Eating around training helps performance.",
	},
	"motivation": {
		"Consistency beats perfection. Twenty minutes of exercise is better than none.",
		"Set small goals you can reach and celebrate every bit of progress.",
		"You're doing great! Every workout makes you stronger. Keep going!",
	},
	"default": {
		"Good question! I can help with workout plans, nutrition and motivation.",
		"Happy to help! Ask me about workouts, nutrition or training tips.",
		"Let me know if you need help with exercise routines, nutrition advice or staying motivated.",
	},
}

var (
	greetingWords   = []string{"hello", "hi", "hey"}
	workoutHints    = []string{"workout", "exercise", "training"}
	nutritionHints  = []string{"nutrition", "diet", "food", "protein"}
	motivationHints = []string{"motivation", "motivated", "tired", "hard"}
)

// MockCategory picks the canned reply group for a message. Greetings must be
// whole words so that "this" does not count as "hi".
func MockCategory(message string) string {
	lower := strings.ToLower(message)
	words := strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	switch {
	case containsWord(words, greetingWords):
		return "greetings"
	case containsAny(lower, workoutHints):
		return "workouts"
	case containsAny(lower, nutritionHints):
		return "nutrition"
	case containsAny(lower, motivationHints):
		return "motivation"
	default:
		return "default"
	}
}

// MockReply returns one canned reply for the message. pick chooses an index
// in [0, n); nil always picks the first reply.
func MockReply(message string, pick func(n int) int) string {
	replies := mockReplies[MockCategory(message)]
	i := 0
	if pick != nil {
		i = pick(len(replies))
	}
	if i < 0 || i >= len(replies) {
		i = 0
	}
	return replies[i]
}

func containsWord(words, targets []string) bool {
	for _, w := range words {
		for _, t := range targets {
			if w == t {
				return true
			}
		}
	}
	return false
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
