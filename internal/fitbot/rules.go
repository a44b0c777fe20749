package fitbot

import (
	"math/rand/v2"
	"strings"
)

type Category string

const (
	General    Category = "general"
	Detailed   Category = "detailed"
	Workout    Category = "workout"
	Diet       Category = "diet"
	Supplement Category = "supplement"
	Weight     Category = "weight"
	Motivation Category = "motivation"
	Membership Category = "membership"
	Nutrition  Category = "nutrition"
)

// Order matters: the first category with a matching keyword wins.
var keywordRules = []struct {
	category Category
	keywords []string
}{
	{Detailed, []string{"detailed", "complete", "full"}},
	{Workout, []string{"workout", "exercise", "training", "routine"}},
	{Diet, []string{"diet", "nutrition", "meal", "food", "eat"}},
	{Supplement, []string{"supplement", "protein", "vitamin"}},
	{Weight, []string{"weight", "strength", "lift"}},
	{Motivation, []string{"motivation", "goal", "inspire"}},
	{Membership, []string{"membership", "plan", "subscription"}},
	{Nutrition, []string{"macro", "calorie"}},
}

func Classify(message string) Category {
	m := strings.ToLower(message)
	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(m, kw) {
				return rule.category
			}
		}
	}
	return General
}

// Rules answers from canned replies without any network access.
type Rules struct {
	// Intn picks a reply index in [0, n). Defaults to math/rand/v2.
	Intn func(n int) int
}

func (r Rules) Reply(message string) string {
	replies := cannedReplies[Classify(message)]
	if len(replies) == 0 {
		replies = cannedReplies[General]
	}
	intn := r.Intn
	if intn == nil {
		intn = rand.IntN
	}
	return replies[intn(len(replies))]
}
