package suggest

import "math/rand/v2"

// Questions are the prompts sent to the learning service.
var Questions = []string{
	"Set up JWT-based authentication with refresh tokens",
	"The mobile menu does not close when clicking outside it",
	"Refactor queries and add indexes to improve speed",
	"Evaluate whether GraphQL fits a new API",
	"How to export a PDF file on the frontend",
	"Best practices for code review",
}

// PickQuestion returns a random entry of Questions. A nil r uses the
// package-level generator.
func PickQuestion(r *rand.Rand) string {
	if r == nil {
		return Questions[rand.IntN(len(Questions))]
	}
	return Questions[r.IntN(len(Questions))]
}
