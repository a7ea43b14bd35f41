package tutor

import (
	"context"
	"math/rand/v2"
)

// Package tutor provides the AI tutor behind the chat endpoint. The default
// responder picks from a fixed canned set; a real language-model client can
// be substituted behind the same contract.

// Prefix is prepended to every tutor reply.
const Prefix = "AI Tutor: "

// CannedResponses is the fixed set the default responder picks from.
var CannedResponses = []string{
	"That's a great question! Let me help you understand this concept better.",
	"Based on your study materials, I recommend focusing on the fundamentals first.",
	"Here's a simple way to think about this topic...",
	"Let's break this down into smaller, manageable parts.",
	"I can create a practice quiz for you on this topic. Would that be helpful?",
}

// Responder is the chat contract: (message, user id) -> response text.
type Responder interface {
	Reply(ctx context.Context, message, userID string) (string, error)
}

// Canned replies with a uniformly random member of CannedResponses.
// There is no seeding or determinism contract.
type Canned struct{}

// NewCanned constructs the canned responder.
func NewCanned() *Canned {
	return &Canned{}
}

func (*Canned) Reply(_ context.Context, _ string, _ string) (string, error) {
	return Prefix + CannedResponses[rand.IntN(len(CannedResponses))], nil
}
