package handlers

import (
	"context"
	"time"

	"github.com/RUTHVIKRAO04/HackConnect/internal/chatbot"
)

type ChatRequest struct {
	Body struct {
		Message string `json:"message" doc:"User message" required:"true"`
	}
}

type ChatResponse struct {
	Body struct {
		Reply string `json:"reply"`
	}
}

// HandleChat answers with the assistant's canned responses. Stateless; each
// message is answered on its own.
func HandleChat(ctx context.Context, input *ChatRequest) (*ChatResponse, error) {
	res := &ChatResponse{}
	res.Body.Reply = chatbot.Respond(input.Body.Message, time.Now())
	return res, nil
}
