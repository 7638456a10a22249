package chatbot

import (
	"strings"
	"testing"
	"time"
)

func TestGreeting(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "Good morning"},
		{11, "Good morning"},
		{12, "Good afternoon"},
		{16, "Good afternoon"},
		{17, "Good evening"},
		{23, "Good evening"},
	}

	for _, tt := range tests {
		if got := Greeting(tt.hour); got != tt.want {
			t.Errorf("Greeting(%d) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}

func TestRespond(t *testing.T) {
	noon := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		message string
		want    string
	}{
		{"What is HackConnect?", "all-in-one hackathon collaboration platform"},
		{"Is it free?", "free for participants"},
		{"How do I sign up?", "click on 'Sign Up'"},
		{"I want to find a teammate", "'Find Teammates' feature"},
		{"Can I join multiple teams?", "only for different hackathons"},
		{"How do I host a hackathon?", "'Host Hackathon' form"},
		{"I found a bug", "Report Issue"},
		{"goodbye", "Thank you for chatting"},
	}

	for _, tt := range tests {
		got := Respond(tt.message, noon)
		if !strings.Contains(got, tt.want) {
			t.Errorf("Respond(%q) = %q, want it to contain %q", tt.message, got, tt.want)
		}
	}
}

func TestRespond_GreetingUsesTimeOfDay(t *testing.T) {
	morning := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	got := Respond("hello", morning)
	if !strings.HasPrefix(got, "Good morning") {
		t.Errorf("expected morning greeting, got %q", got)
	}
}

func TestRespond_Default(t *testing.T) {
	noon := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
	got := Respond("quantum flux capacitors", noon)
	if !strings.Contains(got, "quantum flux capacitors") {
		t.Errorf("expected default reply to echo the question, got %q", got)
	}
	if !strings.Contains(got, "support@hackconnect.com") {
		t.Errorf("expected default reply to point at support, got %q", got)
	}
}
