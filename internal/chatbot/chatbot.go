package chatbot

import (
	"fmt"
	"strings"
	"time"
)

// Greeting returns a salutation for the given hour of day (0-23).
func Greeting(hour int) string {
	if hour < 12 {
		return "Good morning"
	}
	if hour < 17 {
		return "Good afternoon"
	}
	return "Good evening"
}

// Welcome is the assistant's opening message.
func Welcome(now time.Time) string {
	return fmt.Sprintf("%s! I'm HackConnect AI Assistant. How can I help you today?", Greeting(now.Hour()))
}

type rule struct {
	match func(string) bool
	reply string
}

func contains(subs ...string) func(string) bool {
	return func(m string) bool {
		for _, s := range subs {
			if strings.Contains(m, s) {
				return true
			}
		}
		return false
	}
}

func all(fns ...func(string) bool) func(string) bool {
	return func(m string) bool {
		for _, fn := range fns {
			if !fn(m) {
				return false
			}
		}
		return true
	}
}

var rules = []rule{
	{contains("what is hackconnect", "about hackconnect"),
		"HackConnect is an all-in-one hackathon collaboration platform that helps participants find teammates, discover hackathons, form teams, and collaborate efficiently."},
	{contains("who can use", "who is it for"),
		"HackConnect is designed for hackathon participants to find teammates and register, organizers to host and manage hackathons, and mentors & judges to guide teams and provide feedback."},
	{all(contains("why"), contains("better", "discord", "whatsapp")),
		"Unlike generic chat apps, HackConnect provides structured team matching (no spam messages), direct hackathon discovery & hosting, and all-in-one collaboration features including team formation and progress tracking."},
	{contains("free", "cost"),
		"Yes! HackConnect is free for participants and open hackathons. Premium hosting features are available for organizers."},
	{contains("create account", "sign up"),
		"To create an account, click on 'Sign Up', enter your name, email, and password, and verify your email. It's that simple!"},
	{contains("google", "github", "social login"),
		"Currently, we support email/password login. Social logins including Google and GitHub will be available soon!"},
	{all(contains("forgot", "reset"), contains("password")),
		"To reset your password, click on 'Forgot Password?' on the login page, enter your email, and follow the instructions sent to your inbox."},
	{all(contains("find"), contains("team", "teammate")),
		"Use our 'Find Teammates' feature to search by role (Frontend, Backend, UI/UX, AI/ML), skills, and interests. You can also create your own team and invite others!"},
	{contains("create team"),
		"To create a team, go to 'Create Team', name your group, set your requirements, and start inviting teammates. You can then collaborate using our built-in tools."},
	{contains("join multiple teams"),
		"Yes, you can join multiple teams, but only for different hackathons. This ensures fair participation and focused collaboration."},
	{contains("find hackathon"),
		"Go to 'Explore Hackathons' and filter by date, location, or theme (AI, Web Dev, Cybersecurity, etc.). You can register directly through our platform!"},
	{contains("host", "organize"),
		"To host a hackathon, use our 'Host Hackathon' form to specify title, date, theme, description, registration deadline, prizes, and judges. You'll get access to a dashboard to manage participants."},
	{contains("technology", "tech stack"),
		"HackConnect runs a Go API backed by SQLite, with a React frontend. This ensures security and real-time updates."},
	{contains("bug", "issue"),
		"Found a bug? Click 'Report Issue' in the menu and submit the details. Our team will investigate and fix it promptly!"},
	{contains("new feature", "coming soon"),
		"We're working on exciting features including AI-powered teammate recommendations, a mobile app version, and direct mentor access. Stay tuned!"},
	{contains("bye", "goodbye"),
		"Thank you for chatting! Have a great rest of your day. Feel free to return if you need more assistance!"},
}

// Respond picks the canned answer for a user message. Rules are checked in
// order, first match wins. Stateless by design.
func Respond(message string, now time.Time) string {
	lower := strings.ToLower(message)

	for _, r := range rules {
		if r.match(lower) {
			return r.reply
		}
	}

	if contains("hi", "hello", "hey")(lower) {
		return fmt.Sprintf("%s! How may I assist you with HackConnect today?", Greeting(now.Hour()))
	}

	return "I understand your question about '" + message + "'. For more specific assistance, you can also check our documentation or contact support@hackconnect.com"
}
