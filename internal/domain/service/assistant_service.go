package service

import (
	"fmt"
	"strings"

	"ideanest/internal/domain/entity"
)

// Intent is the classified purpose of a chat message. It determines which
// canned response template the assistant uses.
type Intent int

const (
	IntentCodeRequest Intent = iota
	IntentFolderStructure
	IntentArchitecture
	IntentModules
	IntentInterview
	IntentDefault
)

// intentRule pairs a keyword set with the intent it signals. Rules are
// evaluated in declaration order; the first match wins.
type intentRule struct {
	intent   Intent
	keywords []string
}

var intentRules = []intentRule{
	{IntentCodeRequest, []string{"code", "source code", "implementation", "write", "program", "script", "function", "class"}},
	{IntentFolderStructure, []string{"folder", "structure"}},
	{IntentArchitecture, []string{"architecture", "design"}},
	{IntentModules, []string{"module", "responsibility", "responsibilities"}},
	{IntentInterview, []string{"interview", "viva", "question"}},
}

// AssistantService generates canned mentor replies about a project idea.
// It is stateless; transcripts live in the chat repository.
type AssistantService struct{}

func NewAssistantService() *AssistantService {
	return &AssistantService{}
}

// Classify matches the message against the intent table. Matching is a
// case-insensitive substring test, first rule wins.
func (s *AssistantService) Classify(message string) Intent {
	lowered := strings.ToLower(message)
	for _, rule := range intentRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowered, keyword) {
				return rule.intent
			}
		}
	}
	return IntentDefault
}

// RequiresIdea reports whether responding to the intent needs the idea
// record. Code requests are answered before any idea lookup.
func (s *AssistantService) RequiresIdea(intent Intent) bool {
	return intent != IntentCodeRequest
}

// Respond builds the reply for an intent. idea may be nil only for
// IntentCodeRequest.
func (s *AssistantService) Respond(intent Intent, idea *entity.Idea) string {
	switch intent {
	case IntentCodeRequest:
		return codeRefusalReply
	case IntentFolderStructure:
		return fmt.Sprintf(folderStructureReply, idea.Summary)
	case IntentArchitecture:
		return architectureReply
	case IntentModules:
		return modulesReply
	case IntentInterview:
		return fmt.Sprintf(interviewReply, firstTech(idea.TechStack))
	default:
		return fmt.Sprintf(defaultReply, idea.Summary)
	}
}

// FallbackReply is returned when the referenced idea does not exist.
func (s *AssistantService) FallbackReply() string {
	return "Sorry, I couldn't find the project details. Please try again."
}

// firstTech picks the first comma-separated token of the tech stack.
func firstTech(techStack string) string {
	first := strings.TrimSpace(strings.Split(techStack, ",")[0])
	if first == "" {
		return "your chosen technology"
	}
	return first
}

const codeRefusalReply = "I appreciate your interest, but I'm designed to guide you through understanding the project architecture " +
	"rather than providing source code. I can help you understand:\n\n" +
	"• Project folder structure\n" +
	"• System architecture and design patterns\n" +
	"• Module responsibilities\n" +
	"• Relevant interview/viva questions\n\n" +
	"What specific aspect would you like to explore?"

const folderStructureReply = "For the %s, here's a recommended folder structure:\n\n" +
	"```\n" +
	"project/\n" +
	"├── backend/\n" +
	"│   ├── models/          # Data models\n" +
	"│   ├── controllers/     # Business logic\n" +
	"│   ├── routes/          # API endpoints\n" +
	"│   ├── middleware/      # Auth, validation\n" +
	"│   └── config/          # Configuration files\n" +
	"├── frontend/\n" +
	"│   ├── components/      # Reusable UI components\n" +
	"│   ├── pages/           # Main pages\n" +
	"│   ├── services/        # API calls\n" +
	"│   └── assets/          # Images, styles\n" +
	"├── tests/               # Unit and integration tests\n" +
	"└── docs/                # Documentation\n" +
	"```"

const architectureReply = "The architecture for this project follows a layered approach:\n\n" +
	"**1. Presentation Layer:** User interface and user experience\n" +
	"**2. Application Layer:** Business logic and workflows\n" +
	"**3. Data Layer:** Database and data management\n\n" +
	"Key architectural patterns to consider:\n" +
	"• MVC (Model-View-Controller) for organization\n" +
	"• RESTful API design for backend communication\n" +
	"• Component-based architecture for frontend\n" +
	"• Service-oriented design for modularity"

const modulesReply = "Here are the main modules and their responsibilities:\n\n" +
	"**Authentication Module:**\n" +
	"• User registration and login\n" +
	"• Session management\n" +
	"• Password encryption\n\n" +
	"**Core Business Logic Module:**\n" +
	"• Main feature implementation\n" +
	"• Data processing and validation\n" +
	"• Business rules enforcement\n\n" +
	"**Database Module:**\n" +
	"• CRUD operations\n" +
	"• Data integrity\n" +
	"• Query optimization\n\n" +
	"**API Module:**\n" +
	"• Request handling\n" +
	"• Response formatting\n" +
	"• Error handling"

const interviewReply = "Common interview/viva questions for this project:\n\n" +
	"**Technical Questions:**\n" +
	"1. Why did you choose %s for this project?\n" +
	"2. How does your system handle concurrent users?\n" +
	"3. What security measures have you implemented?\n" +
	"4. How do you ensure data consistency?\n" +
	"5. What are the scalability considerations?\n\n" +
	"**Design Questions:**\n" +
	"1. Why did you choose this particular architecture?\n" +
	"2. What trade-offs did you make in your design?\n" +
	"3. How would you handle future feature additions?\n\n" +
	"**Problem-Solving Questions:**\n" +
	"1. What challenges did you face during development?\n" +
	"2. How did you debug and test your application?\n" +
	"3. What would you improve if you had more time?"

const defaultReply = "I'm here to help you understand the project: %s\n\n" +
	"I can assist you with:\n\n" +
	"• **Folder Structure:** Understanding how to organize your project files\n" +
	"• **Architecture:** System design and design patterns\n" +
	"• **Module Responsibilities:** What each component should do\n" +
	"• **Interview Questions:** Preparing for your viva/presentation\n\n" +
	"What would you like to know more about?"
