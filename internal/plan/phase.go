package plan

// Priority levels for phases
type Priority string

const (
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

// Phase is one stage of the migration plan
type Phase struct {
	Name         string   `json:"phase" yaml:"phase"`
	Duration     string   `json:"duration" yaml:"duration"`
	Tasks        []string `json:"key_tasks" yaml:"key_tasks"`
	Dependencies string   `json:"dependencies" yaml:"dependencies"`
	Priority     Priority `json:"priority" yaml:"priority"`
}

// Banner and timeline lines printed ahead of the phase list
const (
	PlanTitle     = "=== STRIVE TECH NEXT.JS MIGRATION & PLATFORM DEVELOPMENT PLAN ==="
	TotalTimeline = "ESTIMATED TOTAL TIMELINE: 16-22 WEEKS (4-6 MONTHS)"
)

var phases = []Phase{
	{
		Name:     "1. Foundation & Migration",
		Duration: "2-3 weeks",
		Tasks: []string{
			"Next.js setup with App Router",
			"Migrate existing components to Next.js structure",
			"Setup Clerk authentication with Supabase",
			"Database schema design with Prisma",
			"Basic routing and navigation",
		},
		Dependencies: "Current codebase analysis",
		Priority:     PriorityCritical,
	},
	{
		Name:     "2. Core Services & CMS",
		Duration: "3-4 weeks",
		Tasks: []string{
			"Implement headless CMS (Strapi or Sanity)",
			"User management and RBAC system",
			"Basic admin dashboard structure",
			"API routes for core functionality",
			"Content management workflows",
		},
		Dependencies: "Phase 1 completion",
		Priority:     PriorityHigh,
	},
	{
		Name:     "3. Advanced Features",
		Duration: "4-5 weeks",
		Tasks: []string{
			"CRM system implementation",
			"Task management & Kanban boards",
			"Scheduler & calendar integration",
			"Project tracking dashboard",
			"Client portal development",
		},
		Dependencies: "Phase 2 completion",
		Priority:     PriorityHigh,
	},
	{
		Name:     "4. AI Integration",
		Duration: "3-4 weeks",
		Tasks: []string{
			"Multi-AI chatbot system (OpenAI, Claude)",
			"Subscription-based AI tool access",
			"Context-aware assistance",
			"Integration with CRM data",
			"Custom AI workflows per client",
		},
		Dependencies: "Phase 3 completion",
		Priority:     PriorityMedium,
	},
	{
		Name:     "5. Billing & Subscriptions",
		Duration: "2-3 weeks",
		Tasks: []string{
			"Stripe integration setup",
			"Subscription management system",
			"Payment processing workflows",
			"Usage tracking and billing",
			"Customer portal for billing",
		},
		Dependencies: "User system from Phase 2",
		Priority:     PriorityHigh,
	},
	{
		Name:     "6. Performance & Production",
		Duration: "2-3 weeks",
		Tasks: []string{
			"SEO optimization",
			"Performance monitoring setup",
			"Security audit and hardening",
			"Load testing and optimization",
			"Production deployment pipeline",
		},
		Dependencies: "All previous phases",
		Priority:     PriorityCritical,
	},
}

// Phases returns a copy of the migration phases in plan order
func Phases() []Phase {
	out := make([]Phase, len(phases))
	for i, p := range phases {
		p.Tasks = append([]string(nil), p.Tasks...)
		out[i] = p
	}
	return out
}
