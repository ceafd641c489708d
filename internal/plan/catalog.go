package plan

// StackTitle heads the technology section of the console output
const StackTitle = "=== RECOMMENDED TECHNOLOGY STACK ==="

// Category groups recommended technologies under one heading
type Category struct {
	Name  string   `json:"category" yaml:"category"`
	Items []string `json:"items" yaml:"items"`
}

// Kept as a slice so categories always print in the same order
var techStack = []Category{
	{Name: "Frontend", Items: []string{
		"Next.js 14+ with App Router",
		"React 18+ with Server Components",
		"TypeScript for type safety",
		"Tailwind CSS for styling",
		"shadcn/ui component library",
	}},
	{Name: "Authentication & Security", Items: []string{
		"Clerk for authentication",
		"RBAC with user metadata",
		"NextAuth.js as alternative",
		"JWT tokens for API security",
	}},
	{Name: "Database & ORM", Items: []string{
		"Supabase (PostgreSQL)",
		"Prisma ORM for type-safe queries",
		"Database migrations",
		"Row-level security policies",
	}},
	{Name: "Backend Services", Items: []string{
		"Next.js API routes",
		"Microservices architecture",
		"RESTful APIs",
		"GraphQL with Apollo (optional)",
	}},
	{Name: "Content Management", Items: []string{
		"Strapi (recommended) or Sanity",
		"Headless CMS architecture",
		"Content versioning",
		"Multi-tenant content",
	}},
	{Name: "AI & Integrations", Items: []string{
		"OpenAI API integration",
		"Anthropic Claude API",
		"AI SDK for unified interface",
		"Custom prompt management",
	}},
	{Name: "Payments & Subscriptions", Items: []string{
		"Stripe for payment processing",
		"Subscription management",
		"Webhooks for events",
		"Usage-based billing",
	}},
	{Name: "Deployment & Monitoring", Items: []string{
		"Vercel for hosting",
		"GitHub Actions for CI/CD",
		"OpenTelemetry for observability",
		"Sentry for error tracking",
	}},
}

// TechStack returns a copy of the technology catalog in declaration order
func TechStack() []Category {
	out := make([]Category, len(techStack))
	for i, c := range techStack {
		c.Items = append([]string(nil), c.Items...)
		out[i] = c
	}
	return out
}
