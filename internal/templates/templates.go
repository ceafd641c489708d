// Package templates holds the starter files exported for the Strive Tech
// Next.js platform. Content is embedded verbatim and never modified.
package templates

import (
	_ "embed"
	"unicode/utf8"
)

// Embedded template files

//go:embed content/next.config.js
var nextConfig string

//go:embed content/env.example
var envExample string

//go:embed content/prisma_schema.prisma
var prismaSchema string

//go:embed content/api_route_example.ts
var apiRouteExample string

//go:embed content/dashboard_component.tsx
var dashboardComponent string

//go:embed content/migration_checklist.txt
var migrationChecklist string

const (
	// DefaultPrefix is prepended to every exported file name
	DefaultPrefix = "strive_tech_"

	// ChecklistName is the checklist file name before the prefix is applied
	ChecklistName = "migration_checklist.txt"

	// DefaultPreviewLimit is the number of characters shown before truncating
	DefaultPreviewLimit = 500

	ellipsis = "..."
)

// Template is a named starter file
type Template struct {
	Name    string
	Content string
}

// All returns the starter templates in export order
func All() []Template {
	return []Template{
		{Name: "next.config.js", Content: nextConfig},
		{Name: ".env.example", Content: envExample},
		{Name: "prisma_schema.prisma", Content: prismaSchema},
		{Name: "api_route_example.ts", Content: apiRouteExample},
		{Name: "dashboard_component.tsx", Content: dashboardComponent},
	}
}

// Checklist returns the migration checklist text
func Checklist() string {
	return migrationChecklist
}

// Preview returns content unchanged when it has at most limit characters,
// otherwise its first limit characters followed by "...".
func Preview(content string, limit int) string {
	if limit < 0 || utf8.RuneCountInString(content) <= limit {
		return content
	}

	n := 0
	for i := range content {
		if n == limit {
			return content[:i] + ellipsis
		}
		n++
	}
	return content
}
