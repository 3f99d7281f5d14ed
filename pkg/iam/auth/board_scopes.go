package auth

// ============================================================================
// DOMAIN-SPECIFIC SCOPES - Job Board
// ============================================================================

const (
	// Global scope
	ScopeAll = "*"

	// Job scopes
	ScopeJobsAll     = "jobs:*"
	ScopeJobsRead    = "jobs:read"
	ScopeJobsWrite   = "jobs:write"
	ScopeJobsDelete  = "jobs:delete"
	ScopeJobsPublish = "jobs:publish" // Publish/close jobs

	// Application scopes
	ScopeApplicationsAll    = "applications:*"
	ScopeApplicationsRead   = "applications:read"
	ScopeApplicationsWrite  = "applications:write"
	ScopeApplicationsDelete = "applications:delete"
	ScopeApplicationsReview = "applications:review" // Status/rating/notes triage
)

// ScopeDescriptions provides descriptions for scopes
var ScopeDescriptions = map[string]string{
	ScopeAll:                "Full access",
	ScopeJobsAll:            "Full access to job management",
	ScopeJobsRead:           "View jobs",
	ScopeJobsWrite:          "Create and edit jobs and their question schemas",
	ScopeJobsDelete:         "Delete jobs",
	ScopeJobsPublish:        "Publish and close jobs",
	ScopeApplicationsAll:    "Full access to application management",
	ScopeApplicationsRead:   "View applications",
	ScopeApplicationsWrite:  "Create and edit applications",
	ScopeApplicationsDelete: "Delete applications",
	ScopeApplicationsReview: "Set application status, rating and notes",
}

// ScopeGroups defines role groupings used when seeding admin accounts
var ScopeGroups = map[string][]string{
	"admin": {
		ScopeJobsAll,
		ScopeApplicationsAll,
	},
	"editor": {
		ScopeJobsRead,
		ScopeJobsWrite,
		ScopeJobsPublish,
		ScopeApplicationsRead,
	},
	"reviewer": {
		ScopeJobsRead,
		ScopeApplicationsRead,
		ScopeApplicationsReview,
	},
}
