package handlers

// AppHandlers holds every handler in the application.
type AppHandlers struct {
	CandidateAuthHandler    *CandidateAuthHandler
	OrganizationAuthHandler *OrganizationAuthHandler
	RecruiterAuthHandler    *RecruiterAuthHandler
	AdminHandler            *AdminHandler
	JobHandler              *JobHandler
	ApplicationHandler      *ApplicationHandler
	CandidateHandler        *CandidateHandler
}
