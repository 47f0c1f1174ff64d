package api

// listProjectsQuery holds the query parameters for GET /projects.
type listProjectsQuery struct {
	IncludeArchived bool `form:"include_archived"`
}

// listTicketsQuery holds the query parameters for GET /tickets and
// GET /projects/:id/tickets. Status may repeat.
type listTicketsQuery struct {
	ProjectID *int     `form:"project_id"`
	Status    []string `form:"status"`
	Limit     int      `form:"limit"`
	Offset    int      `form:"offset"`
}

// conversationQuery pages the message list on the ticket detail view.
type conversationQuery struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}
