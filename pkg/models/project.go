// Package models defines the request and response shapes shared by the HTTP
// API and the service layer.
package models

import (
	"github.com/fleetworks/conductor/ent"
)

// CreateProjectRequest contains fields for registering a new project.
type CreateProjectRequest struct {
	Code                 string `json:"code" binding:"required"`
	Name                 string `json:"name" binding:"required"`
	WebPath              string `json:"web_path,omitempty"`
	AppPath              string `json:"app_path,omitempty"`
	DefaultExecutionMode string `json:"default_execution_mode,omitempty"`
	ModelTier            string `json:"model_tier,omitempty"`
	GitEnabled           *bool  `json:"git_enabled,omitempty"`
}

// UpdateProjectRequest contains the mutable project fields. Nil pointers
// leave the current value untouched.
type UpdateProjectRequest struct {
	Name                 *string `json:"name,omitempty"`
	WebPath              *string `json:"web_path,omitempty"`
	AppPath              *string `json:"app_path,omitempty"`
	DefaultExecutionMode *string `json:"default_execution_mode,omitempty"`
	ModelTier            *string `json:"model_tier,omitempty"`
	GitEnabled           *bool   `json:"git_enabled,omitempty"`
	Archived             *bool   `json:"archived,omitempty"`
}

// ProjectResponse wraps a Project with optional loaded edges.
type ProjectResponse struct {
	*ent.Project
}

// ProjectListResponse contains the project list.
type ProjectListResponse struct {
	Projects []*ent.Project `json:"projects"`
	Total    int            `json:"total"`
}
