package mcp

import (
	"time"

	"github.com/dataminder/dataminder/internal/domain/activity"
	"github.com/dataminder/dataminder/internal/domain/project"
)

type CreateProjectParams struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

type ListProjectsParams struct{}

type GetProjectParams struct {
	ID string `json:"id"`
}

type DeleteProjectParams struct {
	ID string `json:"id"`
}

type UpdateProjectParams struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type SetDataDescriptionParams struct {
	ProjectID            string `json:"project_id"`
	ResearchGroup        string `json:"research_group,omitempty"`
	DataLocation         string `json:"data_location,omitempty"`
	DataCollectionTime   string `json:"data_collection_time,omitempty"`
	DataCollectionMethod string `json:"data_collection_method,omitempty"`
	StudyObjective       string `json:"study_objective,omitempty"`
}

type CreateNotebookParams struct {
	ProjectID string `json:"project_id"`
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
}

type DeleteNotebookParams struct {
	ProjectID  string `json:"project_id"`
	NotebookID string `json:"notebook_id"`
}

type RenameNotebookParams struct {
	ProjectID  string `json:"project_id"`
	NotebookID string `json:"notebook_id"`
	Name       string `json:"name"`
}

type SelectNotebookParams struct {
	ProjectID  string `json:"project_id"`
	NotebookID string `json:"notebook_id"`
}

type UpdateProgressParams struct {
	ProjectID            string   `json:"project_id"`
	DataUploaded         *bool    `json:"data_uploaded,omitempty"`
	ProfilingCompleted   *bool    `json:"profiling_completed,omitempty"`
	DescriptionCompleted *bool    `json:"description_completed,omitempty"`
	HypothesesDefined    *bool    `json:"hypotheses_defined,omitempty"`
	AnalysisCompleted    *bool    `json:"analysis_completed,omitempty"`
	ReportGenerated      *bool    `json:"report_generated,omitempty"`
	UploadedDatasets     []string `json:"uploaded_datasets,omitempty"`
	HypothesesCount      *int     `json:"hypotheses_count,omitempty"`
}

type GetProgressParams struct {
	ProjectID string `json:"project_id"`
}

type LogActivityParams struct {
	ProjectID string `json:"project_id"`
	Action    string `json:"action"`
	Item      string `json:"item"`
}

type GetRecentActivityParams struct {
	ProjectID string `json:"project_id"`
	Limit     int    `json:"limit,omitempty"`
}

type NotebookResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	UpdatedAt string `json:"updated_at"`
}

type ProjectResponse struct {
	ID                string                   `json:"id"`
	Name              string                   `json:"name"`
	UpdatedAt         string                   `json:"updated_at"`
	Notebooks         []NotebookResponse       `json:"notebooks"`
	CurrentNotebookID string                   `json:"current_notebook_id,omitempty"`
	Progress          project.Progress         `json:"progress"`
	ProgressPercent   int                      `json:"progress_percent"`
	DataDescription   *project.DataDescription `json:"data_description,omitempty"`
}

type ListProjectsResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}

type ProgressResponse struct {
	Progress project.Progress `json:"progress"`
	Percent  int              `json:"percent"`
}

type RecentActivityResponse struct {
	Activities []activity.RecentEntry `json:"activities"`
}

type LogActivityResponse struct {
	Logged bool `json:"logged"`
}

// toProjectResponse renders timestamps as relative-time display strings.
func toProjectResponse(proj *project.Project, now time.Time) ProjectResponse {
	notebooks := make([]NotebookResponse, 0, len(proj.Notebooks))
	for _, nb := range proj.Notebooks {
		notebooks = append(notebooks, NotebookResponse{
			ID:        nb.ID,
			Name:      nb.Name,
			UpdatedAt: activity.RelativeTime(nb.UpdatedAt, now),
		})
	}
	return ProjectResponse{
		ID:                proj.ID,
		Name:              proj.Name,
		UpdatedAt:         activity.RelativeTime(proj.UpdatedAt, now),
		Notebooks:         notebooks,
		CurrentNotebookID: proj.CurrentNotebookID,
		Progress:          proj.Progress,
		ProgressPercent:   proj.Progress.Percent(),
		DataDescription:   proj.DataDescription,
	}
}
