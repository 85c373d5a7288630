package mcp

import (
	"context"
	"time"

	"github.com/dataminder/dataminder/internal/domain/activity"
	"github.com/dataminder/dataminder/internal/domain/project"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// registerTools registers all dataminder tools on the server. Mutating tools
// append the matching activity entry, and delete_project cascades to the
// project's activity log.
func registerTools(server *sdkmcp.Server, svcs Services) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_project",
		Description: "Create a new project to organize notebooks and workflow progress",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, params CreateProjectParams) (*sdkmcp.CallToolResult, ProjectResponse, error) {
		proj, err := svcs.Projects.AddProject(ctx, params.ID, params.Name)
		if err != nil {
			return nil, ProjectResponse{}, err
		}
		svcs.Activity.Add(ctx, proj.ID, "Project created", proj.Name)
		return nil, toProjectResponse(proj, time.Now()), nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_projects",
		Description: "List all projects, most recently created first",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ ListProjectsParams) (*sdkmcp.CallToolResult, ListProjectsResponse, error) {
		projects := svcs.Projects.Projects(ctx)
		now := time.Now()
		resp := ListProjectsResponse{Projects: make([]ProjectResponse, 0, len(projects))}
		for i := range projects {
			resp.Projects = append(resp.Projects, toProjectResponse(&projects[i], now))
		}
		return nil, resp, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_project",
		Description: "Get a project with its notebooks, progress, and data description",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, params GetProjectParams) (*sdkmcp.CallToolResult, ProjectResponse, error) {
		proj, err := svcs.Projects.Get(ctx, params.ID)
		if err != nil {
			return nil, ProjectResponse{}, err
		}
		return nil, toProjectResponse(proj, time.Now()), nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_project",
		Description: "Delete a project, its notebooks, and its activity log. Idempotent.",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, params DeleteProjectParams) (*sdkmcp.CallToolResult, DeleteResponse, error) {
		if err := svcs.Projects.DeleteProject(ctx, params.ID); err != nil {
			return nil, DeleteResponse{}, err
		}
		if err := svcs.Activity.Purge(ctx, params.ID); err != nil {
			return nil, DeleteResponse{}, err
		}
		return nil, DeleteResponse{Deleted: true}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_project",
		Description: "Rename a project",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, params UpdateProjectParams) (*sdkmcp.CallToolResult, ProjectResponse, error) {
		proj, err := svcs.Projects.UpdateProject(ctx, params.ID, project.ProjectUpdate{Name: &params.Name})
		if err != nil {
			return nil, ProjectResponse{}, err
		}
		svcs.Activity.Add(ctx, proj.ID, "Project renamed", proj.Name)
		return nil, toProjectResponse(proj, time.Now()), nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "set_data_description",
		Description: "Save the answers to the five-question data description intake form",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, params SetDataDescriptionParams) (*sdkmcp.CallToolResult, ProjectResponse, error) {
		desc := &project.DataDescription{
			ResearchGroup:        params.ResearchGroup,
			DataLocation:         params.DataLocation,
			DataCollectionTime:   params.DataCollectionTime,
			DataCollectionMethod: params.DataCollectionMethod,
			StudyObjective:       params.StudyObjective,
		}
		proj, err := svcs.Projects.UpdateProject(ctx, params.ProjectID, project.ProjectUpdate{DataDescription: desc})
		if err != nil {
			return nil, ProjectResponse{}, err
		}
		svcs.Activity.Add(ctx, proj.ID, "Data description saved", proj.Name)
		return nil, toProjectResponse(proj, time.Now()), nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_notebook",
		Description: "Create a notebook in a project and select it as the current notebook",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, params CreateNotebookParams) (*sdkmcp.CallToolResult, NotebookResponse, error) {
		nb, err := svcs.Projects.AddNotebook(ctx, params.ProjectID, params.ID, params.Name)
		if err != nil {
			return nil, NotebookResponse{}, err
		}
		svcs.Activity.Add(ctx, params.ProjectID, "Notebook created", nb.Name)
		return nil, NotebookResponse{ID: nb.ID, Name: nb.Name, UpdatedAt: relativeNow(nb.UpdatedAt)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_notebook",
		Description: "Delete a notebook from a project. Idempotent.",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, params DeleteNotebookParams) (*sdkmcp.CallToolResult, DeleteResponse, error) {
		name := notebookName(ctx, svcs, params.ProjectID, params.NotebookID)
		if err := svcs.Projects.DeleteNotebook(ctx, params.ProjectID, params.NotebookID); err != nil {
			return nil, DeleteResponse{}, err
		}
		if name != "" {
			svcs.Activity.Add(ctx, params.ProjectID, "Notebook deleted", name)
		}
		return nil, DeleteResponse{Deleted: true}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "rename_notebook",
		Description: "Rename a notebook",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, params RenameNotebookParams) (*sdkmcp.CallToolResult, NotebookResponse, error) {
		nb, err := svcs.Projects.UpdateNotebook(ctx, params.ProjectID, params.NotebookID, params.Name)
		if err != nil {
			return nil, NotebookResponse{}, err
		}
		svcs.Activity.Add(ctx, params.ProjectID, "Notebook renamed", nb.Name)
		return nil, NotebookResponse{ID: nb.ID, Name: nb.Name, UpdatedAt: relativeNow(nb.UpdatedAt)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "select_notebook",
		Description: "Set the current notebook for a project. The notebook must belong to the project.",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, params SelectNotebookParams) (*sdkmcp.CallToolResult, ProjectResponse, error) {
		if err := svcs.Projects.SetCurrentNotebook(ctx, params.ProjectID, params.NotebookID); err != nil {
			return nil, ProjectResponse{}, err
		}
		proj, err := svcs.Projects.Get(ctx, params.ProjectID)
		if err != nil {
			return nil, ProjectResponse{}, err
		}
		return nil, toProjectResponse(proj, time.Now()), nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_progress",
		Description: "Set workflow completion flags, uploaded datasets, or hypothesis count for a project",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, params UpdateProgressParams) (*sdkmcp.CallToolResult, ProjectResponse, error) {
		proj, err := svcs.Projects.UpdateProgress(ctx, params.ProjectID, project.ProgressUpdate{
			DataUploaded:         params.DataUploaded,
			ProfilingCompleted:   params.ProfilingCompleted,
			DescriptionCompleted: params.DescriptionCompleted,
			HypothesesDefined:    params.HypothesesDefined,
			AnalysisCompleted:    params.AnalysisCompleted,
			ReportGenerated:      params.ReportGenerated,
			UploadedDatasets:     params.UploadedDatasets,
			HypothesesCount:      params.HypothesesCount,
		})
		if err != nil {
			return nil, ProjectResponse{}, err
		}
		svcs.Activity.Add(ctx, proj.ID, "Progress updated", proj.Name)
		return nil, toProjectResponse(proj, time.Now()), nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_progress",
		Description: "Get a project's progress record and derived completion percentage. Returns 0 for unknown projects.",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, params GetProgressParams) (*sdkmcp.CallToolResult, ProgressResponse, error) {
		resp := ProgressResponse{Percent: svcs.Projects.ProgressPercent(ctx, params.ProjectID)}
		if proj, err := svcs.Projects.Get(ctx, params.ProjectID); err == nil {
			resp.Progress = proj.Progress
		}
		return nil, resp, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "log_activity",
		Description: "Record a user-visible action in a project's activity feed",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, params LogActivityParams) (*sdkmcp.CallToolResult, LogActivityResponse, error) {
		svcs.Activity.Add(ctx, params.ProjectID, params.Action, params.Item)
		return nil, LogActivityResponse{Logged: true}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_recent_activity",
		Description: "Get the most recent activity entries for a project with relative timestamps",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, params GetRecentActivityParams) (*sdkmcp.CallToolResult, RecentActivityResponse, error) {
		limit := params.Limit
		if limit <= 0 {
			limit = 10
		}
		entries := svcs.Activity.Recent(ctx, params.ProjectID, limit)
		return nil, RecentActivityResponse{Activities: entries}, nil
	})
}

func notebookName(ctx context.Context, svcs Services, projectID, notebookID string) string {
	proj, err := svcs.Projects.Get(ctx, projectID)
	if err != nil {
		return ""
	}
	for _, nb := range proj.Notebooks {
		if nb.ID == notebookID {
			return nb.Name
		}
	}
	return ""
}

func relativeNow(t time.Time) string {
	return activity.RelativeTime(t, time.Now())
}
