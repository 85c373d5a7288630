package project

import (
	"math"
	"time"
)

// ProjectsKey is the persistence key holding the full project collection.
const ProjectsKey = "dataminder-projects"

// Project is the top-level container for a user's analysis work. It owns its
// notebooks and progress record exclusively; deleting a project removes them.
type Project struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	UpdatedAt         time.Time        `json:"updated_at"`
	Notebooks         []Notebook       `json:"notebooks"`
	CurrentNotebookID string           `json:"current_notebook_id,omitempty"`
	Progress          Progress         `json:"progress"`
	DataDescription   *DataDescription `json:"data_description,omitempty"`
}

// Notebook is a named sub-workspace within a project.
type Notebook struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Progress tracks the six workflow completion flags plus upload and
// hypothesis bookkeeping. The percentage is derived, never stored.
type Progress struct {
	DataUploaded         bool     `json:"data_uploaded"`
	ProfilingCompleted   bool     `json:"profiling_completed"`
	DescriptionCompleted bool     `json:"description_completed"`
	HypothesesDefined    bool     `json:"hypotheses_defined"`
	AnalysisCompleted    bool     `json:"analysis_completed"`
	ReportGenerated      bool     `json:"report_generated"`
	UploadedDatasets     []string `json:"uploaded_datasets,omitempty"`
	HypothesesCount      int      `json:"hypotheses_count"`
}

// Percent returns the completion percentage: round(100 * trueFlags / 6).
func (p Progress) Percent() int {
	flags := [6]bool{
		p.DataUploaded,
		p.ProfilingCompleted,
		p.DescriptionCompleted,
		p.HypothesesDefined,
		p.AnalysisCompleted,
		p.ReportGenerated,
	}
	count := 0
	for _, f := range flags {
		if f {
			count++
		}
	}
	return int(math.Round(float64(count) * 100 / 6))
}

// DataDescription holds the answers to the fixed five-question intake form.
type DataDescription struct {
	ResearchGroup        string `json:"research_group"`
	DataLocation         string `json:"data_location"`
	DataCollectionTime   string `json:"data_collection_time"`
	DataCollectionMethod string `json:"data_collection_method"`
	StudyObjective       string `json:"study_objective"`
}
