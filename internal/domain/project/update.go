package project

// ProjectUpdate describes a partial project update. Nil fields are left
// unchanged.
type ProjectUpdate struct {
	Name            *string
	DataDescription *DataDescription
}

// ProgressUpdate describes a partial progress update. Nil fields are left
// unchanged; a non-nil UploadedDatasets replaces the list wholesale.
type ProgressUpdate struct {
	DataUploaded         *bool
	ProfilingCompleted   *bool
	DescriptionCompleted *bool
	HypothesesDefined    *bool
	AnalysisCompleted    *bool
	ReportGenerated      *bool
	UploadedDatasets     []string
	HypothesesCount      *int
}

func (u ProgressUpdate) apply(p *Progress) {
	if u.DataUploaded != nil {
		p.DataUploaded = *u.DataUploaded
	}
	if u.ProfilingCompleted != nil {
		p.ProfilingCompleted = *u.ProfilingCompleted
	}
	if u.DescriptionCompleted != nil {
		p.DescriptionCompleted = *u.DescriptionCompleted
	}
	if u.HypothesesDefined != nil {
		p.HypothesesDefined = *u.HypothesesDefined
	}
	if u.AnalysisCompleted != nil {
		p.AnalysisCompleted = *u.AnalysisCompleted
	}
	if u.ReportGenerated != nil {
		p.ReportGenerated = *u.ReportGenerated
	}
	if u.UploadedDatasets != nil {
		p.UploadedDatasets = append([]string(nil), u.UploadedDatasets...)
	}
	if u.HypothesesCount != nil {
		p.HypothesesCount = *u.HypothesesCount
	}
}
