package job

import "bwbackbone/internal/domain"

// The job lifecycle is linear with a single backward edge: a QC fail reopens
// the job from qa back to in_progress. No state is ever skipped.
var forward = map[domain.JobStatus]domain.JobStatus{
	domain.JobEstimate:   domain.JobApproved,
	domain.JobApproved:   domain.JobInProgress,
	domain.JobInProgress: domain.JobQA,
	domain.JobQA:         domain.JobComplete,
	domain.JobComplete:   domain.JobInvoiced,
}

func canTransition(from, to domain.JobStatus) bool {
	if from == domain.JobQA && to == domain.JobInProgress {
		return true
	}
	return forward[from] == to
}

// isTerminal reports whether a job can never change status again.
func isTerminal(s domain.JobStatus) bool {
	return s == domain.JobInvoiced
}
