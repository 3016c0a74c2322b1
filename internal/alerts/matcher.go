// Package alerts implements job alert matching: deciding which job postings
// satisfy a seeker's saved alert preferences.
package alerts

import (
	"strings"

	"github.com/jobexecutive/jobboard/internal/types"
)

// Matches reports whether a job satisfies the preferences. Every configured
// criterion must hold; an empty criterion matches everything.
//
// Keywords match case-insensitively against title, description and location
// (any keyword suffices). Job and location types are any-of sets. MinSalary
// is compared against the job's salary floor.
func Matches(prefs types.JobAlertsPreferences, job types.Job) bool {
	return matchesKeywords(prefs.Keywords, job) &&
		matchesJobType(prefs.JobTypes, job.JobType) &&
		matchesLocationType(prefs.LocationTypes, job.LocationType) &&
		job.SalaryMin >= prefs.MinSalary
}

// Filter returns the jobs matching the preferences, preserving input order.
func Filter(prefs types.JobAlertsPreferences, jobs []types.Job) []types.Job {
	var out []types.Job
	for _, job := range jobs {
		if Matches(prefs, job) {
			out = append(out, job)
		}
	}
	return out
}

func matchesKeywords(keywords []string, job types.Job) bool {
	if len(keywords) == 0 {
		return true
	}
	haystack := strings.ToLower(job.Title + " " + job.Description + " " + job.Location)
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" && strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}

func matchesJobType(jobTypes []types.JobType, jt types.JobType) bool {
	if len(jobTypes) == 0 {
		return true
	}
	for _, t := range jobTypes {
		if t == jt {
			return true
		}
	}
	return false
}

func matchesLocationType(locationTypes []types.LocationType, lt types.LocationType) bool {
	if len(locationTypes) == 0 {
		return true
	}
	for _, t := range locationTypes {
		if t == lt {
			return true
		}
	}
	return false
}
