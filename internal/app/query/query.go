// Package query holds the read-only projections shared by the admin list,
// the volunteer task list and the public tracker. Everything here is pure:
// inputs are slices, outputs are new slices, no storage access.
package query

import (
	"sort"
	"strings"

	"github.com/bella507/help-me-sub000/internal/app/ds"
)

// All disables a filter dimension.
const All = "all"

// urgencyRank orders high before medium before low. Unknown values sort
// after every known tier.
func urgencyRank(u string) int {
	switch u {
	case ds.UrgencyHigh:
		return 0
	case ds.UrgencyMedium:
		return 1
	case ds.UrgencyLow:
		return 2
	}
	return 3
}

// FilterByPhone keeps requests whose phone contains term as a substring.
// Used by the public self-service tracker.
func FilterByPhone(requests []ds.HelpRequest, term string) []ds.HelpRequest {
	out := make([]ds.HelpRequest, 0, len(requests))
	for _, r := range requests {
		if strings.Contains(r.Phone, term) {
			out = append(out, r)
		}
	}
	return out
}

// FilterByStatus keeps requests in the given status; "all" keeps everything.
func FilterByStatus(requests []ds.HelpRequest, status string) []ds.HelpRequest {
	if status == All || status == "" {
		return append([]ds.HelpRequest(nil), requests...)
	}
	out := make([]ds.HelpRequest, 0, len(requests))
	for _, r := range requests {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out
}

// FilterByUrgencyAndStatus is the conjunction of both filters.
func FilterByUrgencyAndStatus(requests []ds.HelpRequest, urgency, status string) []ds.HelpRequest {
	out := FilterByStatus(requests, status)
	if urgency == All || urgency == "" {
		return out
	}
	kept := out[:0]
	for _, r := range out {
		if r.Urgency == urgency {
			kept = append(kept, r)
		}
	}
	return kept
}

// SortForTriage orders requests for operator attention: most urgent first,
// newest first within a tier. With urgencyFirst disabled it is recency
// only. The tie-break direction (created_at descending) is part of the
// triage policy, not an accident.
func SortForTriage(requests []ds.HelpRequest, urgencyFirst bool) []ds.HelpRequest {
	out := append([]ds.HelpRequest(nil), requests...)
	sort.SliceStable(out, func(i, j int) bool {
		if urgencyFirst {
			ri, rj := urgencyRank(out[i].Urgency), urgencyRank(out[j].Urgency)
			if ri != rj {
				return ri < rj
			}
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Stats are the dashboard counters, recomputed from scratch on each call.
type Stats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
	High       int `json:"high"`
	Medium     int `json:"medium"`
	Low        int `json:"low"`
}

// ComputeStats counts requests by status and urgency. The status counts
// always sum to Total.
func ComputeStats(requests []ds.HelpRequest) Stats {
	s := Stats{Total: len(requests)}
	for _, r := range requests {
		switch r.Status {
		case ds.StatusPending:
			s.Pending++
		case ds.StatusInProgress:
			s.InProgress++
		case ds.StatusCompleted:
			s.Completed++
		}
		switch r.Urgency {
		case ds.UrgencyHigh:
			s.High++
		case ds.UrgencyMedium:
			s.Medium++
		case ds.UrgencyLow:
			s.Low++
		}
	}
	return s
}
