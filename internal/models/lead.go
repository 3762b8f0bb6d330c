// Package models contains shared data structures used across the application.
package models

import (
	"strings"
	"time"
)

// LeadStatus represents where a lead sits in the qualification workflow.
type LeadStatus string

const (
	StatusNew          LeadStatus = "New"
	StatusUpdated      LeadStatus = "Updated"
	StatusQualified    LeadStatus = "Qualified"
	StatusUnqualified  LeadStatus = "Unqualified"
	StatusProposalSent LeadStatus = "Proposal Sent"
	StatusNoAnswer     LeadStatus = "No Answer"
)

// TranscriptLimit is the maximum number of characters kept from a call
// transcript. Longer transcripts are truncated at a rune boundary.
const TranscriptLimit = 15000

// Lead is a prospective customer record. The JSON keys match the on-disk
// document format, so existing leads.json files load unchanged.
type Lead struct {
	Name           string     `json:"Name"`
	Email          string     `json:"Email"`
	Company        string     `json:"Company"`
	UseCase        string     `json:"UseCase"`
	AutomationNeed string     `json:"AutomationNeed,omitempty"` // legacy alias for UseCase
	Budget         float64    `json:"Budget"`
	Phone          string     `json:"Phone,omitempty"`
	Status         LeadStatus `json:"Status"`
	ProposalPath   string     `json:"ProposalPath,omitempty"`
	CallTranscript string     `json:"CallTranscript,omitempty"`
	Notes          string     `json:"Notes,omitempty"`
	LastActionAt   time.Time  `json:"LastActionAt"`
}

// EmailKey returns the normalized identity key for email matching.
// An empty email has no key and never matches another lead.
func (l *Lead) EmailKey() string {
	return strings.ToLower(strings.TrimSpace(l.Email))
}

// EffectiveUseCase returns UseCase, falling back to the legacy
// AutomationNeed field for leads imported from older documents.
func (l *Lead) EffectiveUseCase() string {
	if l.UseCase != "" {
		return l.UseCase
	}
	return l.AutomationNeed
}

// Settled reports whether the lead has progressed past the New/Updated
// stage. Settled statuses are only changed by explicit actions, never by a
// re-import merge.
func (l *Lead) Settled() bool {
	switch l.Status {
	case StatusQualified, StatusUnqualified, StatusProposalSent, StatusNoAnswer:
		return true
	}
	return false
}

// Touch refreshes LastActionAt. Every mutation of a lead goes through here.
func (l *Lead) Touch() {
	l.LastActionAt = time.Now().UTC()
}

// SetTranscript stores a call transcript, truncated to TranscriptLimit runes.
func (l *Lead) SetTranscript(text string) {
	r := []rune(text)
	if len(r) > TranscriptLimit {
		r = r[:TranscriptLimit]
	}
	l.CallTranscript = string(r)
}
