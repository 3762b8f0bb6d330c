package models

import "encoding/json"

// ArtifactKind identifies the type of an outbox artifact.
type ArtifactKind string

const (
	ArtifactEmail       ArtifactKind = "email"
	ArtifactCallRequest ArtifactKind = "call_request"
	ArtifactProposal    ArtifactKind = "proposal"
)

// Artifact is a reference to a single file written to the outbox.
type Artifact struct {
	Kind ArtifactKind
	Name string
	Path string
}

// CallCustomer identifies the person being called in a call request.
type CallCustomer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
}

// CallMetadata carries lead correlation data in a call request.
type CallMetadata struct {
	LeadEmail string `json:"leadEmail"`
}

// CallSynthesis configures the simulated voice agent.
type CallSynthesis struct {
	Prompt string `json:"prompt"`
}

// CallRequest is the payload of a simulated outbound call, written to the
// outbox as JSON instead of being sent to a telephony provider.
type CallRequest struct {
	CallID      string        `json:"callId"`
	AssistantID string        `json:"assistantId"`
	PhoneNumber string        `json:"phoneNumber"`
	Customer    CallCustomer  `json:"customer"`
	Metadata    CallMetadata  `json:"metadata"`
	WebhookURL  string        `json:"webhookUrl"`
	Synthesis   CallSynthesis `json:"synthesis"`
}

// MarshalIndent renders the request as the indented JSON written to the
// outbox.
func (r CallRequest) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// Attachment is a reference to a local file listed in a simulated email.
type Attachment struct {
	Filename string
	Path     string
}
