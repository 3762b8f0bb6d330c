package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/leadline-io/leadline/internal/app"
	"github.com/leadline-io/leadline/internal/models"
)

func loadLeadsCmd(a *app.App) tea.Cmd {
	return func() tea.Msg {
		return LeadsLoadedMsg{Leads: a.Leads()}
	}
}

func saveLeadCmd(a *app.App, lead models.Lead) tea.Cmd {
	return func() tea.Msg {
		if err := a.SaveLead(lead); err != nil {
			return ErrorMsg{Err: err}
		}
		return LeadSavedMsg{}
	}
}

func qualifyCmd(a *app.App, email string) tea.Cmd {
	return func() tea.Msg {
		status, err := a.Qualify(email)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ActionDoneMsg{Info: fmt.Sprintf("%s → %s", email, status)}
	}
}

func qualifyPendingCmd(a *app.App) tea.Cmd {
	return func() tea.Msg {
		n, err := a.QualifyPending()
		if err != nil {
			return ErrorMsg{Err: err}
		}
		if n == 0 {
			return ActionDoneMsg{Info: "No pending leads to qualify"}
		}
		return ActionDoneMsg{Info: fmt.Sprintf("Qualified %d leads", n)}
	}
}

func triggerCallCmd(a *app.App, email string) tea.Cmd {
	return func() tea.Msg {
		if err := a.TriggerCall(email); err != nil {
			return ErrorMsg{Err: err}
		}
		return ActionDoneMsg{Info: fmt.Sprintf("Call request created for %s", email)}
	}
}

func sendProposalCmd(a *app.App, email string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if err := a.SendProposal(ctx, email); err != nil {
			return ErrorMsg{Err: err}
		}
		return ActionDoneMsg{Info: fmt.Sprintf("Proposal sent to %s", email)}
	}
}

func webhookCmd(a *app.App, email, eventType, transcript string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if err := a.Webhook(ctx, email, eventType, transcript); err != nil {
			return ErrorMsg{Err: err}
		}
		return ActionDoneMsg{Info: fmt.Sprintf("Event %s processed for %s", eventType, email)}
	}
}

func importCmd(a *app.App, path string) tea.Cmd {
	return func() tea.Msg {
		res, err := a.ImportFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ImportDoneMsg{Result: res}
	}
}

func loadArtifactsCmd(a *app.App, kind models.ArtifactKind) tea.Cmd {
	return func() tea.Msg {
		artifacts, err := a.Artifacts(kind)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ArtifactsLoadedMsg{Kind: kind, Artifacts: artifacts}
	}
}

func readArtifactCmd(a *app.App, art models.Artifact) tea.Cmd {
	return func() tea.Msg {
		content, err := a.ReadArtifact(art.Kind, art.Name)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ArtifactContentMsg{Artifact: art, Content: content}
	}
}

func loadActivityCmd(a *app.App) tea.Cmd {
	return func() tea.Msg {
		return ActivityLoadedMsg{Lines: a.ActivityTail(200)}
	}
}

func clearErrorAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return ClearErrorMsg{}
	})
}

func clearToastAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return ClearToastMsg{}
	})
}
