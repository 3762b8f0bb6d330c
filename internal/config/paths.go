// Package config handles configuration loading and workspace path management.
package config

import (
	"os"
	"path/filepath"
)

// Directory names inside a workspace.
const (
	DataDirName         = "data"
	OutboxDirName       = "outbox"
	EmailsDirName       = "emails"
	CallRequestsDirName = "call_requests"
	ProposalsDirName    = "proposals"
)

// File names inside a workspace.
const (
	LeadsFileName        = "leads.json"
	NotificationsLogName = "notifications.log"
	SettingsFileName     = "leadline.yaml"
)

// DataDir returns the path to a workspace's data directory.
func DataDir(workspace string) string {
	return filepath.Join(workspace, DataDirName)
}

// LeadsFile returns the path to the persisted lead collection document.
func LeadsFile(workspace string) string {
	return filepath.Join(DataDir(workspace), LeadsFileName)
}

// OutboxDir returns the path to a workspace's outbox directory.
func OutboxDir(workspace string) string {
	return filepath.Join(workspace, OutboxDirName)
}

// EmailsDir returns the directory holding simulated emails.
func EmailsDir(workspace string) string {
	return filepath.Join(OutboxDir(workspace), EmailsDirName)
}

// CallRequestsDir returns the directory holding simulated call requests.
func CallRequestsDir(workspace string) string {
	return filepath.Join(OutboxDir(workspace), CallRequestsDirName)
}

// NotificationsLog returns the path to the append-only notifications log.
func NotificationsLog(workspace string) string {
	return filepath.Join(OutboxDir(workspace), NotificationsLogName)
}

// ProposalsDir returns the directory holding generated proposals.
func ProposalsDir(workspace string) string {
	return filepath.Join(workspace, ProposalsDirName)
}

// SettingsFile returns the path to the optional settings defaults file.
func SettingsFile(workspace string) string {
	return filepath.Join(workspace, SettingsFileName)
}

// EnsureWorkspace creates the workspace directory structure if needed.
func EnsureWorkspace(workspace string) error {
	dirs := []string{
		DataDir(workspace),
		EmailsDir(workspace),
		CallRequestsDir(workspace),
		ProposalsDir(workspace),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}
