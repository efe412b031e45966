package ui

import (
	"fmt"
	"strings"

	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/checkpoint"
	"github.com/Cordycepsers/nexusforge-platform-sub000/internal/provisioning"
)

// statusMark maps a checkpoint status to its table mark and style.
func statusMark(status checkpoint.Status) string {
	switch status {
	case checkpoint.StatusCompleted:
		return completedStyle.Render(checkMark)
	case checkpoint.StatusFailed:
		return failedStyle.Render(crossMark)
	case checkpoint.StatusInProgress:
		return warningStyle.Render(runningMark)
	default:
		return dimStyle.Render(pendingMark)
	}
}

// RenderStatus renders the stage table and run context for the status view.
func RenderStatus(doc *checkpoint.Document, stages []provisioning.Stage) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Setup status"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("  Project:      %s\n", doc.RunContext.ProjectID))
	b.WriteString(fmt.Sprintf("  Region/Zone:  %s / %s\n", doc.RunContext.Region, doc.RunContext.Zone))
	b.WriteString(fmt.Sprintf("  Source repo:  %s\n", doc.RunContext.SourceRepo()))
	b.WriteString(fmt.Sprintf("  Setup type:   %s\n", doc.RunContext.SetupType))

	b.WriteString(sectionStyle.Render("Stages"))
	b.WriteString("\n")

	titles := make(map[string]string, len(stages))
	for _, s := range stages {
		titles[s.ID] = s.Title
	}

	for _, cp := range doc.Checkpoints {
		title := titles[cp.StageID]
		if title == "" {
			title = cp.StageID
		}
		line := fmt.Sprintf("  %s %-22s %s", statusMark(cp.Status), title, cp.Status)
		if cp.Detail != "" {
			line += dimStyle.Render("  " + cp.Detail)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if next, more := doc.NextStage(); more {
		b.WriteString(dimStyle.Render(fmt.Sprintf("\n  next stage: %s\n", next)))
	} else {
		b.WriteString(completedStyle.Render("\n  all stages completed\n"))
	}

	return b.String()
}
