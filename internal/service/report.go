package service

import (
	"context"
	"encoding/json"
	"fmt"

	"ops-tracker/internal/model"
)

// ReportGenerator is what the orchestrator needs from the generative service.
type ReportGenerator interface {
	Chat(ctx context.Context, system, user string) (string, error)
	Stream(ctx context.Context, system, user string, flush func(string)) (string, error)
}

// ReportService turns a month of updates into a narrative report. It fails
// before the external call when there is nothing to analyze.
type ReportService struct {
	llm ReportGenerator
}

func NewReportService(llm ReportGenerator) *ReportService {
	return &ReportService{llm: llm}
}

const reportSystemPrompt = `You are an elite operations analyst. You analyze structured work log data
and produce a founder-level operational intelligence report, not a descriptive
summary. No fluff, no generic productivity advice. Write like a chief of staff
briefing a founder: sharp, analytical, decisive. The reader should finish in
under three minutes knowing where time is going, what is wasting capacity, what
is driving impact, and where intervention is needed.

The input is a month of daily work updates: tasks with time spent and a
category (HPA = high priority, CTA = client/revenue, LPA = low priority/admin),
missed tasks with reasons, blockers with reasons, and daily productivity scores.

Before any analysis, semantically group similar tasks: users phrase the same
work differently, so merge by intent and use a clean normalized label
throughout the report.

Produce Markdown with exactly these sections, in order:

## Executive Summary
Bullets: primary time sink, resource alignment (healthy/concerning),
operational drag (low/medium/high), productivity trend
(improving/stable/declining), one top recommendation.

## Time Allocation Breakdown
A table with columns Category | Hours | % of Month | Signal, one row per
category. Flag imbalances directly; do not stay neutral.

## Top 5 Time-Consuming Tasks
A table with columns Normalized Task | Hours | Signal (delegate / automate /
keep), plus one bullet per task on the risk if it continues as is.

## Productivity Intelligence
Correlations between the data series (for example low scores on LPA-heavy
days) and the measured impact of blockers, with key insights in bold.

## Recurring Missed Tasks & Blockers
Clusters and patterns; classify blockers as structural, leadership, or
tool-related.

## Capacity Diagnosis
State plainly whether this person is underutilized, optimally utilized,
overloaded, or misallocated, and why, citing specific data points.

## Risk Flags
Operational dangers: admin creep, strategy starvation, execution bottlenecks.
Be direct.

## High-Impact Recommendations
At most five, each specific and operator-level.

Tone: concise, intelligent, hard-hitting. Clarity over politeness.`

type reportTask struct {
	Description string  `json:"description"`
	Time        float64 `json:"time"`
	Category    string  `json:"category"`
}

type reportItem struct {
	Description string `json:"description"`
	Reason      string `json:"reason"`
}

type reportDay struct {
	Date         string       `json:"date"`
	Productivity int          `json:"productivity"`
	TotalTime    float64      `json:"totalTime"`
	Tasks        []reportTask `json:"tasks"`
	Missed       []reportItem `json:"missed"`
	Blockers     []reportItem `json:"blockers"`
}

func buildReportPayload(updates []model.DailyUpdate) []reportDay {
	days := make([]reportDay, 0, len(updates))
	for _, up := range updates {
		day := reportDay{
			Date:         up.Date,
			Productivity: up.ProductivityScore,
			TotalTime:    up.TotalTime,
			Tasks:        []reportTask{},
			Missed:       []reportItem{},
			Blockers:     []reportItem{},
		}
		for _, t := range up.Tasks {
			day.Tasks = append(day.Tasks, reportTask{Description: t.Description, Time: t.TimeSpent, Category: string(t.Category)})
		}
		for _, m := range up.MissedTasks {
			day.Missed = append(day.Missed, reportItem{Description: m.Description, Reason: m.Reason})
		}
		for _, b := range up.Blockers {
			day.Blockers = append(day.Blockers, reportItem{Description: b.Description, Reason: b.Reason})
		}
		days = append(days, day)
	}
	return days
}

func buildReportInput(userName, month string, updates []model.DailyUpdate) (string, error) {
	data, err := json.MarshalIndent(buildReportPayload(updates), "", "  ")
	if err != nil {
		return "", fmt.Errorf("serialize updates: %w", err)
	}
	return fmt.Sprintf("TARGET USER: %s\nPERIOD: %s\nDATA:\n%s", userName, month, data), nil
}

// MonthlyReport submits the serialized month to the generative service and
// returns its text verbatim.
func (s *ReportService) MonthlyReport(ctx context.Context, userName, month string, updates []model.DailyUpdate) (string, error) {
	if len(updates) == 0 {
		return "", model.ErrNoDataForPeriod
	}
	input, err := buildReportInput(userName, month, updates)
	if err != nil {
		return "", err
	}
	content, err := s.llm.Chat(ctx, reportSystemPrompt, input)
	if err != nil {
		return "", fmt.Errorf("generate report: %w", err)
	}
	return content, nil
}

// StreamMonthlyReport is the same orchestration with tokens flushed as they
// arrive; the full text is returned once the stream ends.
func (s *ReportService) StreamMonthlyReport(ctx context.Context, userName, month string, updates []model.DailyUpdate, flush func(string)) (string, error) {
	if len(updates) == 0 {
		return "", model.ErrNoDataForPeriod
	}
	input, err := buildReportInput(userName, month, updates)
	if err != nil {
		return "", err
	}
	content, err := s.llm.Stream(ctx, reportSystemPrompt, input, flush)
	if err != nil {
		return "", fmt.Errorf("stream report: %w", err)
	}
	return content, nil
}
