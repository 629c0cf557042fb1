package main

import "ops-tracker/internal/model"

type demoTask struct {
	description string
	hours       float64
	category    model.TaskCategory
}

type demoItem struct {
	description string
	reason      string
}

type demoUpdate struct {
	date     string
	tasks    []demoTask
	missed   []demoItem
	blockers []demoItem
	score    int
}

var demoUpdates = []demoUpdate{
	{
		date: "2026-01-06",
		tasks: []demoTask{
			{"Reviewing inbound LinkedIn inmails", 1.5, model.CategoryCTA},
			{"Internal ops planning", 2, model.CategoryLPA},
			{"Drafting outreach copy", 1, model.CategoryCTA},
		},
		missed:   []demoItem{{"Weekly analytics review", "Ran out of time due to ops discussions"}},
		blockers: []demoItem{{"Waiting for access to analytics dashboard", "Permissions pending"}},
		score:    7,
	},
	{
		date: "2026-01-09",
		tasks: []demoTask{
			{"Inmails checking for founder", 2, model.CategoryCTA},
			{"Campaign copy revisions", 1.5, model.CategoryHPA},
			{"Team sync call", 1, model.CategoryLPA},
		},
		score: 8,
	},
	{
		date: "2026-01-13",
		tasks: []demoTask{
			{"Founder LinkedIn inmails follow-ups", 2, model.CategoryCTA},
			{"Lead list cleanup", 1.5, model.CategoryLPA},
			{"Drafting new campaign angle", 1, model.CategoryHPA},
		},
		missed:   []demoItem{{"CRM update", "Lead data incomplete"}},
		blockers: []demoItem{{"Inconsistent lead data", "Source sheet outdated"}},
		score:    7,
	},
	{
		date: "2026-01-17",
		tasks: []demoTask{
			{"Strategy discussion with founder", 2, model.CategoryHPA},
			{"Cleaning lead database", 2, model.CategoryLPA},
			{"Checking inmails for founder", 1, model.CategoryCTA},
		},
		missed: []demoItem{{"Outreach scheduling", "Strategy discussion overran"}},
		score:  6,
	},
	{
		date: "2026-01-22",
		tasks: []demoTask{
			{"Reviewing campaign performance", 1.5, model.CategoryHPA},
			{"Inmail responses for founder", 2, model.CategoryCTA},
			{"Ops documentation", 1, model.CategoryLPA},
		},
		blockers: []demoItem{{"Delay in performance data", "Tracking not updated"}},
		score:    8,
	},
	{
		date: "2026-02-03",
		tasks: []demoTask{
			{"Checking LinkedIn inmails", 1.5, model.CategoryCTA},
			{"Internal process improvement planning", 2, model.CategoryHPA},
			{"Admin follow-ups", 1, model.CategoryLPA},
		},
		missed:   []demoItem{{"Outreach copy rewrite", "Pulled into admin work"}},
		blockers: []demoItem{{"Too many ad-hoc admin requests", "No task prioritization"}},
		score:    6,
	},
	{
		date: "2026-02-07",
		tasks: []demoTask{
			{"Founder inmails management", 2, model.CategoryCTA},
			{"Drafting SOP for outreach", 1.5, model.CategoryHPA},
			{"Internal alignment call", 1, model.CategoryLPA},
		},
		missed: []demoItem{{"Lead sourcing", "SOP drafting took longer"}},
		score:  7,
	},
	{
		date: "2026-02-12",
		tasks: []demoTask{
			{"Reviewing founder LinkedIn messages", 2, model.CategoryCTA},
			{"Campaign optimization planning", 1.5, model.CategoryHPA},
			{"Lead sheet cleanup", 1, model.CategoryLPA},
		},
		score: 8,
	},
	{
		date: "2026-02-18",
		tasks: []demoTask{
			{"Inmails checking & responses", 2, model.CategoryCTA},
			{"Ops backlog cleanup", 2, model.CategoryLPA},
			{"Strategy notes for next sprint", 1, model.CategoryHPA},
		},
		missed:   []demoItem{{"Outreach experiments", "Ops backlog heavier than expected"}},
		blockers: []demoItem{{"Accumulated operational debt", "Repeated manual work"}},
		score:    6,
	},
	{
		date: "2026-02-24",
		tasks: []demoTask{
			{"Founder inmails review", 1.5, model.CategoryCTA},
			{"Monthly performance reflection", 2, model.CategoryHPA},
			{"Documentation updates", 1, model.CategoryLPA},
		},
		score: 8,
	},
}
