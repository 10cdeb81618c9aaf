package domain

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// AllPriorities is the closed priority enumeration, most urgent first.
var AllPriorities = []Priority{PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow}

// ValidPriorities is the canonical set of accepted priorities.
var ValidPriorities = map[Priority]bool{
	PriorityLow: true, PriorityMedium: true, PriorityHigh: true, PriorityCritical: true,
}

type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
)

// ValidTaskStatuses is the canonical set of accepted task statuses.
var ValidTaskStatuses = map[TaskStatus]bool{
	TaskTodo: true, TaskInProgress: true, TaskDone: true,
}

type LoadTier string

const (
	LoadHealthy  LoadTier = "healthy"
	LoadAlert    LoadTier = "alert"
	LoadOverload LoadTier = "overload"
)

type ClientStatus string

const (
	ClientActive   ClientStatus = "active"
	ClientProspect ClientStatus = "prospect"
	ClientInactive ClientStatus = "inactive"
)
