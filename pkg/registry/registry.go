package registry

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"doc-counter/pkg/models"
	"doc-counter/pkg/parse"
	"doc-counter/pkg/utils"
)

// Registry owns the ordered queue of tasks. It is the single shared
// mutable resource of the system: every task mutation funnels through
// its methods so the status/payload invariants hold in one place, and
// observers only ever see value copies via Snapshot.
type Registry struct {
	mu      sync.RWMutex
	tasks   []*models.Task
	byID    map[string]*models.Task
	running bool // Set while a batch run owns the registry

	allowedSchemes []string
	fallbackName   string
	log            *logrus.Logger
}

// NewRegistry creates an empty registry. Candidate URLs appended later
// are filtered against allowedSchemes; fallbackName is used when a
// display name cannot be derived from the URL.
func NewRegistry(allowedSchemes []string, fallbackName string, log *logrus.Logger) *Registry {
	return &Registry{
		byID:           make(map[string]*models.Task),
		allowedSchemes: allowedSchemes,
		fallbackName:   fallbackName,
		log:            log,
	}
}

// Append constructs an Idle task for each candidate URL and appends
// them at the tail, preserving relative input order. Candidates that do
// not start with an allowed scheme prefix are dropped silently (they
// never become tasks, let alone failed ones). Returns the number of
// tasks appended. Appending during a run is permitted; the new tasks
// are simply not part of the run's frozen snapshot.
func (r *Registry) Append(urls []string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	appended := 0
	for _, raw := range urls {
		if !parse.HasAllowedScheme(raw, r.allowedSchemes) {
			r.log.WithField("candidate", raw).Debug("Dropping candidate without allowed scheme")
			continue
		}
		task := &models.Task{
			ID:          uuid.New().String(),
			URL:         raw,
			DisplayName: parse.DisplayName(raw, r.fallbackName),
			Status:      models.StatusIdle,
			AddedAt:     time.Now(),
		}
		r.tasks = append(r.tasks, task)
		r.byID[task.ID] = task
		appended++
	}

	if appended > 0 {
		r.log.WithFields(logrus.Fields{"appended": appended, "total": len(r.tasks)}).Debug("Appended tasks")
	}
	return appended
}

// Remove deletes the task with the given id. Returns ErrRunInProgress
// while a run owns the registry and ErrTaskNotFound for an unknown id;
// registry state is unchanged in both cases.
func (r *Registry) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return utils.ErrRunInProgress
	}
	if _, ok := r.byID[id]; !ok {
		return utils.ErrTaskNotFound
	}

	delete(r.byID, id)
	for i, task := range r.tasks {
		if task.ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			break
		}
	}
	return nil
}

// Clear empties the registry entirely. Returns ErrRunInProgress while a
// run owns the registry. Confirmation is a boundary concern; by the
// time Clear is called the decision has been made.
func (r *Registry) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return utils.ErrRunInProgress
	}
	r.tasks = nil
	r.byID = make(map[string]*models.Task)
	return nil
}

// Len returns the number of tasks currently queued
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tasks)
}

// Snapshot returns value copies of all tasks in insertion order.
// Callers never receive internal task pointers.
func (r *Registry) Snapshot() []models.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Task, len(r.tasks))
	for i, task := range r.tasks {
		out[i] = *task
	}
	return out
}

// Get returns a value copy of the task with the given id
func (r *Registry) Get(id string) (models.Task, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.byID[id]
	if !ok {
		return models.Task{}, false
	}
	return *task, true
}

// BeginRun marks the registry as owned by a batch run, blocking Remove
// and Clear until EndRun. Returns ErrRunInProgress when a run already
// holds it. The runner is the registry's sole status writer between
// BeginRun and EndRun.
func (r *Registry) BeginRun() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return utils.ErrRunInProgress
	}
	r.running = true
	return nil
}

// EndRun releases run ownership
func (r *Registry) EndRun() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.running = false
}

// RunInProgress reports whether a batch run currently owns the registry
func (r *Registry) RunInProgress() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.running
}

// SetStatus transitions a task to a non-terminal status, clearing any
// prior error and page count so status and payload stay coupled.
func (r *Registry) SetStatus(id string, status models.TaskStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.byID[id]
	if !ok {
		return utils.ErrTaskNotFound
	}
	task.Status = status
	task.Error = ""
	task.PageCount = 0
	return nil
}

// Complete marks the task completed and records its page count
func (r *Registry) Complete(id string, pages int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.byID[id]
	if !ok {
		return utils.ErrTaskNotFound
	}
	task.Status = models.StatusCompleted
	task.PageCount = pages
	task.Error = ""
	return nil
}

// Fail marks the task failed with a human-readable message
func (r *Registry) Fail(id string, msg string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.byID[id]
	if !ok {
		return utils.ErrTaskNotFound
	}
	task.Status = models.StatusFailed
	task.Error = msg
	task.PageCount = 0
	return nil
}
