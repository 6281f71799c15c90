package task

import (
	"github.com/rs/zerolog/log"
)

// Registry maps task ids to runnables. Registration happens once at process
// startup, before anything runs; the registry is read-only afterwards, so
// lookups need no locking.
type Registry struct {
	order   []ID
	tasks   map[ID]Runnable
	details map[ID]string
}

func NewRegistry() *Registry {
	return &Registry{
		tasks:   map[ID]Runnable{},
		details: map[ID]string{},
	}
}

// Register binds id to run. Registering an id twice replaces the runnable
// but keeps the original listing position.
func (r *Registry) Register(id ID, description string, run Runnable) {
	if _, ok := r.tasks[id]; !ok {
		r.order = append(r.order, id)
	}
	r.tasks[id] = run
	r.details[id] = description
}

// Get resolves id to its runnable.
func (r *Registry) Get(id ID) (Runnable, error) {
	run, ok := r.tasks[id]
	if !ok {
		return nil, &UnknownTaskError{ID: id}
	}
	return run, nil
}

// Defined reports whether id has a registered runnable.
func (r *Registry) Defined(id ID) bool {
	_, ok := r.tasks[id]
	return ok
}

// Describe returns the description given at registration, if any.
func (r *Registry) Describe(id ID) string {
	return r.details[id]
}

// List returns every registered id in registration order.
func (r *Registry) List() []ID {
	out := make([]ID, len(r.order))
	copy(out, r.order)
	return out
}

// Ensure verifies that every id resolves to a registered runnable, stopping
// and logging at the first one that does not.
func (r *Registry) Ensure(ids []ID) error {
	for _, id := range ids {
		if !r.Defined(id) {
			log.Error().Str("task", string(id)).Msg("Task is not defined")
			return &UnknownTaskError{ID: id}
		}
	}
	return nil
}
