package form

import "sync"

// Instance keeps a single Engine alive across repeated initialisation calls,
// the way a UI component keeps its form while it re-renders. The zero value
// is ready to use.
type Instance struct {
	mu     sync.Mutex
	engine *Engine
}

// Use returns the engine held by the instance, constructing it from cfg on
// the first successful call. Later calls ignore cfg and opts and never
// revalidate.
func (i *Instance) Use(cfg Config, opts ...Option) (*Engine, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.engine != nil {
		return i.engine, nil
	}
	engine, err := New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	i.engine = engine
	return engine, nil
}
