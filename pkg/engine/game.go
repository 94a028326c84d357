package engine

// Game is the set of callbacks the engine invokes. Create runs once before
// the first frame, Update once per frame with the seconds spent on the
// previous frame, and Destroy once after the loop ends.
type Game interface {
	Create(e *Engine) error
	Update(e *Engine, elapsed float64) error
	Destroy(e *Engine)
}

// Funcs adapts plain functions to Game. Nil fields are no-ops.
type Funcs struct {
	OnCreate  func(e *Engine) error
	OnUpdate  func(e *Engine, elapsed float64) error
	OnDestroy func(e *Engine)
}

func (f Funcs) Create(e *Engine) error {
	if f.OnCreate == nil {
		return nil
	}
	return f.OnCreate(e)
}

func (f Funcs) Update(e *Engine, elapsed float64) error {
	if f.OnUpdate == nil {
		return nil
	}
	return f.OnUpdate(e, elapsed)
}

func (f Funcs) Destroy(e *Engine) {
	if f.OnDestroy != nil {
		f.OnDestroy(e)
	}
}
