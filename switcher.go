package texviewer

// ModelSwitcher holds the Models the viewer can show and which one is currently visible.
type ModelSwitcher struct {
	models []*Model
	index  int
}

// NewModelSwitcher creates a ModelSwitcher showing the first of the Models given. It panics if no Models are given.
func NewModelSwitcher(models ...*Model) *ModelSwitcher {
	if len(models) == 0 {
		panic("Error: NewModelSwitcher() needs at least one Model to show.")
	}
	return &ModelSwitcher{models: append([]*Model{}, models...)}
}

// Add appends a Model to the end of the list.
func (ms *ModelSwitcher) Add(model *Model) {
	ms.models = append(ms.models, model)
}

// Current returns the Model currently being shown.
func (ms *ModelSwitcher) Current() *Model {
	return ms.models[ms.index]
}

// Next switches to the next Model, wrapping back around to the first.
func (ms *ModelSwitcher) Next() {
	ms.index = (ms.index + 1) % len(ms.models)
}

// Prev switches to the previous Model, wrapping around to the last.
func (ms *ModelSwitcher) Prev() {
	if ms.index == 0 {
		ms.index = len(ms.models)
	}
	ms.index--
}

func (ms *ModelSwitcher) Index() int {
	return ms.index
}

func (ms *ModelSwitcher) Len() int {
	return len(ms.models)
}
