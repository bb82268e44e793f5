package scenario

// Builder builds a Config fluently.
type Builder struct {
	config Config
}

// NewBuilder starts a scenario with the given ID and initial contents.
func NewBuilder(id string, initial ...int) *Builder {
	return &Builder{config: Config{ID: id, Initial: initial}}
}

func (b *Builder) add(s Step) *Builder {
	b.config.Steps = append(b.config.Steps, s)
	return b
}

// PushFront appends a push_front step.
func (b *Builder) PushFront(v int) *Builder {
	return b.add(Step{Op: PushFront, Value: v})
}

// PopFront appends a pop_front step.
func (b *Builder) PopFront() *Builder {
	return b.add(Step{Op: PopFront})
}

// InsertAfter appends an insert_after step at position after.
func (b *Builder) InsertAfter(after, v int) *Builder {
	return b.add(Step{Op: InsertAfter, After: after, Value: v})
}

// EraseAfter appends an erase_after step at position after.
func (b *Builder) EraseAfter(after int) *Builder {
	return b.add(Step{Op: EraseAfter, After: after})
}

// Clear appends a clear step.
func (b *Builder) Clear() *Builder {
	return b.add(Step{Op: Clear})
}

// Assign appends a step replacing the contents with values.
func (b *Builder) Assign(values ...int) *Builder {
	return b.add(Step{Op: Assign, Values: values})
}

// Version pins the scenario version instead of the computed hash.
func (b *Builder) Version(v string) *Builder {
	b.config.Version = v
	return b
}

// Build validates and returns the scenario.
func (b *Builder) Build() (Config, error) {
	cfg := b.config
	cfg.Steps = append([]Step(nil), b.config.Steps...)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MustBuild is like Build but panics on an invalid scenario.
func (b *Builder) MustBuild() Config {
	cfg, err := b.Build()
	if err != nil {
		panic(err)
	}
	return cfg
}
