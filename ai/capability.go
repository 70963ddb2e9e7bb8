package ai

// Capabilities is the structured availability report assembled once at
// startup. It replaces ad-hoc warning prints: the trainer logs it a
// single time at the boundary and callers can inspect it on the run
// summary.
type Capabilities struct {
	// EncoderAvailable is true when a real encoding model is in use.
	EncoderAvailable bool

	// EncoderModel names the model in use, or is empty in fallback mode.
	EncoderModel string

	// TrainingAvailable is true when a gradient-capable backend exists.
	// Always false in this build.
	TrainingAvailable bool

	// TrainingBackend names the training backend, or is empty when absent.
	TrainingBackend string
}

// Report assembles a Capabilities report for the selected services.
// Either argument may be nil, meaning the capability is absent.
func Report(encoder Encoder, backend TrainingBackend, model string) Capabilities {
	caps := Capabilities{}
	if encoder != nil && encoder.Available() {
		caps.EncoderAvailable = true
		caps.EncoderModel = model
	}
	if backend != nil && backend.Available() {
		caps.TrainingAvailable = true
		caps.TrainingBackend = backend.Name()
	}
	return caps
}

// Degraded reports whether the trainer is running without a real encoder,
// producing deterministic synthetic vectors instead.
func (c Capabilities) Degraded() bool {
	return !c.EncoderAvailable
}
