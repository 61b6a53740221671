package provider

// GenerationRequest is the body of one POST /api/generate call. It is
// built once per invocation and immutable after construction.
type GenerationRequest struct {
	Model       string  `json:"model"`
	Prompt      string  `json:"prompt"`
	System      string  `json:"system"`
	Temperature float64 `json:"temperature"`
	Stream      bool    `json:"stream"`
}

// Fragment is one decoded unit of a streamed reply: incremental text
// plus the completion flag. Consumed and discarded as soon as it is
// rendered.
type Fragment struct {
	Text string
	Done bool
}

// ModelInfo describes one model known to the server.
type ModelInfo struct {
	Name string
	Size int64 // bytes, 0 when the listing endpoint omits it
}

// ComposeRequest merges the static instruction with the workspace
// context packet (separated by a single newline) into the system field
// and passes the remaining fields through unchanged. Pure, no I/O.
func ComposeRequest(model, prompt, instruction, packet string, temperature float64, stream bool) GenerationRequest {
	system := instruction
	if packet != "" {
		system = instruction + "\n" + packet
	}
	return GenerationRequest{
		Model:       model,
		Prompt:      prompt,
		System:      system,
		Temperature: temperature,
		Stream:      stream,
	}
}
