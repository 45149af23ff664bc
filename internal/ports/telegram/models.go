package ports

// Option is a selectable inline-keyboard entry. Token comes back verbatim in
// the selection callback and is used to correlate the choice.
type Option struct {
	Label string
	Token string
}

// Reply is the user-facing outcome of a workflow.
type Reply struct {
	Text              string
	Options           []Option
	DisableWebPreview bool
}
