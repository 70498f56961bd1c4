package shortlist

// toggle carries the enabled flag shared by the built-in filters.
type toggle struct {
	enabled bool
	reason  string
}

func enabled() toggle { return toggle{enabled: true} }

func (t *toggle) Disable(reason string) {
	t.enabled = false
	t.reason = reason
}

func (t *toggle) IsEnabled() bool { return t.enabled }

func (t *toggle) status(name string, details map[string]string) Status {
	return Status{Name: name, Enabled: t.enabled, Reason: t.reason, Details: details}
}
