package model

import "strings"

// FilterModel tracks the optional ffmpeg filter expression: an enabled flag
// and free-form text with placeholder semantics. The placeholder is shown
// greyed out while the filter is disabled and never reaches the pipeline.
type FilterModel struct {
	enabled     bool
	text        string
	placeholder string
}

func NewFilterModel(placeholder string) *FilterModel {
	return &FilterModel{placeholder: placeholder, text: placeholder}
}

// Enabled reports whether the filter is applied to crop jobs.
func (m *FilterModel) Enabled() bool { return m.enabled }

// SetEnabled stores the enabled flag.
func (m *FilterModel) SetEnabled(b bool) { m.enabled = b }

// Toggle inverts the enabled flag.
func (m *FilterModel) Toggle() { m.enabled = !m.enabled }

// Placeholder returns the placeholder expression.
func (m *FilterModel) Placeholder() string { return m.placeholder }

// Text returns the raw text as shown in the text field.
func (m *FilterModel) Text() string { return m.text }

// SetText stores the raw field text. Emptying the field restores the
// placeholder and disables the filter.
func (m *FilterModel) SetText(s string) {
	if strings.TrimSpace(s) == "" {
		m.text = m.placeholder
		m.enabled = false
		return
	}
	m.text = s
}

// AddPreset enables the filter and comma-joins the expression unless the
// text already contains it. A bare placeholder is replaced, not joined.
func (m *FilterModel) AddPreset(expr string) {
	m.enabled = true
	cur := strings.TrimSpace(m.text)
	if cur == "" || cur == m.placeholder {
		m.text = expr
		return
	}
	if strings.Contains(cur, expr) {
		return
	}
	m.text = cur + ", " + expr
}

// EffectiveText is what the pipeline receives: the raw text with the bare
// placeholder stripped to nothing.
func (m *FilterModel) EffectiveText() string {
	txt := strings.TrimSpace(m.text)
	if txt == m.placeholder {
		return ""
	}
	return txt
}
