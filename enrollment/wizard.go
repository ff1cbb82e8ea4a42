package enrollment

// Wizard is the linear five-section navigation controller. Moving
// forward is gated by the active section's validation; moving backward
// and jumping to a section tab are not.
type Wizard struct {
	form    *Form
	variant Variant
	notify  Notifier
	section Section

	// optional scroll-to-top hook fired on section change
	scrollTop func()
}

func NewWizard(form *Form, variant Variant, notify Notifier) *Wizard {
	if notify == nil {
		notify = NopNotifier{}
	}
	return &Wizard{
		form:    form,
		variant: variant,
		notify:  notify,
		section: SectionApplicant,
	}
}

// OnSectionChange registers a hook fired after every section change,
// used by the rendering layer to scroll back to the top of the form.
func (w *Wizard) OnSectionChange(fn func()) {
	w.scrollTop = fn
}

// Section returns the active section pointer.
func (w *Wizard) Section() Section {
	return w.section
}

// Next validates the active section. If it is clean the pointer
// advances (capped at the last section); otherwise the errors are
// stored on the form, a notice is surfaced and the pointer stays.
func (w *Wizard) Next() bool {
	errs := ValidateSection(w.form, w.section, w.variant)
	w.form.SetErrors(w.section, errs)
	if len(errs) > 0 {
		w.notify.Error("Please fill in all required fields!")
		return false
	}
	if w.section < SectionPrivacy {
		w.section++
		w.changed()
	}
	return true
}

// Previous moves back one section unconditionally, floored at the
// first section.
func (w *Wizard) Previous() {
	if w.section > SectionApplicant {
		w.section--
		w.changed()
	}
}

// GoTo jumps straight to a section without a validation gate, used for
// review and revision from the section tabs.
func (w *Wizard) GoTo(section Section) {
	if section < SectionApplicant || section > SectionPrivacy {
		return
	}
	if section != w.section {
		w.section = section
		w.changed()
	}
}

func (w *Wizard) changed() {
	if w.scrollTop != nil {
		w.scrollTop()
	}
}
