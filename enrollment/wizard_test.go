package enrollment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	successes []string
	errors    []string
	infos     []string
}

func (n *recordingNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *recordingNotifier) Error(msg string)   { n.errors = append(n.errors, msg) }
func (n *recordingNotifier) Info(msg string)    { n.infos = append(n.infos, msg) }

func TestNextBlockedByInvalidSection(t *testing.T) {
	notify := &recordingNotifier{}
	f := NewForm() // empty applicant section is invalid
	w := NewWizard(f, VariantStudent, notify)

	assert.False(t, w.Next())
	assert.Equal(t, SectionApplicant, w.Section())
	assert.NotEmpty(t, f.Errors(SectionApplicant))
	assert.NotEmpty(t, notify.errors)
}

func TestNextAdvancesThroughValidSections(t *testing.T) {
	f := validForm()
	w := NewWizard(f, VariantStudent, nil)

	for expected := SectionUSI; expected <= SectionPrivacy; expected++ {
		require.True(t, w.Next())
		assert.Equal(t, expected, w.Section())
	}

	// the last section has nowhere further to go
	assert.True(t, w.Next())
	assert.Equal(t, SectionPrivacy, w.Section())
}

func TestPreviousFlooredAtFirstSection(t *testing.T) {
	f := validForm()
	w := NewWizard(f, VariantStudent, nil)

	w.Previous()
	assert.Equal(t, SectionApplicant, w.Section())

	require.True(t, w.Next())
	w.Previous()
	assert.Equal(t, SectionApplicant, w.Section())
}

func TestGoToJumpsWithoutValidation(t *testing.T) {
	f := NewForm() // every section invalid
	w := NewWizard(f, VariantStudent, nil)

	w.GoTo(SectionPrivacy)
	assert.Equal(t, SectionPrivacy, w.Section())

	w.GoTo(Section(0))
	assert.Equal(t, SectionPrivacy, w.Section())
	w.GoTo(Section(7))
	assert.Equal(t, SectionPrivacy, w.Section())
}

func TestSectionChangeHookFires(t *testing.T) {
	f := validForm()
	w := NewWizard(f, VariantStudent, nil)

	scrolls := 0
	w.OnSectionChange(func() { scrolls++ })

	require.True(t, w.Next())
	w.Previous()
	w.GoTo(SectionEducation)

	assert.Equal(t, 3, scrolls)
}

func TestSwitchingUSIApplyBackToNoUnblocksSection(t *testing.T) {
	f := validForm()
	w := NewWizard(f, VariantStudent, nil)
	require.True(t, w.Next())
	require.Equal(t, SectionUSI, w.Section())

	require.NoError(t, f.Update(SectionUSI, Patch{"usiApply": Yes, "usiIdType": USIDocMedicare}))
	assert.False(t, w.Next())
	assert.Contains(t, f.Errors(SectionUSI), "medicareNumber")

	// changing one's mind must not leave the stale document type
	// blocking navigation
	require.NoError(t, f.Update(SectionUSI, Patch{"usiApply": No}))
	assert.True(t, w.Next())
	assert.Equal(t, SectionEducation, w.Section())
	assert.Empty(t, f.Errors(SectionUSI))
}

func TestEditingClearsFieldErrorThenNextAdvances(t *testing.T) {
	f := validForm()
	require.NoError(t, f.Update(SectionApplicant, Patch{"surname": ""}))

	w := NewWizard(f, VariantStudent, nil)
	assert.False(t, w.Next())
	assert.Contains(t, f.Errors(SectionApplicant), "surname")

	require.NoError(t, f.Update(SectionApplicant, Patch{"surname": "Nguyen"}))
	assert.NotContains(t, f.Errors(SectionApplicant), "surname")

	assert.True(t, w.Next())
	assert.Equal(t, SectionUSI, w.Section())
}
