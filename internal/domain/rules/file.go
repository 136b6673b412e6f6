package rules

import (
	"regexp"

	m "github.com/VoidbreakDev/AFL-Coach-Sim/internal/model"
)

var (
	editorUsingRE    = regexp.MustCompile(`(?m)^\s*using\s+UnityEditor\s*;`)
	emptyCatchRE     = regexp.MustCompile(`catch\s*\([^\)]*\)\s*\{(\s*//[^\n]*\n|\s*)\}`)
	asyncVoidRE      = regexp.MustCompile(`\basync\s+void\s+\w+\s*\(`)
	subscribeRE      = regexp.MustCompile(`\+=`)
	unsubscribeRE    = regexp.MustCompile(`-=`)
	startCoroutineRE = regexp.MustCompile(`\bStartCoroutine\s*\(`)
	coroutineStopRE  = regexp.MustCompile(`OnDisable|OnDestroy|StopCoroutine`)
)

// FileRules returns the file-scope rule table in evaluation order.
func FileRules() []FileRule {
	return []FileRule{
		{
			ID:       "using-editor-namespace-in-runtime",
			Kind:     FirstOccurrence,
			Severity: m.SeverityWarn,
			Detail:   "File imports UnityEditor; wrap editor-only code or move to Editor/.",
			Trigger:  editorUsingRE,
		},
		{
			ID:       "empty-catch-block",
			Kind:     EveryOccurrence,
			Severity: m.SeverityWarn,
			Detail:   "Empty catch block swallows exceptions.",
			Trigger:  emptyCatchRE,
		},
		{
			ID:       "async-void-method",
			Kind:     EveryOccurrence,
			Severity: m.SeverityWarn,
			Detail:   "Avoid async void (except event handlers); prefer async Task.",
			Trigger:  asyncVoidRE,
		},
		{
			ID:       "event-unsubscribe-missing",
			Kind:     Absence,
			Severity: m.SeverityInfo,
			Detail:   "Subscriptions detected but no obvious unsubscription; ensure to unsubscribe in OnDisable/OnDestroy.",
			Trigger:  subscribeRE,
			Guards:   []*regexp.Regexp{unsubscribeRE},
		},
		{
			ID:       "coroutine-stop-missing",
			Kind:     Absence,
			Severity: m.SeverityInfo,
			Detail:   "StartCoroutine used without a stop path.",
			Trigger:  startCoroutineRE,
			Guards:   []*regexp.Regexp{coroutineStopRE},
		},
	}
}
