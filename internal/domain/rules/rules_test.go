package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/VoidbreakDev/AFL-Coach-Sim/internal/model"
)

func TestFileRuleTriggers(t *testing.T) {
	tests := []struct {
		name    string
		rule    string
		text    string
		matches bool
	}{
		{"editor using at line start", "using-editor-namespace-in-runtime", "using UnityEditor;", true},
		{"editor using indented", "using-editor-namespace-in-runtime", "\t using UnityEditor ;", true},
		{"editor using in identifier", "using-editor-namespace-in-runtime", "var x = MyUnityEditorShim;", false},
		{"empty catch", "empty-catch-block", "catch (Exception e) { }", true},
		{"empty catch with comment", "empty-catch-block", "catch (Exception) {\n  // noop\n}", true},
		{"non-empty catch", "empty-catch-block", "catch (Exception e) { Log(e); }", false},
		{"async void", "async-void-method", "private async void Fire() {", true},
		{"async Task", "async-void-method", "private async Task Fire() {", false},
	}

	rulesByID := make(map[string]FileRule)
	for _, rule := range FileRules() {
		rulesByID[rule.ID] = rule
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, ok := rulesByID[tt.rule]
			require.True(t, ok, "unknown rule %s", tt.rule)

			assert.Equal(t, tt.matches, rule.Trigger.MatchString(tt.text))
		})
	}
}

func TestBodyRuleTriggers(t *testing.T) {
	bodyRules := BodyRules()
	require.Len(t, bodyRules, 4)

	expensive := bodyRules[0]
	linq := bodyRules[1]
	debug := bodyRules[2]
	physics := bodyRules[3]

	t.Run("expensive lookup primitives", func(t *testing.T) {
		for _, call := range []string{
			"GetComponent<Rigidbody>()",
			"FindObjectOfType<Player>()",
			"FindObjectsOfType<Enemy>()",
			"GameObject.Find(\"boss\")",
			"Resources.Load(\"prefab\")",
			"Instantiate(prefab)",
			"Destroy(gameObject)",
		} {
			assert.True(t, expensive.Trigger.MatchString(call), call)
		}

		assert.False(t, expensive.Trigger.MatchString("GetComponentCache.Lookup()"))
	})

	t.Run("linq idioms need a call site", func(t *testing.T) {
		assert.True(t, linq.Trigger.MatchString("items.Where(i => i != null)"))
		assert.True(t, linq.Trigger.MatchString("items.OrderByDescending (i => i.Score)"))
		assert.False(t, linq.Trigger.MatchString("var whereabouts = 1;"))
		assert.False(t, linq.Trigger.MatchString("int Select;"))
	})

	t.Run("debug logging", func(t *testing.T) {
		assert.True(t, debug.Trigger.MatchString("Debug.Log(\"x\")"))
		assert.True(t, debug.Trigger.MatchString("Debug.LogError(err)"))
		assert.False(t, debug.Trigger.MatchString("logger.Log(\"x\")"))
	})

	t.Run("physics mutations", func(t *testing.T) {
		assert.True(t, physics.Trigger.MatchString("rb.AddForce(Vector3.up)"))
		assert.True(t, physics.Trigger.MatchString("rb.velocity = v"))
		assert.False(t, physics.Trigger.MatchString("rb.AddForceAtPosition2;"))
	})
}

func TestBodyRuleIDs(t *testing.T) {
	bodyRules := BodyRules()

	assert.Equal(t, "update-expensive-call", bodyRules[0].ID(m.Update))
	assert.Equal(t, "fixedupdate-expensive-call", bodyRules[0].ID(m.FixedUpdate))
	assert.Equal(t, "lateupdate-linq-allocation", bodyRules[1].ID(m.LateUpdate))
	assert.Equal(t, "update-debuglog", bodyRules[2].ID(m.Update))
	assert.Equal(t, "fixedupdate-physics", bodyRules[3].ID(m.FixedUpdate))
}

func TestBodyRuleAppliesTo(t *testing.T) {
	bodyRules := BodyRules()

	for _, method := range m.MethodNames() {
		assert.True(t, bodyRules[0].AppliesTo(method))
	}

	physics := bodyRules[3]
	assert.True(t, physics.AppliesTo(m.FixedUpdate))
	assert.False(t, physics.AppliesTo(m.Update))
	assert.False(t, physics.AppliesTo(m.LateUpdate))
}

func TestFileRuleTableOrder(t *testing.T) {
	ids := make([]string, 0)
	for _, rule := range FileRules() {
		ids = append(ids, rule.ID)
	}

	assert.Equal(t, []string{
		"using-editor-namespace-in-runtime",
		"empty-catch-block",
		"async-void-method",
		"event-unsubscribe-missing",
		"coroutine-stop-missing",
	}, ids)
}
