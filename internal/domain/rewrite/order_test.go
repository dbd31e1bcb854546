package rewrite

import (
	"testing"

	"github.com/stretchr/testify/require"
	m "tidyvue.dev/pkg/tidyvue/internal/model"
)

func dirProp(name, text string) renderedProp {
	return renderedProp{prop: m.Directive{Name: name, Text: text}, text: text}
}

func attrProp(name string, hasValue bool) renderedProp {
	text := name
	if hasValue {
		text = name + `="x"`
	}

	return renderedProp{prop: m.Attribute{Name: name, HasValue: hasValue, Text: text}, text: text}
}

func textsOf(block []renderedProp) []string {
	out := make([]string, len(block))
	for i, rp := range block {
		out[i] = rp.text
	}

	return out
}

func TestOrderDirectives_MixedSequenceKeepsAttributeSlots(t *testing.T) {
	block := []renderedProp{
		attrProp("id", true),
		dirProp("bind", `:foo="a"`),
		attrProp("disabled", false),
		dirProp("if", `v-if="ok"`),
	}

	sorted, changed := orderDirectives(block, []string{"if", "bind"})
	require.True(t, changed)
	require.Equal(t, []string{`id="x"`, `v-if="ok"`, "disabled", `:foo="a"`}, textsOf(sorted))
}

func TestOrderDirectives_PriorityScenario(t *testing.T) {
	block := []renderedProp{
		dirProp("bind", `v-bind="a"`),
		dirProp("if", `v-if="visible"`),
		dirProp("model", `v-model="value"`),
	}

	priority := []string{"if", "else", "else-if", "for", "on", "model", "bind"}

	sorted, changed := orderDirectives(block, priority)
	require.True(t, changed)
	require.Equal(t, []string{`v-if="visible"`, `v-model="value"`, `v-bind="a"`}, textsOf(sorted))
}

func TestOrderDirectives_UnknownNamesSortLastAlphabetically(t *testing.T) {
	block := []renderedProp{
		dirProp("zebra", "v-zebra"),
		dirProp("custom", "v-custom"),
		dirProp("if", `v-if="x"`),
	}

	sorted, changed := orderDirectives(block, []string{"if"})
	require.True(t, changed)
	require.Equal(t, []string{`v-if="x"`, "v-custom", "v-zebra"}, textsOf(sorted))
}

func TestOrderDirectives_DuplicateNamesAreStable(t *testing.T) {
	block := []renderedProp{
		dirProp("on", `@click="first"`),
		dirProp("on", `@click="second"`),
		dirProp("if", `v-if="x"`),
	}

	sorted, changed := orderDirectives(block, []string{"if", "on"})
	require.True(t, changed)
	require.Equal(t, []string{`v-if="x"`, `@click="first"`, `@click="second"`}, textsOf(sorted))
}

func TestOrderDirectives_AlreadyOrderedReportsNoChange(t *testing.T) {
	block := []renderedProp{
		dirProp("if", `v-if="x"`),
		attrProp("id", true),
		dirProp("bind", `:foo="a"`),
	}

	sorted, changed := orderDirectives(block, []string{"if", "bind"})
	require.False(t, changed)
	require.Equal(t, textsOf(block), textsOf(sorted))
}

func TestOrderAttributes_ValuedBeforeBoolean(t *testing.T) {
	block := []renderedProp{
		attrProp("disabled", false),
		attrProp("type", true),
		attrProp("id", true),
	}

	sorted, changed := orderAttributes(block)
	require.True(t, changed)
	require.Equal(t, []string{`id="x"`, `type="x"`, "disabled"}, textsOf(sorted))
}

func TestOrderAttributes_LeavesDirectiveSlots(t *testing.T) {
	block := []renderedProp{
		attrProp("type", true),
		dirProp("if", `v-if="x"`),
		attrProp("id", true),
		dirProp("bind", `:foo="a"`),
		attrProp("autofocus", false),
	}

	sorted, changed := orderAttributes(block)
	require.True(t, changed)
	require.Equal(t, []string{`id="x"`, `v-if="x"`, `type="x"`, `:foo="a"`, "autofocus"}, textsOf(sorted))
}

func TestOrderAttributes_DuplicateNamesAreStable(t *testing.T) {
	first := renderedProp{prop: m.Attribute{Name: "data-x", HasValue: true, Text: `data-x="1"`}, text: `data-x="1"`}
	second := renderedProp{prop: m.Attribute{Name: "data-x", HasValue: true, Text: `data-x="2"`}, text: `data-x="2"`}

	block := []renderedProp{attrProp("z", true), first, second}

	sorted, changed := orderAttributes(block)
	require.True(t, changed)
	require.Equal(t, []string{`data-x="1"`, `data-x="2"`, `z="x"`}, textsOf(sorted))
}

func TestSpliceBack_SingleMatchIsNoop(t *testing.T) {
	block := []renderedProp{attrProp("id", true), dirProp("bind", `:foo="a"`)}

	sorted, changed := orderDirectives(block, nil)
	require.False(t, changed)
	require.Equal(t, textsOf(block), textsOf(sorted))
}
