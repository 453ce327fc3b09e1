package slack

import "testing"

func testView() *View {
	return &View{
		Blocks: []Block{
			{
				BlockID: "b1",
				Label:   &Label{Text: "F3 Name"},
				Element: &Element{ActionID: "a1"},
			},
			{
				BlockID: "b2",
				Label:   &Label{Text: "Email Address"},
				Element: &Element{ActionID: "a2"},
			},
		},
		State: &State{
			Values: map[string]map[string]StateValue{
				"b1": {"a1": {Value: "Slim"}},
				"b2": {"a2": {Value: "slim@example.org"}},
			},
		},
	}
}

func TestField_Resolves(t *testing.T) {
	ix := NewViewIndex(testView())

	got, ok := ix.Field("F3 Name")
	if !ok || got != "Slim" {
		t.Errorf(`Field("F3 Name") = %q, %v; want "Slim", true`, got, ok)
	}

	got, ok = ix.Field("Email Address")
	if !ok || got != "slim@example.org" {
		t.Errorf(`Field("Email Address") = %q, %v; want value, true`, got, ok)
	}
}

func TestField_UnknownLabel(t *testing.T) {
	ix := NewViewIndex(testView())
	if _, ok := ix.Field("Unknown Label"); ok {
		t.Error("expected miss for unknown label")
	}
}

func TestField_CaseSensitiveExactMatch(t *testing.T) {
	ix := NewViewIndex(testView())
	if _, ok := ix.Field("f3 name"); ok {
		t.Error("label match must be case-sensitive")
	}
	if _, ok := ix.Field(" F3 Name"); ok {
		t.Error("label match must not trim")
	}
}

func TestField_BlockMissingFromState(t *testing.T) {
	v := testView()
	delete(v.State.Values, "b1")

	ix := NewViewIndex(v)
	if _, ok := ix.Field("F3 Name"); ok {
		t.Error("expected miss when the state map lacks the block")
	}
}

func TestField_ActionMissingFromState(t *testing.T) {
	v := testView()
	v.State.Values["b1"] = map[string]StateValue{"other": {Value: "x"}}

	ix := NewViewIndex(v)
	if _, ok := ix.Field("F3 Name"); ok {
		t.Error("expected miss when the state entry lacks the action")
	}
}

func TestField_FirstMatchingBlockWins(t *testing.T) {
	v := &View{
		Blocks: []Block{
			{BlockID: "b1", Label: &Label{Text: "Dup"}, Element: &Element{ActionID: "a1"}},
			{BlockID: "b2", Label: &Label{Text: "Dup"}, Element: &Element{ActionID: "a2"}},
		},
		State: &State{
			Values: map[string]map[string]StateValue{
				"b1": {"a1": {Value: "first"}},
				"b2": {"a2": {Value: "second"}},
			},
		},
	}

	ix := NewViewIndex(v)
	got, ok := ix.Field("Dup")
	if !ok || got != "first" {
		t.Errorf(`Field("Dup") = %q, %v; want "first", true`, got, ok)
	}
}

func TestField_FirstMatchUnusableBlocksLabel(t *testing.T) {
	// The first block with the label has no element; a later block with the
	// same label must not serve the lookup.
	v := &View{
		Blocks: []Block{
			{BlockID: "b1", Label: &Label{Text: "Dup"}},
			{BlockID: "b2", Label: &Label{Text: "Dup"}, Element: &Element{ActionID: "a2"}},
		},
		State: &State{
			Values: map[string]map[string]StateValue{
				"b2": {"a2": {Value: "second"}},
			},
		},
	}

	ix := NewViewIndex(v)
	if _, ok := ix.Field("Dup"); ok {
		t.Error("expected miss when the first matching block is unusable")
	}
}

func TestField_NilView(t *testing.T) {
	ix := NewViewIndex(nil)
	if _, ok := ix.Field("F3 Name"); ok {
		t.Error("expected miss on nil view")
	}
}

func TestField_Idempotent(t *testing.T) {
	ix := NewViewIndex(testView())
	for i := 0; i < 3; i++ {
		got, ok := ix.Field("F3 Name")
		if !ok || got != "Slim" {
			t.Fatalf("repeat lookup changed: %q, %v", got, ok)
		}
	}
}
