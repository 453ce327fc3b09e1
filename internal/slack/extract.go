package slack

// valueKey addresses one submitted value in a view's state map.
type valueKey struct {
	blockID  string
	actionID string
}

// labelEntry records the first block seen for a label. A block that matched
// a label but lacks its identifiers still claims the label: later blocks
// with the same label must not serve it.
type labelEntry struct {
	key    valueKey
	usable bool
}

// ViewIndex resolves human-readable field labels to submitted values.
//
// The view document separates structure from values: blocks map a label to a
// (block_id, action_id) pair, and state.values maps that pair to the value.
// The index is built once per document so each field lookup is two map hits
// instead of a rescan of the nested collections.
type ViewIndex struct {
	labels map[string]labelEntry
	values map[valueKey]string
}

// NewViewIndex builds the label and value maps for a view. A nil view yields
// an empty index where every lookup misses.
func NewViewIndex(v *View) *ViewIndex {
	ix := &ViewIndex{
		labels: make(map[string]labelEntry),
		values: make(map[valueKey]string),
	}
	if v == nil {
		return ix
	}

	for _, block := range v.Blocks {
		if block.Label == nil {
			continue
		}
		if _, seen := ix.labels[block.Label.Text]; seen {
			// Labels are not unique; the first block wins.
			continue
		}

		entry := labelEntry{}
		if block.BlockID != "" && block.Element != nil && block.Element.ActionID != "" {
			entry.key = valueKey{blockID: block.BlockID, actionID: block.Element.ActionID}
			entry.usable = true
		}
		ix.labels[block.Label.Text] = entry
	}

	if v.State == nil {
		return ix
	}
	for blockID, actions := range v.State.Values {
		for actionID, sv := range actions {
			ix.values[valueKey{blockID: blockID, actionID: actionID}] = sv.Value
		}
	}
	return ix
}

// Field returns the submitted value for a label. The match is exact and
// case-sensitive. It reports false when no block carries the label, when the
// first matching block lacks its identifiers, or when the state map has no
// leaf for the block's (block_id, action_id) pair.
func (ix *ViewIndex) Field(label string) (string, bool) {
	entry, ok := ix.labels[label]
	if !ok || !entry.usable {
		return "", false
	}
	value, ok := ix.values[entry.key]
	return value, ok
}
