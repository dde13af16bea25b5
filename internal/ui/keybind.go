package ui

import (
	"slices"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// leaderSeq is how the leader key is written in sequences: "SPC w l" is
// space, then w, then l.
const leaderSeq = "SPC"

// binding is one registered key sequence.
type binding struct {
	cmd   tea.Cmd
	desc  string
	modes []AppMode // empty applies in every mode
}

func (b binding) appliesTo(mode AppMode) bool {
	return len(b.modes) == 0 || slices.Contains(b.modes, mode)
}

// KeybindRegistry maps key sequences to commands. Sequences are single keys
// ("q", "tab", "ctrl+c") or leader sequences ("SPC w z").
type KeybindRegistry struct {
	bindings map[string]binding
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{bindings: make(map[string]binding)}
}

// Bind registers seq without a description. A later Bind of the same
// sequence replaces it.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDescForMode(seq, cmd, "", nil)
}

// BindWithDesc registers seq for every mode with a help description.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.BindWithDescForMode(seq, cmd, desc, nil)
}

// BindWithDescForMode registers seq for the given modes only.
func (r *KeybindRegistry) BindWithDescForMode(seq string, cmd tea.Cmd, desc string, modes []AppMode) {
	r.bindings[normalizeSeq(seq)] = binding{cmd: cmd, desc: desc, modes: modes}
}

// Lookup returns the command for seq in any mode, or nil.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.bindings[normalizeSeq(seq)].cmd
}

// LookupForMode returns the command for seq if it applies in mode.
func (r *KeybindRegistry) LookupForMode(seq string, mode AppMode) tea.Cmd {
	b, ok := r.bindings[normalizeSeq(seq)]
	if !ok || !b.appliesTo(mode) {
		return nil
	}
	return b.cmd
}

// HasPrefix reports whether some longer binding continues seq.
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for s := range r.bindings {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

// submenuLabel names leader keys that open a submenu.
var submenuLabel = map[string]string{
	"w": "Window",
	"f": "Focus",
}

// LeaderHints lists the keys that may follow currentSeq ("" means right
// after the leader) in mode, each with its description. Keys that lead
// further get their submenu label instead.
func (r *KeybindRegistry) LeaderHints(currentSeq string, mode AppMode) map[string]string {
	base := leaderSeq
	if currentSeq != "" {
		base = normalizeSeq(currentSeq)
	}
	out := make(map[string]string)
	for seq, b := range r.bindings {
		rest, ok := strings.CutPrefix(seq, base+" ")
		if !ok || b.cmd == nil || !b.appliesTo(mode) {
			continue
		}
		next, _, _ := strings.Cut(rest, " ")
		switch {
		case r.HasPrefix(base + " " + next):
			if label, ok := submenuLabel[next]; ok {
				out[next] = label
			} else {
				out[next] = next + "…"
			}
		case b.desc != "":
			out[next] = b.desc
		default:
			out[next] = seq
		}
	}
	return out
}

// normalizeSeq writes space as SPC and collapses whitespace.
func normalizeSeq(seq string) string {
	parts := strings.Fields(seq)
	for i, p := range parts {
		parts[i] = keyToSeqPart(p)
	}
	return strings.Join(parts, " ")
}

// keyToSeqPart converts a tea key string to a sequence part.
func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return leaderSeq
	}
	return s
}

// KeyHandler tracks a leader sequence being typed and dispatches completed
// sequences to the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	Mode          AppMode  // bindings filtered to other modes are ignored
	LeaderKey     string   // tea.KeyMsg.String() of the leader, " " for space
	LeaderWaiting bool     // a leader sequence is in progress
	Buffer        []string // sequence typed so far, starting with SPC
}

// NewKeyHandler creates a handler with space as leader.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg, LeaderKey: " "}
}

func (h *KeyHandler) reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

// Handle processes a key. consumed reports whether the key belonged to the
// keybind system; cmd is the bound command, if a sequence completed.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	s := msg.String()

	switch {
	case s == "esc":
		if !h.LeaderWaiting {
			return false, nil
		}
		h.reset()
		return true, nil
	case s == h.LeaderKey:
		h.LeaderWaiting = true
		h.Buffer = []string{leaderSeq}
		return true, nil
	case h.LeaderWaiting:
		h.Buffer = append(h.Buffer, keyToSeqPart(s))
		seq := strings.Join(h.Buffer, " ")
		if c := h.Registry.LookupForMode(seq, h.Mode); c != nil {
			h.reset()
			return true, c
		}
		if !h.Registry.HasPrefix(seq) {
			h.reset()
		}
		return true, nil
	}

	if c := h.Registry.LookupForMode(keyToSeqPart(s), h.Mode); c != nil {
		return true, c
	}
	return false, nil
}

// Pending returns the leader sequence typed so far, or "" outside leader mode.
func (h *KeyHandler) Pending() string {
	if !h.LeaderWaiting {
		return ""
	}
	return strings.Join(h.Buffer, " ")
}

// KeyMap implements help.KeyMap over the leader hints of a KeyHandler, for
// the current mode and the sequence typed so far.
type KeyMap struct {
	keyHandler *KeyHandler
}

// NewKeyMap creates a KeyMap for the given handler.
func NewKeyMap(keyHandler *KeyHandler) help.KeyMap {
	return &KeyMap{keyHandler: keyHandler}
}

// ShortHelp returns one binding per available next key, plus esc.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.keyHandler == nil || km.keyHandler.Registry == nil {
		return nil
	}
	hints := km.keyHandler.Registry.LeaderHints(km.keyHandler.Pending(), km.keyHandler.Mode)
	if len(hints) == 0 {
		return nil
	}

	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(key.WithKeys(k), key.WithHelp(k, hints[k])))
	}
	return append(bindings, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")))
}

// FullHelp returns the short help as a single column.
func (km *KeyMap) FullHelp() [][]key.Binding {
	short := km.ShortHelp()
	if len(short) == 0 {
		return nil
	}
	return [][]key.Binding{short}
}
