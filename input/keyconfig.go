package input

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/core"
)

// actionRegistry maps canonical action names to intents.
// "none" unbinds a key when merged.
var actionRegistry = map[string]Intent{
	"none":             {},
	"quit":             {Type: IntentQuit},
	"toggle_pause":     {Type: IntentTogglePause},
	"toggle_mute":      {Type: IntentToggleMute},
	"restart":          {Type: IntentRestart},
	"cycle_difficulty": {Type: IntentCycleDifficulty},
	"move_up":          steer(core.DirUp),
	"move_down":        steer(core.DirDown),
	"move_left":        steer(core.DirLeft),
	"move_right":       steer(core.DirRight),
}

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keyConfigFile is the TOML layout:
//
//	[runes]
//	w = "move_up"
//	[keys]
//	Enter = "toggle_pause"
type keyConfigFile struct {
	Runes map[string]string `toml:"runes"`
	Keys  map[string]string `toml:"keys"`
}

// LoadKeyConfigFile reads a TOML keymap file
func LoadKeyConfigFile(path string) (*KeyTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("keymap read: %w", err)
	}
	return LoadKeyConfig(data)
}

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable.
// Returns error on unknown action names, invalid key names, or parse failure.
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var raw keyConfigFile
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("keymap: unknown entry %q", undecoded[0].String())
	}

	kt := &KeyTable{}

	if raw.Runes != nil {
		kt.Runes = make(map[rune]Intent, len(raw.Runes))
		for keyStr, action := range raw.Runes {
			r, err := resolveRune(keyStr)
			if err != nil {
				return nil, fmt.Errorf("[runes] key %q: %w", keyStr, err)
			}
			intent, err := resolveAction(action)
			if err != nil {
				return nil, fmt.Errorf("[runes] key %q: %w", keyStr, err)
			}
			kt.Runes[r] = intent
		}
	}

	if raw.Keys != nil {
		kt.SpecialKeys = make(map[tcell.Key]Intent, len(raw.Keys))
		for keyStr, action := range raw.Keys {
			k, ok := keyByName(keyStr)
			if !ok {
				return nil, fmt.Errorf("[keys] unknown key name: %q", keyStr)
			}
			intent, err := resolveAction(action)
			if err != nil {
				return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
			}
			kt.SpecialKeys[k] = intent
		}
	}

	return kt, nil
}

// keyByName resolves tcell key names ("Up", "Esc", "Ctrl-P") case-insensitively
func keyByName(name string) (tcell.Key, bool) {
	for k, n := range tcell.KeyNames {
		if strings.EqualFold(n, name) {
			return k, true
		}
	}
	return 0, false
}

// resolveRune converts a TOML key string to a rune.
// Accepts single characters and named aliases.
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

// resolveAction converts an action name string to an intent
func resolveAction(name string) (Intent, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	intent, ok := actionRegistry[name]
	if !ok {
		return Intent{}, fmt.Errorf("unknown action: %q", name)
	}
	return intent, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden by non-nil override maps.
// Override entries with IntentNone ("none" action) delete the key from the result.
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	mergeMap(result.Runes, override.Runes)
	mergeMap(result.SpecialKeys, override.SpecialKeys)
	return result
}

func mergeMap[K comparable](base, override map[K]Intent) {
	for k, v := range override {
		if v.Type == IntentNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
