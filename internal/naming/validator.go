package naming

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Kind classifies a validation finding.
type Kind string

const (
	KindInvalid   Kind = "invalid"   // Blocks the rename of that record.
	KindReserved  Kind = "reserved"  // Advisory: name starts with a reserved word.
	KindRefrained Kind = "refrained" // Advisory: discouraged character.
	KindConflict  Kind = "conflict"  // Blocks: target collides with another path.
)

// Finding is one classification of a candidate name. Template holds a single
// %v verb filled by What, the offending substring.
type Finding struct {
	Kind     Kind
	Template string
	What     string
}

// Message renders the finding for display.
func (f *Finding) Message() string {
	if !strings.Contains(f.Template, "%v") {
		return f.Template
	}
	return fmt.Sprintf(f.Template, f.What)
}

// Blocks reports whether the finding prevents the rename. Only invalid and
// conflict findings do; reserved and refrained names are reported but renamed.
func (f *Finding) Blocks() bool {
	return f != nil && (f.Kind == KindInvalid || f.Kind == KindConflict)
}

// Profile selects the target file system's naming rules.
type Profile string

const (
	ProfileUnix    Profile = "unix-like"    // Default.
	ProfileWindows Profile = "windows-ntfs" // NTFS with DOS device names.
)

// ParseProfile validates a profile name. The empty string selects the default.
func ParseProfile(s string) (Profile, error) {
	switch Profile(strings.ToLower(strings.TrimSpace(s))) {
	case "", ProfileUnix:
		return ProfileUnix, nil
	case ProfileWindows:
		return ProfileWindows, nil
	}
	return "", fmt.Errorf("unknown naming profile %q (use %q or %q)", s, ProfileUnix, ProfileWindows)
}

// MaxNameLength is the longest accepted base name, in characters.
const MaxNameLength = 255

type checkset struct {
	invalid   []string
	special   []string
	length    int
	reserved  []string
	refrained []string
}

var checksets = map[Profile]checkset{
	ProfileUnix: {
		invalid:   []string{Separator, "\x00"},
		special:   []string{".", ".."},
		length:    MaxNameLength,
		refrained: []string{`\`, "?", "%", "*", ":", "|", `"`, "<", ">"},
	},
	ProfileWindows: {
		invalid: append([]string{Separator, "/", "\x00"}, append(controlChars(),
			`"`, ":", "<", ">", "?", "|")...),
		special: []string{".", ".."},
		length:  MaxNameLength,
		reserved: []string{
			"$AttrDef", "$BadClus", "$Bitmap", "$Boot", "$LogFile", "$MFT", "$MFTMirr",
			"pagefile.sys", "$Secure", "$UpCase", "$Volume", "$Extend", "$ObjId",
			"$Quota", "$Reparse", "AUX", "CLOCK$", "COM1", "COM2", "COM3", "COM4",
			"COM5", "COM6", "COM7", "COM8", "COM9", "CON", "LPT1", "LPT2", "LPT3",
			"LPT4", "LPT5", "LPT6", "LPT7", "LPT8", "LPT9", "NUL", "PRN",
		},
		refrained: []string{"%", "*"},
	},
}

// controlChars returns the C0 control characters 0x01 through 0x1F.
func controlChars() []string {
	out := make([]string, 0, 0x1f)
	for c := byte(0x01); c <= 0x1f; c++ {
		out = append(out, string(rune(c)))
	}
	return out
}

// Validator checks candidate names against one profile.
type Validator struct {
	profile Profile
	set     checkset
}

// NewValidator returns a validator for p; unknown profiles fall back to unix-like.
func NewValidator(p Profile) *Validator {
	set, ok := checksets[p]
	if !ok {
		p = ProfileUnix
		set = checksets[p]
	}
	return &Validator{profile: p, set: set}
}

// Profile returns the active profile.
func (v *Validator) Profile() Profile { return v.profile }

// Classify checks a base name and returns the first finding, or nil when the
// name is acceptable. Checks run in order: empty, invalid character, special
// name, length, reserved prefix, refrained character.
func (v *Validator) Classify(name string) *Finding {
	name = strings.TrimSpace(name)
	if name == "" {
		return &Finding{Kind: KindInvalid, Template: "empty file name not allowed"}
	}
	for _, c := range v.set.invalid {
		if strings.Contains(name, c) {
			return &Finding{Kind: KindInvalid, Template: "invalid character `%v' encountered in file name", What: c}
		}
	}
	for _, s := range v.set.special {
		if name == s {
			return &Finding{Kind: KindInvalid, Template: "`%v' cannot be used for file name", What: s}
		}
	}
	if utf8.RuneCountInString(name) > v.set.length {
		return &Finding{Kind: KindInvalid, Template: "file name is too long"}
	}
	for _, r := range v.set.reserved {
		if strings.HasPrefix(name, r) {
			return &Finding{Kind: KindReserved, Template: "`%v' is a reserved word", What: r}
		}
	}
	for _, c := range v.set.refrained {
		if strings.Contains(name, c) {
			return &Finding{Kind: KindRefrained, Template: "using `%v' is discouraged", What: c}
		}
	}
	return nil
}

// Conflict returns a conflict finding when candidate equals any sibling path.
func (v *Validator) Conflict(siblings []string, candidate string) *Finding {
	for _, s := range siblings {
		if s == candidate {
			return &Finding{Kind: KindConflict, Template: "file names conflict after rename"}
		}
	}
	return nil
}
