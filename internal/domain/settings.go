package domain

// Setting keys recognized in per-channel settings blocks. Settings are
// otherwise opaque key/value pairs.
const (
	SettingChannel  = "channel"
	SettingAuth     = "auth"
	SettingUsername = "username"
	SettingPassword = "password"
	SettingToken    = "token"
	SettingLoginURL = "login_url"
)

// ChannelSettings is the string key/value mapping scoped to one channel.
// It is request-scoped: built per CLI invocation or per outbound request
// and discarded afterwards.
type ChannelSettings map[string]string

// Get returns the value for key and whether it is present and non-empty.
func (s ChannelSettings) Get(key string) (string, bool) {
	value, ok := s[key]
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// Merge layers overrides on top of s and returns the result. Overrides win;
// keys carrying an empty value are treated as "not provided" and excluded.
// Neither input is mutated.
func (s ChannelSettings) Merge(overrides ChannelSettings) ChannelSettings {
	merged := make(ChannelSettings, len(s)+len(overrides))
	for key, value := range s {
		if value == "" {
			continue
		}
		merged[key] = value
	}
	for key, value := range overrides {
		if value == "" {
			continue
		}
		merged[key] = value
	}

	return merged
}

// Clone returns a shallow copy of s.
func (s ChannelSettings) Clone() ChannelSettings {
	cloned := make(ChannelSettings, len(s))
	for key, value := range s {
		cloned[key] = value
	}
	return cloned
}

type optionState uint8

const (
	optionUnset optionState = iota
	optionRequestedNoValue
	optionValue
)

// Option is the three-state value of a CLI flag: never mentioned, mentioned
// without a value (the user wants to supply it interactively), or mentioned
// with a value.
type Option struct {
	state optionState
	value string
}

func UnsetOption() Option {
	return Option{state: optionUnset}
}

func RequestedOption() Option {
	return Option{state: optionRequestedNoValue}
}

func ValueOption(value string) Option {
	return Option{state: optionValue, value: value}
}

// Provided reports whether the flag was mentioned at all, with or without a
// value.
func (o Option) Provided() bool {
	return o.state != optionUnset
}

// Value returns the supplied value and whether one was actually given.
func (o Option) Value() (string, bool) {
	if o.state != optionValue {
		return "", false
	}
	return o.value, true
}
