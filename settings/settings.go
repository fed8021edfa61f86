// Package settings reads the flat list of notification settings
// that decides which optional manifest entries are merged.
package settings

import (
	"fmt"
	"strconv"
)

const (
	KeyUseCustomActivity         = "UnityNotificationAndroidUseCustomActivity"
	KeyCustomActivity            = "UnityNotificationAndroidCustomActivityString"
	KeyRescheduleOnDeviceRestart = "UnityNotificationAndroidRescheduleOnDeviceRestart"
)

type Kind int

const (
	KindBool Kind = iota + 1
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	}

	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is either a bool or a string.
type Value struct {
	Kind Kind
	b    bool
	s    string
}

func Bool(b bool) Value {
	return Value{Kind: KindBool, b: b}
}

func String(s string) Value {
	return Value{Kind: KindString, s: s}
}

// ValueOf converts a decoded bool or string into a Value.
func ValueOf(v any) (Value, error) {
	switch v := v.(type) {
	case bool:
		return Bool(v), nil
	case string:
		return String(v), nil
	case Value:
		return v, nil
	}

	return Value{}, fmt.Errorf("unsupported setting value type %T", v)
}

func (v Value) Bool() bool {
	return v.Kind == KindBool && v.b
}

func (v Value) String() string {
	switch v.Kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindString:
		return v.s
	}

	return ""
}

func (v Value) Interface() any {
	switch v.Kind {
	case KindBool:
		return v.b
	case KindString:
		return v.s
	}

	return nil
}

type Setting struct {
	Key   string
	Value Value
}

// Settings is an ordered list of settings looked up by exact key.
type Settings []Setting

func (s Settings) Lookup(key string) (Value, bool) {
	for _, setting := range s {
		if setting.Key == key {
			return setting.Value, true
		}
	}

	return Value{}, false
}

// Bool returns the bool setting key, or false if it is missing or not a bool.
func (s Settings) Bool(key string) bool {
	v, _ := s.Lookup(key)
	return v.Bool()
}

// String returns the string setting key, or "" if it is missing or not a string.
func (s Settings) String(key string) string {
	if v, ok := s.Lookup(key); ok && v.Kind == KindString {
		return v.String()
	}

	return ""
}

// Set overwrites the setting key, appending it if it is missing.
func (s Settings) Set(key string, value Value) Settings {
	for i, setting := range s {
		if setting.Key == key {
			s[i].Value = value
			return s
		}
	}

	return append(s, Setting{Key: key, Value: value})
}

// Notification is the view of Settings that manifest merging consumes.
type Notification struct {
	UseCustomActivity         bool
	CustomActivity            string
	RescheduleOnDeviceRestart bool
}

func (s Settings) Notification() *Notification {
	return &Notification{
		UseCustomActivity:         s.Bool(KeyUseCustomActivity),
		CustomActivity:            s.String(KeyCustomActivity),
		RescheduleOnDeviceRestart: s.Bool(KeyRescheduleOnDeviceRestart),
	}
}
