package helper

import (
	"bytes"
	"fmt"
	"strings"
	"time"
)

// Layouts aceitos em datas vindas do cliente. Sem fuso → UTC.
var flexLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// FlexTime aceita RFC3339 e também datas "ingênuas" (sem timezone).
type FlexTime struct {
	time.Time
}

func ParseFlexTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range flexLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("data inválida: %q", s)
}

func (f *FlexTime) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	t, err := ParseFlexTime(string(bytes.Trim(b, `"`)))
	if err != nil {
		return err
	}
	f.Time = t
	return nil
}

func (f *FlexTime) UnmarshalText(b []byte) error {
	t, err := ParseFlexTime(string(b))
	if err != nil {
		return err
	}
	f.Time = t
	return nil
}

func (f FlexTime) MarshalJSON() ([]byte, error) {
	return f.Time.MarshalJSON()
}
