package models

import (
	"encoding/json"
	"strings"
)

// LectureInfo is the form record describing one lecture event.
// All fields are free text and are forwarded to the prompt verbatim.
type LectureInfo struct {
	Location string `json:"location" binding:"required" example:"Seoul National University"`
	DateTime string `json:"dateTime" binding:"required" example:"2024-05-20 14:00"`
	Target   string `json:"target" binding:"required" example:"30 elementary teachers"`
	Topic    string `json:"topic" binding:"required" example:"AI lesson design"`
	Feedback string `json:"feedback" binding:"required" example:"engaged audience, many questions"`
}

// UnmarshalJSON accepts "reaction" as an older name for "feedback".
func (l *LectureInfo) UnmarshalJSON(data []byte) error {
	type alias LectureInfo
	aux := struct {
		*alias
		Reaction *string `json:"reaction"`
	}{alias: (*alias)(l)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if l.Feedback == "" && aux.Reaction != nil {
		l.Feedback = *aux.Reaction
	}
	return nil
}

// MissingFields returns the JSON names of fields that are blank
func (l LectureInfo) MissingFields() []string {
	var missing []string
	fields := []struct {
		name  string
		value string
	}{
		{"location", l.Location},
		{"dateTime", l.DateTime},
		{"target", l.Target},
		{"topic", l.Topic},
		{"feedback", l.Feedback},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// LectureInfoPatch updates individual form fields; nil fields are left untouched.
type LectureInfoPatch struct {
	Location *string `json:"location,omitempty"`
	DateTime *string `json:"dateTime,omitempty"`
	Target   *string `json:"target,omitempty"`
	Topic    *string `json:"topic,omitempty"`
	Feedback *string `json:"feedback,omitempty"`
	Reaction *string `json:"reaction,omitempty"`
}

// Apply returns a copy of info with the patch applied
func (p LectureInfoPatch) Apply(info LectureInfo) LectureInfo {
	if p.Location != nil {
		info.Location = *p.Location
	}
	if p.DateTime != nil {
		info.DateTime = *p.DateTime
	}
	if p.Target != nil {
		info.Target = *p.Target
	}
	if p.Topic != nil {
		info.Topic = *p.Topic
	}
	if p.Feedback != nil {
		info.Feedback = *p.Feedback
	} else if p.Reaction != nil {
		info.Feedback = *p.Reaction
	}
	return info
}
