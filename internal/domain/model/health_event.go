package model

import (
	"bytes"
	"encoding/json"
	"errors"
)

// HealthEvent is the subset of an AWS Health EventBridge event used for routing and formatting.
type HealthEvent struct {
	ID         string
	Source     string
	DetailType string
	Account    string
	Detail     HealthDetail
}

// envelope lists only the fields read from the EventBridge event. Everything
// else (time, region, resources) is ignored, so it cannot fail decoding.
type envelope struct {
	ID         string          `json:"id"`
	Source     string          `json:"source"`
	DetailType string          `json:"detail-type"`
	Account    string          `json:"account"`
	Detail     json.RawMessage `json:"detail"`
}

// ParseHealthEvent decodes a raw EventBridge event with the same leniency as
// ParseHealthDetail: a field of the wrong type reads as blank, and invalid
// JSON yields a zero event. The returned error is informational only.
func ParseHealthEvent(raw []byte) (HealthEvent, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return HealthEvent{}, nil
	}

	var env envelope
	envErr := json.Unmarshal(trimmed, &env)
	var typeErr *json.UnmarshalTypeError
	if envErr != nil && !errors.As(envErr, &typeErr) {
		return HealthEvent{}, envErr
	}

	detail, detailErr := ParseHealthDetail(env.Detail)
	return HealthEvent{
		ID:         env.ID,
		Source:     env.Source,
		DetailType: env.DetailType,
		Account:    env.Account,
		Detail:     detail,
	}, errors.Join(envErr, detailErr)
}

// HealthDetail mirrors the "detail" object of an AWS Health event.
type HealthDetail struct {
	AffectedAccount  string             `json:"affectedAccount"`
	EventArn         string             `json:"eventArn"`
	EventDescription []EventDescription `json:"eventDescription"`
}

// EventDescription is one localized description entry of a health event.
type EventDescription struct {
	LatestDescription string `json:"latestDescription"`
}

// ParseHealthDetail decodes the raw detail object. Fields with an unexpected
// JSON type are skipped and the rest is kept; invalid JSON yields a zero
// detail. The returned error is informational only.
func ParseHealthDetail(raw []byte) (HealthDetail, error) {
	var detail HealthDetail
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return detail, nil
	}

	err := json.Unmarshal(trimmed, &detail)
	if err == nil {
		return detail, nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return detail, err
	}
	return HealthDetail{}, err
}
