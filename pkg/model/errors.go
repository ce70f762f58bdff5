package model

import (
	"errors"
	"fmt"
)

// ErrAnswerExists is returned when a field is answered twice in one run.
var ErrAnswerExists = errors.New("model: answer already recorded")

// UnknownFieldKindError reports a field whose kind is neither input nor
// select. It is a configuration defect and never retried.
type UnknownFieldKindError struct {
	Field string
	Kind  string
}

func (e *UnknownFieldKindError) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("unknown form at item %s", e.Field)
	}
	return fmt.Sprintf("unknown form %s at item %s", e.Kind, e.Field)
}
