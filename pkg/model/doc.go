// Package model defines the form schema consumed by the prompt engine. A Form
// is an ordered list of fields plus the template the collected answers are
// rendered into. Fields come in exactly two kinds: InputField for free text
// and SelectField for a single choice among Options. The Field interface is
// sealed so the set of kinds stays closed; callers dispatch with a type switch
// and treat anything else as an UnknownFieldKindError.
//
// Answers accumulate in an AnswerSet which keeps declaration order and never
// revises a value once it has been accepted.
package model
