package generr_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/monkeys-engine/monkeys/internal/codegen/generr"
)

func TestErrorMessage(t *testing.T) {
	e := generr.Wrap(generr.NotFound, fs.ErrNotExist, "schema file must exist")
	e.Source = "components.toml"
	assert.Equal(t, "components.toml: not-found: schema file must exist: file does not exist", e.Error())

	e = generr.New(generr.UnknownType, "got: nonsense")
	e.Record = "mover"
	e.Field = "speed"
	assert.Equal(t, `record "mover": field "speed": unknown-type: got: nonsense`, e.Error())
}

func TestErrorIs(t *testing.T) {
	err := fmt.Errorf("generate hpp: %w", generr.New(generr.MissingField, "no _name_"))

	assert.ErrorIs(t, err, generr.MissingField)
	assert.ErrorIs(t, err, &generr.Error{Kind: generr.MissingField})
	assert.NotErrorIs(t, err, generr.WrongKind)

	e := generr.Wrap(generr.NotFound, fs.ErrNotExist, "")
	assert.ErrorIs(t, e, fs.ErrNotExist)
}

func TestAnnotationsDoNotOverwrite(t *testing.T) {
	e := generr.New(generr.UnknownType, "")
	err := generr.InRecord(e, "inner")
	err = generr.InRecord(err, "outer")
	err = generr.InSource(err, "a.toml")
	err = generr.InSource(err, "b.toml")

	var ge *generr.Error
	assert.True(t, errors.As(err, &ge))
	assert.Equal(t, "inner", ge.Record)
	assert.Equal(t, "a.toml", ge.Source)

	plain := errors.New("plain")
	assert.Equal(t, plain, generr.InRecord(plain, "x"))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, generr.WrongKind, generr.KindOf(fmt.Errorf("x: %w", generr.New(generr.WrongKind, ""))))
	assert.Equal(t, generr.ParseError, generr.KindOf(generr.ParseError))
	assert.Equal(t, generr.Kind(""), generr.KindOf(errors.New("other")))
}
