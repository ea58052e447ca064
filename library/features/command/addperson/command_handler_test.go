package addperson_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/bookface-go/library/features/command/addperson"
	"github.com/AntonStoeckl/bookface-go/library/shared/core"
	"github.com/AntonStoeckl/bookface-go/library/shared/model"
	. "github.com/AntonStoeckl/bookface-go/testutil/helper" //nolint:revive
)

func Test_CommandHandler_Handle_Success(t *testing.T) {
	// arrange
	store := NewSnapshotStoreSpy()
	handler := addperson.NewCommandHandler(model.New(), GivenRepository(t, store))

	// act
	result, err := handler.Handle(context.Background(), addperson.BuildCommand("Alice"))

	// assert
	require.NoError(t, err)
	assert.Equal(t, "Alice", result.Subject)

	saved := ReloadLibrary(t, store).Persons()
	require.Len(t, saved, 1)
	assert.Equal(t, "Alice", saved[0].Name().String())
}

func Test_CommandHandler_Handle_DuplicateName(t *testing.T) {
	// arrange
	store := NewSnapshotStoreSpy()
	library := GivenLibraryWith(t, []core.Person{FixturePerson(t, "Alice")}, nil)
	handler := addperson.NewCommandHandler(library, GivenRepository(t, store))

	// act
	_, err := handler.Handle(context.Background(), addperson.BuildCommand("Alice"))

	// assert
	assert.ErrorIs(t, err, core.ErrDuplicatePerson)
	assert.Len(t, library.Persons(), 1)
	assert.Zero(t, store.SaveCalls())
}

func Test_CommandHandler_Handle_InvalidName(t *testing.T) {
	// arrange
	store := NewSnapshotStoreSpy()
	library := model.New()
	handler := addperson.NewCommandHandler(library, GivenRepository(t, store))

	// act
	_, err := handler.Handle(context.Background(), addperson.BuildCommand(""))

	// assert
	field, ok := core.IllegalValueField(err)
	assert.True(t, ok)
	assert.Equal(t, core.FieldName, field)
	assert.Empty(t, library.Persons())
}
