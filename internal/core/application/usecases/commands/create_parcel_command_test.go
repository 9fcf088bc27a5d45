package commands_test

import (
	"testing"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAddress(t *testing.T) parcel.Address {
	t.Helper()

	address, err := parcel.NewAddress("Centro", "Av. Juárez", 12, "06000")
	require.NoError(t, err)
	return address
}

func TestNewCreateParcelCommand_Success(t *testing.T) {
	// Arrange
	courierID := kernel.NewUUID()
	address := mustAddress(t)

	// Act
	cmd, err := commands.NewCreateParcelCommand(courierID, "María López", address)

	// Assert
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, courierID, cmd.CourierID())
	assert.Equal(t, "María López", cmd.Recipient())
	assert.Equal(t, address, cmd.Address())
	require.NoError(t, cmd.ParcelID().Validate())
}

func TestNewCreateParcelCommand_EmptyRecipient(t *testing.T) {
	// Act
	_, err := commands.NewCreateParcelCommand(kernel.NewUUID(), "", mustAddress(t))

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRecipientIsRequired)
}

func TestNewCreateParcelCommand_InvalidCourierID(t *testing.T) {
	// Arrange
	var emptyID kernel.UUID

	// Act
	_, err := commands.NewCreateParcelCommand(emptyID, "María López", mustAddress(t))

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateParcelCommand_InvalidAddress(t *testing.T) {
	// Arrange
	var emptyAddress parcel.Address

	// Act
	_, err := commands.NewCreateParcelCommand(kernel.NewUUID(), "María López", emptyAddress)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, parcel.ErrAddressNotConstructed)
}

func TestCreateParcelCommand_ZeroValueIsInvalid(t *testing.T) {
	// Arrange
	var cmd commands.CreateParcelCommand

	// Act
	err := cmd.Validate()

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateParcelCommandIsNotConstructed)
}
