package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/svsd/kind"
)

func TestValidateSchema_Var2MustBeLast(t *testing.T) {
	err := ValidateSchema([]FieldDescriptor{
		{Name: "tags", Class: kind.Var2},
		{Name: "id", Class: kind.Fixed},
	})
	require.Error(t, err)

	err = ValidateSchema([]FieldDescriptor{
		{Name: "id", Class: kind.Fixed},
		{Name: "tags", Class: kind.Var2},
	})
	require.NoError(t, err)
}

func TestLastVarIndex(t *testing.T) {
	require.Equal(t, -1, LastVarIndex(nil))

	require.Equal(t, 0, LastVarIndex([]FieldDescriptor{{Name: "a", Class: kind.Fixed}}))

	require.Equal(t, 2, LastVarIndex([]FieldDescriptor{
		{Name: "id", Class: kind.Fixed},
		{Name: "name", Class: kind.Var1Bytes},
		{Name: "tags", Class: kind.Var2},
	}))

	// all-fixed record: flag lands on the final field for determinism
	require.Equal(t, 1, LastVarIndex([]FieldDescriptor{
		{Name: "a", Class: kind.Fixed},
		{Name: "b", Class: kind.Fixed},
	}))
}
