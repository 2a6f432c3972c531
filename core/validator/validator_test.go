package validator_test

import (
	"testing"

	"github.com/goto/lineagecheck/core/validator"
	"github.com/stretchr/testify/assert"
)

func TestValidateStruct(t *testing.T) {
	type Nested struct {
		Host string `mapstructure:"host" validate:"required"`
	}
	type DummyStruct struct {
		VarOneOf string `json:"varoneof" validate:"omitempty,oneof=type1 type2 type3"`
		VarInt   int    `json:"varint" validate:"omitempty,gte=0"`
		VarUUID  string `json:"varuuid" validate:"omitempty,uuid"`
		Nested   Nested `json:"nested"`
	}

	type TestCase struct {
		Description string
		Struct      interface{}
		ErrString   string
	}

	testCases := []TestCase{
		{
			Description: "return error with supported values in oneof type validation",
			Struct: DummyStruct{
				VarOneOf: "random",
				Nested:   Nested{Host: "localhost"},
			},
			ErrString: "error value \"random\" for key \"varoneof\" not recognized, only support \"type1 type2 type3\"",
		},
		{
			Description: "return error should greater than 0 in integer type validation",
			Struct: DummyStruct{
				VarInt: -1,
				Nested: Nested{Host: "localhost"},
			},
			ErrString: "varint cannot be less than 0",
		},
		{
			Description: "return error with namespace of missing required field",
			Struct:      DummyStruct{},
			ErrString:   "DummyStruct.nested.host is required",
		},
		{
			Description: "return error on malformed uuid",
			Struct: DummyStruct{
				VarUUID: "not-a-uuid",
				Nested:  Nested{Host: "localhost"},
			},
			ErrString: "varuuid must be a valid uuid, got \"not-a-uuid\"",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			err := validator.ValidateStruct(tc.Struct)
			if assert.Error(t, err) {
				assert.Equal(t, tc.ErrString, err.Error())
			}
		})
	}

	t.Run("return nil on valid struct", func(t *testing.T) {
		assert.NoError(t, validator.ValidateStruct(DummyStruct{Nested: Nested{Host: "localhost"}}))
	})
}

func TestValidateOneOf(t *testing.T) {
	type TestCase struct {
		Description string
		Value       string
		Enums       []string
		ErrString   string
	}

	testCases := []TestCase{
		{
			Description: "return error with supported values",
			Value:       "random",
			Enums:       []string{"type1", "type2", "type3"},
			ErrString:   "error value \"random\" not recognized, only support \"type1 type2 type3\"",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			err := validator.ValidateOneOf(tc.Value, tc.Enums...)
			assert.Equal(t, tc.ErrString, err.Error())
		})
	}
}
