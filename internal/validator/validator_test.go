package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerProbe struct {
	Role       string `json:"role" validate:"required,user_role"`
	SkillLevel string `json:"skill_level" validate:"omitempty,skill_level"`
	Phone      string `json:"phone" validate:"omitempty,phone10"`
}

func TestValidateStruct_CustomRules(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		probe   registerProbe
		wantErr bool
	}{
		{
			name:  "valid student",
			probe: registerProbe{Role: "student", SkillLevel: "Beginner", Phone: "9876543210"},
		},
		{
			name:  "valid hr without optional fields",
			probe: registerProbe{Role: "hr"},
		},
		{
			name:    "unknown role",
			probe:   registerProbe{Role: "admin"},
			wantErr: true,
		},
		{
			name:    "unknown skill level",
			probe:   registerProbe{Role: "student", SkillLevel: "Expert"},
			wantErr: true,
		},
		{
			name:  "phone with formatting characters",
			probe: registerProbe{Role: "student", Phone: "(987) 654-3210"},
		},
		{
			name:    "phone too short",
			probe:   registerProbe{Role: "student", Phone: "987654321"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(tt.probe)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	require.Equal(t, "919876543210", NormalizePhone("+91 98765-43210"))
	assert.Equal(t, "9876543210", NormalizePhone("(987) 654-3210"))
	assert.Equal(t, "", NormalizePhone("no digits here"))
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("987-654-3210"))
	assert.False(t, IsValidPhone("12345"))
	assert.False(t, IsValidPhone("+91 98765 43210"))
}
